package matrix

import "fmt"

// CSR is a compressed-sparse-row matrix: the stored values of row i are
// data[indptr[i]:indptr[i+1]] with column positions
// indices[indptr[i]:indptr[i+1]].
type CSR struct {
	rows, cols int
	data       []float64
	indices    []int
	indptr     []int
}

// NewCSR validates the triple against the CSR structural invariants and
// copies it into a fresh CSR. rows and cols must be positive.
func NewCSR(rows, cols int, data []float64, indices, indptr []int) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewCSR(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if len(data) != len(indices) {
		return nil, fmt.Errorf("NewCSR: len(data)=%d len(indices)=%d: %w",
			len(data), len(indices), ErrCSRLength)
	}
	if len(indptr) != rows+1 {
		return nil, fmt.Errorf("NewCSR: len(indptr)=%d want rows+1=%d: %w",
			len(indptr), rows+1, ErrCSRIndPtr)
	}
	if indptr[0] != 0 {
		return nil, fmt.Errorf("NewCSR: indptr[0]=%d want 0: %w", indptr[0], ErrCSRIndPtr)
	}
	if indptr[rows] != len(data) {
		return nil, fmt.Errorf("NewCSR: indptr[%d]=%d want len(data)=%d: %w",
			rows, indptr[rows], len(data), ErrCSRIndPtr)
	}

	for i := 0; i < rows; i++ {
		if indptr[i+1] < indptr[i] {
			return nil, fmt.Errorf("NewCSR: indptr decreases at row %d: %w", i, ErrCSRIndPtr)
		}
	}

	for k, j := range indices {
		if j < 0 || j >= cols {
			return nil, fmt.Errorf("NewCSR: indices[%d]=%d outside [0,%d): %w",
				k, j, cols, ErrCSRIndex)
		}
	}

	m := &CSR{
		rows:    rows,
		cols:    cols,
		data:    make([]float64, len(data)),
		indices: make([]int, len(indices)),
		indptr:  make([]int, len(indptr)),
	}
	copy(m.data, data)
	copy(m.indices, indices)
	copy(m.indptr, indptr)

	return m, nil
}

// Rows reports the row count.
func (m *CSR) Rows() int { return m.rows }

// Cols reports the column count.
func (m *CSR) Cols() int { return m.cols }

// NNZ reports the number of stored values.
func (m *CSR) NNZ() int { return len(m.data) }

// Row returns the stored values and column positions of row i without
// copying. Both slices alias the matrix buffers. Only valid row indices may
// be passed — an out-of-range index is a programmer error and panics.
func (m *CSR) Row(i int) (vals []float64, cols []int) {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("CSR.Row(%d): row out of range [0,%d)", i, m.rows))
	}

	return m.data[m.indptr[i]:m.indptr[i+1]], m.indices[m.indptr[i]:m.indptr[i+1]]
}
