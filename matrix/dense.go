package matrix

import (
	"fmt"
	"math"
)

// Dense is a row-major dense matrix backed by a single flat buffer.
// The element (i, j) lives at data[i*cols + j].
type Dense struct {
	rows, cols int
	data       []float64 // len == rows*cols
}

// NewDense creates a zero-filled rows×cols matrix.
// Returns ErrInvalidDimensions unless rows > 0 and cols > 0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies the nested slices into a fresh Dense.
// All rows must be non-empty and of equal length, and every entry must be
// finite. The input is not retained.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrInvalidDimensions)
	}

	cols := len(rows[0])
	d := &Dense{rows: len(rows), cols: cols, data: make([]float64, len(rows)*cols)}

	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d entries, want %d: %w",
				i, len(row), cols, ErrNonRectangular)
		}

		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("NewDenseFromRows: entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// Identity creates the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d, nil
}

// Rows reports the row count.
func (d *Dense) Rows() int { return d.rows }

// Cols reports the column count.
func (d *Dense) Cols() int { return d.cols }

// At returns the element (i, j), or ErrOutOfRange.
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return d.data[i*d.cols+j], nil
}

// Set stores a finite value at (i, j).
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrNaNInf)
	}

	d.data[i*d.cols+j] = v

	return nil
}

// RowView returns row i of the matrix without copying. The returned slice
// aliases the matrix buffer; callers must not grow it. Only valid row
// indices may be passed — an out-of-range index is a programmer error and
// panics.
func (d *Dense) RowView(i int) []float64 {
	if i < 0 || i >= d.rows {
		panic(fmt.Sprintf("Dense.RowView(%d): row out of range [0,%d)", i, d.rows))
	}

	return d.data[i*d.cols : (i+1)*d.cols]
}
