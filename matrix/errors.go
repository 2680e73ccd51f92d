package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates a requested shape with a non-positive
	// row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonRectangular indicates rows of differing lengths in a dense
	// construction from nested slices.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf indicates a NaN or ±Inf entry where finite values are
	// required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrCSRLength indicates len(data) != len(indices) in a CSR triple.
	ErrCSRLength = errors.New("matrix: csr data and indices length mismatch")

	// ErrCSRIndPtr indicates a malformed CSR row-pointer array: wrong
	// length, nonzero start, decreasing entries, or a final entry that does
	// not equal the number of stored values.
	ErrCSRIndPtr = errors.New("matrix: csr row pointer array malformed")

	// ErrCSRIndex indicates a CSR column index outside [0, cols).
	ErrCSRIndex = errors.New("matrix: csr column index out of range")
)
