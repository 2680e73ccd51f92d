// Package matrix provides the two constraint-matrix containers consumed by
// the LP layer: a row-major dense matrix and a compressed-sparse-row (CSR)
// triple.
//
// Both containers validate their shape at construction and are immutable in
// shape afterwards, so downstream code can rely on Rows/Cols without
// re-checking. All validation failures are reported through the package
// sentinel errors and matched with errors.Is; no public entry point panics
// on caller input.
//
// Dense is deliberately minimal: a flat []float64 buffer with the index
// formula i*cols + j, plus a no-copy RowView for the hot per-row scans the
// LP installer performs. CSR mirrors the standard (data, indices, indptr)
// encoding and enforces its structural invariants:
//
//	len(data) == len(indices)
//	len(indptr) == rows + 1
//	indptr[0] == 0, indptr nondecreasing, indptr[rows] == len(data)
//	every column index in [0, cols)
package matrix
