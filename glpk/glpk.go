package glpk

/*
#cgo LDFLAGS: -lglpk
#include <stdlib.h>
#include <glpk.h>
*/
import "C"

// ObjDir selects the optimization direction of the objective function.
type ObjDir int

const (
	Min ObjDir = C.GLP_MIN // minimize
	Max ObjDir = C.GLP_MAX // maximize
)

// BndsType selects the bound type of a row or column.
type BndsType int

const (
	Free        BndsType = C.GLP_FR // unbounded: -inf < x < +inf
	LowerBound  BndsType = C.GLP_LO // lb <= x < +inf
	UpperBound  BndsType = C.GLP_UP // -inf < x <= ub
	DoubleBound BndsType = C.GLP_DB // lb <= x <= ub
	Fixed       BndsType = C.GLP_FX // x == lb == ub
)

// MsgLev controls the terminal verbosity of the simplex driver.
type MsgLev int

const (
	MsgOff MsgLev = C.GLP_MSG_OFF // no output
	MsgErr MsgLev = C.GLP_MSG_ERR // errors and warnings only
	MsgOn  MsgLev = C.GLP_MSG_ON  // normal output
	MsgAll MsgLev = C.GLP_MSG_ALL // full output
)

// SimplexOpts configures a single Simplex call. The zero value means no
// terminal output, no presolver.
type SimplexOpts struct {
	MsgLev   MsgLev
	Presolve bool
}

// Prob is a GLPK problem object. It owns the underlying C allocation;
// release it with Delete. A Prob is not safe for concurrent use.
type Prob struct {
	ptr *C.glp_prob
}

// NewProb creates an empty problem object.
func NewProb() *Prob {
	return &Prob{ptr: C.glp_create_prob()}
}

// Delete releases the underlying C problem object. Delete is idempotent;
// any other method call after Delete is invalid.
func (p *Prob) Delete() {
	if p.ptr != nil {
		C.glp_delete_prob(p.ptr)
		p.ptr = nil
	}
}

// SetObjDir sets the optimization direction.
func (p *Prob) SetObjDir(dir ObjDir) {
	C.glp_set_obj_dir(p.ptr, C.int(dir))
}

// AddRows appends n rows and returns the 1-based index of the first one.
func (p *Prob) AddRows(n int) int {
	return int(C.glp_add_rows(p.ptr, C.int(n)))
}

// AddCols appends n columns and returns the 1-based index of the first one.
func (p *Prob) AddCols(n int) int {
	return int(C.glp_add_cols(p.ptr, C.int(n)))
}

// NumRows reports the current row count.
func (p *Prob) NumRows() int {
	return int(C.glp_get_num_rows(p.ptr))
}

// NumCols reports the current column count.
func (p *Prob) NumCols() int {
	return int(C.glp_get_num_cols(p.ptr))
}

// SetRowBnds sets the bound type and bounds of row i.
func (p *Prob) SetRowBnds(i int, typ BndsType, lb, ub float64) {
	C.glp_set_row_bnds(p.ptr, C.int(i), C.int(typ), C.double(lb), C.double(ub))
}

// SetColBnds sets the bound type and bounds of column j.
func (p *Prob) SetColBnds(j int, typ BndsType, lb, ub float64) {
	C.glp_set_col_bnds(p.ptr, C.int(j), C.int(typ), C.double(lb), C.double(ub))
}

// SetObjCoef sets the objective coefficient of column j.
func (p *Prob) SetObjCoef(j int, coef float64) {
	C.glp_set_obj_coef(p.ptr, C.int(j), C.double(coef))
}

// SetMatRow replaces the coefficient vector of row i. ind holds 1-based
// column numbers and val the matching coefficients; both slices must have
// equal length. Columns absent from ind become zero. GLPK copies the data
// during the call, so the slices are not retained.
func (p *Prob) SetMatRow(i int, ind []int, val []float64) {
	// GLPK expects 1-based arrays with a dummy leading element.
	cInd := make([]C.int, len(ind)+1)
	cVal := make([]C.double, len(val)+1)
	for k, col := range ind {
		cInd[k+1] = C.int(col)
		cVal[k+1] = C.double(val[k])
	}

	C.glp_set_mat_row(p.ptr, C.int(i), C.int(len(ind)), &cInd[0], &cVal[0])
}

// MatRow returns the stored coefficient vector of row i as parallel slices
// of 1-based column numbers and values.
func (p *Prob) MatRow(i int) (ind []int, val []float64) {
	cols := p.NumCols()
	cInd := make([]C.int, cols+1)
	cVal := make([]C.double, cols+1)

	n := int(C.glp_get_mat_row(p.ptr, C.int(i), &cInd[0], &cVal[0]))

	ind = make([]int, n)
	val = make([]float64, n)
	for k := 1; k <= n; k++ {
		ind[k-1] = int(cInd[k])
		val[k-1] = float64(cVal[k])
	}

	return ind, val
}

// RowType reports the bound type of row i.
func (p *Prob) RowType(i int) BndsType {
	return BndsType(C.glp_get_row_type(p.ptr, C.int(i)))
}

// RowUB reports the upper bound of row i (+inf if the row has none).
func (p *Prob) RowUB(i int) float64 {
	return float64(C.glp_get_row_ub(p.ptr, C.int(i)))
}

// SetRowStat assigns the warm-start basis status of row i.
func (p *Prob) SetRowStat(i int, stat VarStat) {
	C.glp_set_row_stat(p.ptr, C.int(i), C.int(stat))
}

// SetColStat assigns the warm-start basis status of column j.
func (p *Prob) SetColStat(j int, stat VarStat) {
	C.glp_set_col_stat(p.ptr, C.int(j), C.int(stat))
}

// RowStat reports the basis status of row i.
func (p *Prob) RowStat(i int) VarStat {
	return VarStat(C.glp_get_row_stat(p.ptr, C.int(i)))
}

// ColStat reports the basis status of column j.
func (p *Prob) ColStat(j int) VarStat {
	return VarStat(C.glp_get_col_stat(p.ptr, C.int(j)))
}

// ColPrim reports the primal value of column j in the current solution.
func (p *Prob) ColPrim(j int) float64 {
	return float64(C.glp_get_col_prim(p.ptr, C.int(j)))
}

// Status reports the generic status of the current basic solution.
func (p *Prob) Status() Status {
	return Status(C.glp_get_status(p.ptr))
}

// ItCnt reports the cumulative simplex iteration count of the problem.
func (p *Prob) ItCnt() int {
	return int(C.glp_get_it_cnt(p.ptr))
}

// Simplex runs the simplex driver with the given options and reports its
// return code. RetOK means the search completed; inspect Status for the
// solution quality.
func (p *Prob) Simplex(opts SimplexOpts) RetCode {
	var parm C.glp_smcp
	C.glp_init_smcp(&parm)

	parm.msg_lev = C.int(opts.MsgLev)
	if opts.Presolve {
		parm.presolve = C.GLP_ON
	}

	return RetCode(C.glp_simplex(p.ptr, &parm))
}
