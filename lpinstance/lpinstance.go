package lpinstance

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/Tarheel-Formal-Methods/hylaa/glpk"
	"github.com/Tarheel-Formal-Methods/hylaa/matrix"
)

// unset marks a constraint-block row count that has not been installed yet.
const unset = -1

// LPInstance is one evolving LP problem over the fixed block layout
// described in the package documentation. Create it with New; it is not
// safe for concurrent use.
type LPInstance struct {
	numOutputVars int
	numInitVars   int
	numInputs     int

	numInitConstraints   int // unset until SetInitConstraints
	numOutputConstraints int // unset until SetOutputConstraints

	prob   *glpk.Prob
	smcp   glpk.SimplexOpts
	log    *slog.Logger
	stats  *Stats
	closed bool

	// scratch holds the sparse row being written; its capacity bounds the
	// widest row the layout can produce (a basis row: numInitVars + 1).
	scratchInd []int
	scratchVal []float64

	// Input-effect constraints are stored but never installed: the
	// input-augmented layout is a reserved extension and numInputs is
	// always zero under the current contract.
	inputConstraints *matrix.CSR
	inputRhs         []float64
}

// New creates an instance with numInitVars init-variable columns followed
// by numOutputVars output-variable columns, all free (unbounded), and no
// rows. The objective sense is minimize. numInputs must be zero.
//
// The returned instance owns a GLPK problem object; release it with Close.
// A finalizer releases it if the caller forgets, but relying on the
// finalizer delays the release until the next garbage collection.
func New(numOutputVars, numInitVars, numInputs int, opts ...Option) (*LPInstance, error) {
	if numOutputVars <= 0 || numInitVars <= 0 {
		return nil, fmt.Errorf("New: numOutputVars=%d numInitVars=%d: %w",
			numOutputVars, numInitVars, ErrInvalidDimension)
	}
	if numInputs != 0 {
		return nil, fmt.Errorf("New: numInputs=%d: %w", numInputs, ErrInputsUnsupported)
	}

	scratch := numInitVars + 1
	if numOutputVars > scratch {
		scratch = numOutputVars
	}

	li := &LPInstance{
		numOutputVars:        numOutputVars,
		numInitVars:          numInitVars,
		numInputs:            numInputs,
		numInitConstraints:   unset,
		numOutputConstraints: unset,
		log:                  slog.New(slog.NewTextHandler(io.Discard, nil)),
		stats:                &Stats{},
		scratchInd:           make([]int, scratch),
		scratchVal:           make([]float64, scratch),
	}
	for _, opt := range opts {
		opt(li)
	}

	li.prob = glpk.NewProb()
	li.prob.SetObjDir(glpk.Min)

	cols := numInitVars + numOutputVars
	li.prob.AddCols(cols)
	for j := 1; j <= cols; j++ {
		li.prob.SetColBnds(j, glpk.Free, 0, 0)
	}

	runtime.SetFinalizer(li, (*LPInstance).Close)

	return li, nil
}

// Close releases the underlying GLPK problem object. Close is idempotent;
// every other method fails with ErrClosed afterwards.
func (li *LPInstance) Close() {
	if li.closed {
		return
	}

	li.closed = true
	runtime.SetFinalizer(li, nil)
	li.log.Debug("lp instance released",
		"rows", li.prob.NumRows(), "cols", li.prob.NumCols())
	li.prob.Delete()
}

// NumRows reports the current row count of the problem. After both
// constraint blocks are installed it equals
// initRows + outputRows + numOutputVars and never changes again.
func (li *LPInstance) NumRows() int {
	if li.closed {
		return 0
	}

	return li.prob.NumRows()
}

// NumCols reports the column count: numInitVars + numOutputVars.
func (li *LPInstance) NumCols() int {
	if li.closed {
		return 0
	}

	return li.prob.NumCols()
}

// Stats returns a snapshot of the run statistics.
func (li *LPInstance) Stats() Stats {
	return *li.stats
}

// SetInitConstraints installs the init block: the inequality rows
// cons · initVars <= rhs over the init-variable columns. It must be the
// first installation on the instance and may run only once. A nil cons
// together with an empty rhs installs an empty block.
func (li *LPInstance) SetInitConstraints(cons *matrix.Dense, rhs []float64) error {
	if li.closed {
		return fmt.Errorf("SetInitConstraints: %w", ErrClosed)
	}
	if li.numInitConstraints != unset {
		return fmt.Errorf("SetInitConstraints: init block: %w", ErrAlreadyInstalled)
	}
	if err := checkBlockShape("SetInitConstraints", cons, rhs, li.numInitVars); err != nil {
		return err
	}
	if li.prob.NumRows() != 0 {
		return fmt.Errorf("SetInitConstraints: problem already has %d rows: %w",
			li.prob.NumRows(), ErrInstallOrder)
	}

	if len(rhs) > 0 {
		li.installInequalityBlock(cons, rhs, 0)
	}
	li.numInitConstraints = len(rhs)

	return nil
}

// SetOutputConstraints installs the output block: the inequality rows
// cons · outputVars <= rhs over the output-variable columns. It must run
// immediately after SetInitConstraints and may run only once. It also
// allocates the numOutputVars fixed (== 0) basis-equality rows, whose
// coefficients stay zero until UpdateBasisMatrix runs.
func (li *LPInstance) SetOutputConstraints(cons *matrix.Dense, rhs []float64) error {
	if li.closed {
		return fmt.Errorf("SetOutputConstraints: %w", ErrClosed)
	}
	if li.numOutputConstraints != unset {
		return fmt.Errorf("SetOutputConstraints: output block: %w", ErrAlreadyInstalled)
	}
	if li.numInitConstraints == unset {
		return fmt.Errorf("SetOutputConstraints: init block missing: %w", ErrInstallOrder)
	}
	if err := checkBlockShape("SetOutputConstraints", cons, rhs, li.numOutputVars); err != nil {
		return err
	}
	if li.prob.NumRows() != li.numInitConstraints {
		return fmt.Errorf("SetOutputConstraints: expected %d rows, have %d: %w",
			li.numInitConstraints, li.prob.NumRows(), ErrInstallOrder)
	}

	if len(rhs) > 0 {
		li.installInequalityBlock(cons, rhs, li.numInitVars)
	}

	// Allocate the basis-equality rows now so the row layout is final;
	// their coefficients stay zero until the first basis update.
	first := li.prob.AddRows(li.numOutputVars)
	for r := 0; r < li.numOutputVars; r++ {
		li.prob.SetRowBnds(first+r, glpk.Fixed, 0, 0)
	}

	li.numOutputConstraints = len(rhs)

	return nil
}

// SetNoOutputConstraints marks the instance as having no output-space
// restriction (an empty output block), which queries the full reachable
// image. Like SetOutputConstraints it allocates the basis-equality rows and
// may run only once, immediately after SetInitConstraints.
func (li *LPInstance) SetNoOutputConstraints() error {
	return li.SetOutputConstraints(nil, nil)
}

// SetInputConstraintsCSR stores the constraints on the (currently unused)
// input variables. cons must have one row per rhs entry; the CSR structural
// invariants are enforced by matrix.NewCSR. The constraints are retained
// but not installed: they take effect only once input support exists, and
// construction rejects numInputs > 0 until then.
func (li *LPInstance) SetInputConstraintsCSR(cons *matrix.CSR, rhs []float64) error {
	if li.closed {
		return fmt.Errorf("SetInputConstraintsCSR: %w", ErrClosed)
	}
	if cons == nil {
		return fmt.Errorf("SetInputConstraintsCSR: nil constraints: %w", ErrDimensionMismatch)
	}
	if cons.Rows() != len(rhs) {
		return fmt.Errorf("SetInputConstraintsCSR: %d constraint rows, %d rhs entries: %w",
			cons.Rows(), len(rhs), ErrDimensionMismatch)
	}

	li.inputConstraints = cons
	li.inputRhs = append([]float64(nil), rhs...)

	return nil
}

// UpdateBasisMatrix rewrites the basis-equality block so that each output
// variable r is pinned to basis[r] · initVars: row r gets the coefficients
// basis[r][i] in init-variable column i and -1 in output-variable column r.
// basis must be numOutputVars × numInitVars. The operation may run any
// number of times, once per reachability time step, after the output block
// is installed.
func (li *LPInstance) UpdateBasisMatrix(basis *matrix.Dense) error {
	if li.closed {
		return fmt.Errorf("UpdateBasisMatrix: %w", ErrClosed)
	}
	if li.numOutputConstraints == unset {
		return fmt.Errorf("UpdateBasisMatrix: output block missing: %w", ErrNotInstalled)
	}
	if basis == nil || basis.Rows() != li.numOutputVars || basis.Cols() != li.numInitVars {
		return fmt.Errorf("UpdateBasisMatrix: want %dx%d basis matrix: %w",
			li.numOutputVars, li.numInitVars, ErrDimensionMismatch)
	}

	w := li.numInitVars
	// The init-column indices 1..w are identical for every basis row; only
	// the last slot (the -1 identity entry) moves.
	for i := 0; i < w; i++ {
		li.scratchInd[i] = i + 1
	}
	li.scratchVal[w] = -1

	base := li.numInitConstraints + li.numOutputConstraints
	for r := 0; r < li.numOutputVars; r++ {
		copy(li.scratchVal[:w], basis.RowView(r))
		li.scratchInd[w] = w + r + 1

		li.prob.SetMatRow(base+r+1, li.scratchInd[:w+1], li.scratchVal[:w+1])
	}

	return nil
}

// Minimize sets the objective to direction over the output-variable columns
// and runs the simplex. direction must have exactly numOutputVars entries;
// init-variable columns keep objective coefficient zero, so the query asks
// for the extreme point of the reachable image along direction.
//
// A nonzero simplex return code is first treated as a stale warm-start
// basis: all row statuses are reset to basic and all column statuses to
// nonbasic-free, and the solve is retried exactly once. A persisting
// failure is ErrSolverFailure.
//
// On success: feasible=true with the primal values of the output-variable
// columns, or feasible=false when the constraints admit no solution. Any
// other solution status is ErrUnexpectedStatus.
func (li *LPInstance) Minimize(direction []float64) (point []float64, feasible bool, err error) {
	if li.closed {
		return nil, false, fmt.Errorf("Minimize: %w", ErrClosed)
	}
	if li.numInitConstraints == unset || li.numOutputConstraints == unset {
		return nil, false, fmt.Errorf("Minimize: %w", ErrNotInstalled)
	}
	if len(direction) != li.numOutputVars {
		return nil, false, fmt.Errorf("Minimize: direction has %d entries, want %d: %w",
			len(direction), li.numOutputVars, ErrDimensionMismatch)
	}

	for i, c := range direction {
		li.prob.SetObjCoef(li.numInitVars+i+1, c)
	}

	startIterations := li.prob.ItCnt()

	ret := li.prob.Simplex(li.smcp)
	if ret != glpk.RetOK {
		// The warm-start basis carried over from the previous solve can be
		// singular with respect to the rewritten basis-equality rows.
		li.log.Warn("simplex returned nonzero, resetting statuses and retrying",
			"code", int(ret), "detail", ret.String())
		li.resetStatuses()

		ret = li.prob.Simplex(li.smcp)
	}

	li.stats.Optimizations++
	li.stats.Iterations += uint64(li.prob.ItCnt() - startIterations)

	return li.interpretResult(ret)
}

// resetStatuses discards the warm-start basis: every row becomes basic and
// every column nonbasic-free, the default basis for a problem of free
// variables.
func (li *LPInstance) resetStatuses() {
	rows := li.prob.NumRows()
	cols := li.prob.NumCols()

	for i := 1; i <= rows; i++ {
		li.prob.SetRowStat(i, glpk.StatBasic)
	}
	for j := 1; j <= cols; j++ {
		li.prob.SetColStat(j, glpk.StatNonbasicFree)
	}
}

// interpretResult is the stateless translation of the simplex return code
// and solution status into the three-outcome taxonomy: success with a
// point, infeasible, or hard error.
func (li *LPInstance) interpretResult(ret glpk.RetCode) (point []float64, feasible bool, err error) {
	switch {
	case ret == glpk.RetENoPFS:
		// No primal feasible solution, reported by the presolver before a
		// basic solution exists.
		return nil, false, nil
	case ret != glpk.RetOK:
		return nil, false, fmt.Errorf("%w: %s (code %d)", ErrSolverFailure, ret, int(ret))
	}

	switch status := li.prob.Status(); status {
	case glpk.StatusOpt:
		point = make([]float64, li.numOutputVars)
		for i := range point {
			point[i] = li.prob.ColPrim(li.numInitVars + i + 1)
		}

		return point, true, nil
	case glpk.StatusNoFeas:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("%w: %s (status %d)", ErrUnexpectedStatus, status, int(status))
	}
}

// installInequalityBlock appends one "<= rhs[i]" row per constraint, with
// the dense row i of cons written sparsely (zero entries skipped) into the
// columns starting at colOffset+1.
func (li *LPInstance) installInequalityBlock(cons *matrix.Dense, rhs []float64, colOffset int) {
	first := li.prob.AddRows(len(rhs))
	for i, b := range rhs {
		li.prob.SetRowBnds(first+i, glpk.UpperBound, 0, b)
	}

	for r := 0; r < len(rhs); r++ {
		n := 0
		for j, v := range cons.RowView(r) {
			if v != 0 {
				li.scratchInd[n] = colOffset + j + 1
				li.scratchVal[n] = v
				n++
			}
		}

		li.prob.SetMatRow(first+r, li.scratchInd[:n], li.scratchVal[:n])
	}
}

// checkBlockShape validates a dense constraint block against the expected
// variable count. A nil matrix is allowed only together with an empty rhs
// (an empty block).
func checkBlockShape(op string, cons *matrix.Dense, rhs []float64, wantCols int) error {
	if cons == nil {
		if len(rhs) != 0 {
			return fmt.Errorf("%s: nil constraints with %d rhs entries: %w",
				op, len(rhs), ErrDimensionMismatch)
		}

		return nil
	}
	if cons.Cols() != wantCols {
		return fmt.Errorf("%s: matrix has %d columns, want %d: %w",
			op, cons.Cols(), wantCols, ErrDimensionMismatch)
	}
	if cons.Rows() != len(rhs) {
		return fmt.Errorf("%s: matrix has %d rows, rhs has %d entries: %w",
			op, cons.Rows(), len(rhs), ErrDimensionMismatch)
	}

	return nil
}
