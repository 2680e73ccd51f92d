package glpk

/*
#include <glpk.h>
*/
import "C"

import "fmt"

// RetCode is the return code of the simplex driver. RetOK means the search
// ran to completion; every other code describes why it could not.
type RetCode int

const (
	RetOK     RetCode = 0
	RetEBadB  RetCode = C.GLP_EBADB  // invalid initial basis
	RetESing  RetCode = C.GLP_ESING  // singular basis matrix
	RetECond  RetCode = C.GLP_ECOND  // ill-conditioned basis matrix
	RetEBound RetCode = C.GLP_EBOUND // incorrect variable bounds
	RetEFail  RetCode = C.GLP_EFAIL  // solver failure
	RetEObjLL RetCode = C.GLP_EOBJLL // objective lower limit reached
	RetEObjUL RetCode = C.GLP_EOBJUL // objective upper limit reached
	RetEItLim RetCode = C.GLP_EITLIM // iteration limit exceeded
	RetETmLim RetCode = C.GLP_ETMLIM // time limit exceeded
	RetENoPFS RetCode = C.GLP_ENOPFS // no primal feasible solution (presolver)
	RetENoDFS RetCode = C.GLP_ENODFS // no dual feasible solution (presolver)
)

// retCodeMessages is the fixed diagnostic table used for error reporting.
// The wording follows the GLPK reference manual.
var retCodeMessages = map[RetCode]string{
	RetOK: "the search completed",

	RetEBadB: "unable to start the search, because the initial basis specified " +
		"in the problem object is invalid: the number of basic variables is " +
		"not the same as the number of rows in the problem object",

	RetESing: "unable to start the search, because the basis matrix " +
		"corresponding to the initial basis is singular within the working " +
		"precision",

	RetECond: "unable to start the search, because the basis matrix " +
		"corresponding to the initial basis is ill-conditioned, i.e. its " +
		"condition number is too large",

	RetEBound: "unable to start the search, because some double-bounded " +
		"variables have incorrect bounds",

	RetEFail: "the search was prematurely terminated due to the solver failure",

	RetEObjLL: "the search was prematurely terminated, because the objective " +
		"function being maximized has reached its lower limit and continues " +
		"decreasing (the dual simplex only)",

	RetEObjUL: "the search was prematurely terminated, because the objective " +
		"function being minimized has reached its upper limit and continues " +
		"increasing (the dual simplex only)",

	RetEItLim: "the search was prematurely terminated, because the simplex " +
		"iteration limit has been exceeded",

	RetETmLim: "the search was prematurely terminated, because the time " +
		"limit has been exceeded",

	RetENoPFS: "the LP problem instance has no primal feasible solution " +
		"(only if the LP presolver is used)",

	RetENoDFS: "the LP problem instance has no dual feasible solution " +
		"(only if the LP presolver is used)",
}

// String returns the diagnostic message for the return code.
func (rc RetCode) String() string {
	if msg, ok := retCodeMessages[rc]; ok {
		return msg
	}

	return fmt.Sprintf("unknown simplex return code %d", int(rc))
}

// Status is the generic status of a basic solution.
type Status int

const (
	StatusUndef  Status = C.GLP_UNDEF  // solution is undefined
	StatusFeas   Status = C.GLP_FEAS   // solution is feasible
	StatusInfeas Status = C.GLP_INFEAS // solution is infeasible
	StatusNoFeas Status = C.GLP_NOFEAS // problem has no feasible solution
	StatusOpt    Status = C.GLP_OPT    // solution is optimal
	StatusUnbnd  Status = C.GLP_UNBND  // problem has unbounded solution
)

var statusMessages = map[Status]string{
	StatusUndef:  "solution is undefined",
	StatusFeas:   "solution is feasible",
	StatusInfeas: "solution is infeasible",
	StatusNoFeas: "problem has no feasible solution",
	StatusOpt:    "solution is optimal",
	StatusUnbnd:  "problem has unbounded solution",
}

// String returns the diagnostic message for the status.
func (s Status) String() string {
	if msg, ok := statusMessages[s]; ok {
		return msg
	}

	return fmt.Sprintf("unknown solution status %d", int(s))
}

// VarStat is the warm-start basis status of a row or column.
type VarStat int

const (
	StatBasic        VarStat = C.GLP_BS // basic variable
	StatNonbasicLow  VarStat = C.GLP_NL // non-basic on lower bound
	StatNonbasicUp   VarStat = C.GLP_NU // non-basic on upper bound
	StatNonbasicFree VarStat = C.GLP_NF // non-basic free variable
	StatNonbasicFix  VarStat = C.GLP_NS // non-basic fixed variable
)

// String returns the two-letter GLPK mnemonic for the status, which keeps
// debug dumps compact.
func (vs VarStat) String() string {
	switch vs {
	case StatBasic:
		return "BS"
	case StatNonbasicLow:
		return "NL"
	case StatNonbasicUp:
		return "NU"
	case StatNonbasicFree:
		return "NF"
	case StatNonbasicFix:
		return "NS"
	default:
		return fmt.Sprintf("?(%d)?", int(vs))
	}
}
