// Package glpk is a thin cgo binding over the GNU Linear Programming Kit,
// covering exactly the solver surface the LP layer needs: problem
// lifecycle, free columns, bounded rows, sparse per-row coefficient
// replacement, objective coefficients, warm-start basis statuses, the
// simplex driver, and the cumulative pivot-iteration counter.
//
// The binding stays faithful to the C API: row and column indices are
// 1-based, methods on a Prob mirror single glp_* calls, and misuse (an
// index out of range, a deleted problem) is handled by GLPK itself. Policy
// — call ordering, dimension checks, retry behavior — lives in the
// lpinstance package, not here.
//
// Building requires the GLPK development library (libglpk) to be installed
// on the system; the package links against it with -lglpk.
package glpk
