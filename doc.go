// Package hylaa hosts the incremental linear-programming core of a
// hybrid-system reachability engine.
//
// At every discrete time step of an analysis, the engine asks for the
// extreme value of a direction vector over the current reachable set: the
// image of a fixed initial polytope under an evolving linear map (the basis
// matrix), intersected with a fixed output-space polytope. Rebuilding an LP
// from scratch for each of those queries would dominate the analysis, so
// this module keeps one evolving GLPK problem per reachable-set computation
// and touches only the rows that actually change between steps.
//
// The constraint rows follow a fixed three-block layout over the columns
// [init vars | output vars]:
//
//	init_constraints | 0                  <= init_rhs
//	-----------------+--------------------+--------------
//	0                | output_constraints <= output_rhs
//	-----------------+--------------------+--------------
//	basis_matrix     | -1 * identity      == 0
//
// The first two blocks are installed exactly once; only the basis block is
// rewritten per step.
//
// Subpackages:
//
//	matrix/     — shape-validated dense (row-major) and CSR containers
//	glpk/       — thin cgo binding over the GLPK simplex solver
//	lpinstance/ — the evolving LP problem: layout, installers, basis
//	              updates, direction optimization and run statistics
//
// See examples/ for a full per-step query loop.
package hylaa
