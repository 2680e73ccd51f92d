// Package lpinstance maintains the single evolving LP problem behind
// repeated reachable-set queries.
//
// An LPInstance owns one GLPK problem whose constraint rows follow a fixed
// three-block layout over the columns [init vars | output vars]:
//
//	init_constraints | 0                  <= init_rhs
//	-----------------+--------------------+--------------
//	0                | output_constraints <= output_rhs
//	-----------------+--------------------+--------------
//	basis_matrix     | -1 * identity      == 0
//
// The init block constrains the initial polytope, the output block
// restricts the space queries are expressed in (it may be empty), and the
// basis-equality block pins each output variable to the corresponding row
// of basis_matrix · init_vars. The first two blocks are installed exactly
// once, in that order; only the basis block's coefficients are rewritten as
// the reachable set evolves.
//
// Lifecycle:
//
//	li, err := lpinstance.New(numOutputVars, numInitVars, 0)
//	err = li.SetInitConstraints(initMat, initRhs)
//	err = li.SetOutputConstraints(outMat, outRhs) // or SetNoOutputConstraints
//	for each time step {
//	    err = li.UpdateBasisMatrix(basis)
//	    for each direction {
//	        point, feasible, err := li.Minimize(direction)
//	    }
//	}
//	li.Close()
//
// Error classes are disjoint: contract violations (wrong call order, double
// installation, dimension mismatches, unsupported inputs) are reported as
// sentinel errors and leave the instance unchanged; genuine infeasibility
// is a normal outcome reported through Minimize's boolean, never an error;
// a solver breakdown that survives the automatic warm-start reset surfaces
// as ErrSolverFailure or ErrUnexpectedStatus and means a well-posedness
// assumption was violated upstream.
//
// An LPInstance is intended for exclusive use by one goroutine; parallel
// exploration uses one instance per mode. Instances share no state unless
// the caller passes a common Stats object via WithStats, in which case the
// caller must serialize access to it.
package lpinstance
