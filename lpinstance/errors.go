package lpinstance

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive init- or output-variable
	// count at construction.
	ErrInvalidDimension = errors.New("lpinstance: variable counts must be positive")

	// ErrInputsUnsupported indicates a nonzero numInputs at construction.
	// Bounded-input effects are a reserved extension; the current contract
	// requires numInputs == 0.
	ErrInputsUnsupported = errors.New("lpinstance: inputs not supported (numInputs > 0)")

	// ErrAlreadyInstalled indicates a second installation of a constraint
	// block that may only be installed once.
	ErrAlreadyInstalled = errors.New("lpinstance: constraint block already installed")

	// ErrInstallOrder indicates a call that violates the fixed installation
	// order: init block first, output block immediately after.
	ErrInstallOrder = errors.New("lpinstance: constraint blocks must be installed in order")

	// ErrNotInstalled indicates a per-step operation (basis update,
	// minimize) issued before both constraint blocks were installed.
	ErrNotInstalled = errors.New("lpinstance: constraint blocks not installed")

	// ErrDimensionMismatch indicates a matrix, right-hand side, or
	// direction vector whose shape disagrees with the instance layout.
	ErrDimensionMismatch = errors.New("lpinstance: dimension mismatch")

	// ErrClosed indicates use of an instance after Close.
	ErrClosed = errors.New("lpinstance: instance closed")

	// ErrSolverFailure indicates a nonzero simplex return code that
	// persisted after the one-shot warm-start basis reset. It signals a
	// numerical breakdown, not infeasibility.
	ErrSolverFailure = errors.New("lpinstance: simplex failed after basis reset")

	// ErrUnexpectedStatus indicates a solution status outside
	// {optimal, no feasible solution}. The constraint system is bounded and
	// well-posed by construction, so such a status means an upstream
	// modeling bug.
	ErrUnexpectedStatus = errors.New("lpinstance: unexpected solver status")
)
