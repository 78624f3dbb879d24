package simplex

import "errors"

// Sentinel errors for the simplex package, matching spec's error taxonomy.
// IoError is modeled as ErrIO, joined (via errors.Join) with the underlying
// cause at the point an I/O operation fails, so callers can both
// errors.Is(err, simplex.ErrIO) and inspect the wrapped cause.
var (
	// ErrInvalidProblem indicates a dimensional precondition failed at
	// solver construction: n < m, A.Rows() != len(b), or A.Cols() != len(c).
	ErrInvalidProblem = errors.New("simplex: invalid problem")

	// ErrNoSolution indicates the solver reached an optimal reduced-cost
	// vector with an artificial variable still basic at a value beyond
	// tolerance — the original problem is infeasible.
	ErrNoSolution = errors.New("simplex: no feasible solution")

	// ErrUnbounded indicates the entering column has no positive entry,
	// so the objective can be increased without bound.
	ErrUnbounded = errors.New("simplex: problem is unbounded")

	// ErrIterationLimit indicates the optional iteration cap was reached
	// before an optimal, infeasible, or unbounded state was detected.
	ErrIterationLimit = errors.New("simplex: iteration limit exceeded")

	// ErrIO tags failures whose root cause is a file operation on A, the
	// extended matrix, or its transpose.
	ErrIO = errors.New("simplex: I/O failure")
)
