package simplex

import (
	"gonum.org/v1/gonum/mat"

	"github.com/vlarion/disklp/ondiskmatrix"
)

// State is a node in the solver's state machine:
//
//	Init → Iterating → {Optimal, NoSolution, Unbounded[, IterationLimit]}
type State int

const (
	// StateInit is the state immediately after successful construction,
	// before the first call to Solve.
	StateInit State = iota
	// StateIterating is the state between the first and last pivot.
	StateIterating
	// StateOptimal is the terminal state on success.
	StateOptimal
	// StateNoSolution is terminal: optimality reached with an artificial
	// variable still basic beyond tolerance.
	StateNoSolution
	// StateUnbounded is terminal: an entering column had no positive
	// entry.
	StateUnbounded
	// StateIterationLimit is terminal: the optional iteration cap fired.
	StateIterationLimit
)

// String renders the state for diagnostics and test failure messages.
func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateIterating:
		return "Iterating"
	case StateOptimal:
		return "Optimal"
	case StateNoSolution:
		return "NoSolution"
	case StateUnbounded:
		return "Unbounded"
	case StateIterationLimit:
		return "IterationLimit"
	default:
		return "Unknown"
	}
}

// Solver holds everything spec.md §3's "Simplex state" names: the two
// on-disk matrices, the in-memory dense vectors, the base/nonbase
// partition, and the basis inverse. Construct with New; drive to
// completion with Solve.
type Solver struct {
	cfg config

	n, m int // original variable count, constraint count

	extended  *ondiskmatrix.Matrix[float64] // A_ext, shape m × (n+m)
	transpose *ondiskmatrix.Matrix[float64] // A_ext_T, shape (n+m) × m

	b    *mat.VecDense // length m
	cExt *mat.VecDense // length n+m

	base    []int // length m, variable indices currently basic
	nonbase []int // length n, variable indices currently non-basic

	binv *mat.Dense // m × m, B⁻¹

	state     State
	iteration int
}

// State returns the solver's current position in the state machine.
func (s *Solver) State() State { return s.state }

// ExtendedPath returns the path of the on-disk [A | I] matrix created by
// New. The caller owns cleanup of this file.
func (s *Solver) ExtendedPath() string { return s.cfg.extendedPath }

// TransposePath returns the path of the on-disk transpose of the extended
// matrix created by New. The caller owns cleanup of this file.
func (s *Solver) TransposePath() string { return s.cfg.transposePath }

// BigM returns the penalty coefficient M applied to the artificial
// variables' cost, as derived by New (spec.md §4.3.1 step 4, §8 scenario
// 6).
func (s *Solver) BigM() float64 {
	return -s.cExt.AtVec(s.n)
}

// Partition returns copies of the current basic and non-basic variable
// index sets, for inspecting the §8 partition invariant (|base|=m,
// |nonbase|=n, disjoint, union is [0, n+m)).
func (s *Solver) Partition() (base, nonbase []int) {
	base = append([]int(nil), s.base...)
	nonbase = append([]int(nil), s.nonbase...)
	return base, nonbase
}

// Close releases the two on-disk matrix file handles opened by New. It
// does not delete the files; see ExtendedPath/TransposePath.
func (s *Solver) Close() error {
	errExt := s.extended.Close()
	errT := s.transpose.Close()
	if errExt != nil {
		return errExt
	}
	return errT
}
