package simplex

import (
	"errors"
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solve drives the solver to a terminal state and returns the optimal
// solution as a map from original variable index (0..n-1; artificial
// variables are never reported) to value, together with the objective
// value cᵀx. On infeasibility, unboundedness, or iteration-cap exhaustion
// it returns the corresponding sentinel error from the errors set.
func (s *Solver) Solve() (map[int]float64, float64, error) {
	if s.state == StateInit {
		s.state = StateIterating
	}
	for s.state == StateIterating {
		if err := s.step(); err != nil {
			return nil, 0, err
		}
	}

	switch s.state {
	case StateOptimal:
		xB := s.basicSolution()
		solution := make(map[int]float64, s.n)
		for i, v := range s.base {
			if v < s.n {
				solution[v] = xB.AtVec(i)
			}
		}
		z := floats.Dot(s.basicCosts(), xB.RawVector().Data)
		return solution, z, nil
	case StateNoSolution:
		return nil, 0, ErrNoSolution
	case StateUnbounded:
		return nil, 0, ErrUnbounded
	default: // StateIterationLimit
		return nil, 0, ErrIterationLimit
	}
}

// step performs one revised-simplex iteration: price out every nonbasic
// column, pick the entering variable, test for optimality/unboundedness,
// run the ratio test, and pivot. It implements spec.md §4.3.2.
func (s *Solver) step() error {
	if s.cfg.maxIterations > 0 && s.iteration >= s.cfg.maxIterations {
		s.state = StateIterationLimit
		return nil
	}

	pi := s.computePi()

	enterPos, bestSigma, err := s.priceOut(pi)
	if err != nil {
		return err
	}

	if bestSigma <= s.cfg.tolerance {
		s.state = s.optimalTerminalState()
		return nil
	}
	enteringVar := s.nonbase[enterPos]

	pk, err := s.transpose.ReadRow(enteringVar)
	if err != nil {
		return fmt.Errorf("simplex: read entering column %d: %w", enteringVar, errors.Join(ErrIO, err))
	}
	if maxEntry := floats.Max(pk); maxEntry <= s.cfg.tolerance {
		s.state = StateUnbounded
		return nil
	}

	yk, err := s.pivotColumn(enteringVar)
	if err != nil {
		return err
	}

	xB := s.basicSolution()
	leavePos := s.ratioTest(yk, xB)
	if leavePos == -1 {
		s.state = StateUnbounded
		return nil
	}

	s.pivot(enterPos, leavePos, yk)

	s.iteration++
	return nil
}

// computePi returns π = c_B · B⁻¹, a length-m row vector.
func (s *Solver) computePi() *mat.VecDense {
	cB := s.basicCosts()
	pi := mat.NewVecDense(s.m, nil)
	pi.MulVec(s.binv.T(), mat.NewVecDense(s.m, cB))
	return pi
}

// basicCosts returns c_ext[base[i]] for i in 0..m-1.
func (s *Solver) basicCosts() []float64 {
	out := make([]float64, s.m)
	for i, v := range s.base {
		out[i] = s.cExt.AtVec(v)
	}
	return out
}

// priceOut computes σ_j = c_ext[j] - π·a_j for every nonbasic column j
// (reading a_j as one row of the extended matrix's transpose) and returns
// the position within s.nonbase of the entering variable along with its
// reduced cost. Under the default Dantzig rule, ties keep the first
// (lowest-position) column of s.nonbase; under Bland's rule the improving
// column with the smallest variable index is chosen (spec.md §9).
func (s *Solver) priceOut(pi *mat.VecDense) (pos int, sigma float64, err error) {
	pos, sigma = -1, 0
	for idx, j := range s.nonbase {
		aj, rerr := s.transpose.ReadRow(j)
		if rerr != nil {
			return 0, 0, fmt.Errorf("simplex: price out column %d: %w", j, errors.Join(ErrIO, rerr))
		}
		reduced := s.cExt.AtVec(j) - floats.Dot(pi.RawVector().Data, aj)

		if s.cfg.blandsRule {
			if reduced > s.cfg.tolerance && (pos == -1 || j < s.nonbase[pos]) {
				pos, sigma = idx, reduced // improving column, smallest variable index
			}
			continue
		}
		if pos == -1 || reduced > sigma {
			pos, sigma = idx, reduced
		}
	}
	if pos == -1 {
		pos, sigma = 0, 0
	}
	return pos, sigma, nil
}

// pivotColumn returns y_k = B⁻¹·a_k for the entering variable k.
func (s *Solver) pivotColumn(enteringVar int) (*mat.VecDense, error) {
	ak, err := s.transpose.ReadRow(enteringVar)
	if err != nil {
		return nil, fmt.Errorf("simplex: read pivot column %d: %w", enteringVar, errors.Join(ErrIO, err))
	}
	yk := mat.NewVecDense(s.m, nil)
	yk.MulVec(s.binv, mat.NewVecDense(s.m, ak))
	return yk, nil
}

// basicSolution returns x_B = B⁻¹·b.
func (s *Solver) basicSolution() *mat.VecDense {
	xB := mat.NewVecDense(s.m, nil)
	xB.MulVec(s.binv, s.b)
	return xB
}

// ratioTest returns the position within s.base of the leaving variable:
// argmin over i with y_k[i] > ε of x_B[i]/y_k[i], ties broken by lowest
// scan position i (the first occurrence of the minimum), per spec.md
// §4.3.2 step 5; under Bland's rule, ties go to the smallest basic variable
// index instead. It returns -1 when no y_k[i] exceeds ε.
func (s *Solver) ratioTest(yk, xB *mat.VecDense) int {
	best, bestRatio := -1, math.Inf(1)
	for i := 0; i < s.m; i++ {
		yi := yk.AtVec(i)
		if yi <= s.cfg.tolerance {
			continue
		}
		ratio := xB.AtVec(i) / yi
		if best == -1 || ratio < bestRatio ||
			(s.cfg.blandsRule && ratio == bestRatio && s.base[i] < s.base[best]) {
			best, bestRatio = i, ratio
		}
	}
	return best
}

// pivot replaces B⁻¹ with E·B⁻¹, E being the product-form elementary matrix
// (spec.md §4.3.2 step 6), then swaps the entering/leaving variables
// between nonbase and base.
func (s *Solver) pivot(enterPos, leavePos int, yk *mat.VecDense) {
	alpha := yk.AtVec(leavePos)

	rows, cols, data := make([]int, 0, 2*s.m-1), make([]int, 0, 2*s.m-1), make([]float64, 0, 2*s.m-1)
	for i := 0; i < s.m; i++ {
		if i == leavePos {
			rows = append(rows, i)
			cols = append(cols, i)
			data = append(data, 1/alpha)
			continue
		}
		rows = append(rows, i)
		cols = append(cols, i)
		data = append(data, 1)

		if yk.AtVec(i) != 0 {
			rows = append(rows, i)
			cols = append(cols, leavePos)
			data = append(data, -yk.AtVec(i)/alpha)
		}
	}
	e := sparse.NewCOO(s.m, s.m, rows, cols, data)

	updated := mat.NewDense(s.m, s.m, nil)
	updated.Mul(e, s.binv)
	s.binv = updated

	s.base[leavePos], s.nonbase[enterPos] = s.nonbase[enterPos], s.base[leavePos]
}

// optimalTerminalState distinguishes a genuine optimum from infeasibility:
// if any artificial variable (index ≥ n) remains basic beyond tolerance,
// the original problem has no feasible solution (spec.md §4.3.3).
func (s *Solver) optimalTerminalState() State {
	xB := s.basicSolution()
	for i, v := range s.base {
		if v >= s.n && math.Abs(xB.AtVec(i)) > s.cfg.tolerance {
			return StateNoSolution
		}
	}
	return StateOptimal
}
