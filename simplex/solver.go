package simplex

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/vlarion/disklp/ondiskmatrix"
)

// New constructs a Solver for the LP defined by the matrix at aPath (shape
// m×n), dense column vector b (length m), and dense row vector c (length
// n). It builds the extended matrix [A | I_m] and its transpose as sibling
// files (see Solver.ExtendedPath/TransposePath), then initializes base,
// nonbase, and B_inv per spec.md §4.3.1.
//
// The caller is responsible for b being componentwise ≥ 0; New does not
// check this (spec.md §4.3.1).
func New(aPath string, b, c []float64, opts ...Option) (*Solver, error) {
	a, err := ondiskmatrix.Open[float64](aPath)
	if err != nil {
		return nil, fmt.Errorf("simplex.New(%q): %w", aPath, errors.Join(ErrIO, err))
	}
	defer a.Close()

	m, n := a.Rows(), a.Cols()
	if err := verifyDimensions(m, n, len(b), len(c)); err != nil {
		return nil, fmt.Errorf("simplex.New(%q): %w", aPath, err)
	}

	cfg := resolve(aPath, n, m, opts)

	extended, err := buildExtended(a, cfg.extendedPath)
	if err != nil {
		return nil, fmt.Errorf("simplex.New(%q): %w", aPath, errors.Join(ErrIO, err))
	}

	transpose, err := extended.GenerateTranspose(cfg.transposePath)
	if err != nil {
		extended.Close()
		return nil, fmt.Errorf("simplex.New(%q): %w", aPath, errors.Join(ErrIO, err))
	}

	s := &Solver{
		cfg:       cfg,
		n:         n,
		m:         m,
		extended:  extended,
		transpose: transpose,
		b:         mat.NewVecDense(m, append([]float64(nil), b...)),
		cExt:      buildCExt(c, m, cfg.bigMFactor),
		base:      sequence(n, n+m),
		nonbase:   sequence(0, n),
		binv:      identity(m),
		state:     StateInit,
	}
	return s, nil
}

// verifyDimensions implements spec.md §4.3.1's pre-checks.
func verifyDimensions(m, n, bLen, cLen int) error {
	if n < m {
		return fmt.Errorf("n=%d < m=%d: %w", n, m, ErrInvalidProblem)
	}
	if bLen != m {
		return fmt.Errorf("len(b)=%d != A.Rows()=%d: %w", bLen, m, ErrInvalidProblem)
	}
	if cLen != n {
		return fmt.Errorf("len(c)=%d != A.Cols()=%d: %w", cLen, n, ErrInvalidProblem)
	}
	return nil
}

// buildExtended writes [A_row_i | e_i] for every row i of a into a new
// on-disk matrix of shape m×(n+m), per spec.md §4.3.1 step 1.
func buildExtended(a *ondiskmatrix.Matrix[float64], path string) (*ondiskmatrix.Matrix[float64], error) {
	m, n := a.Rows(), a.Cols()
	ext, err := ondiskmatrix.Create[float64](path, m, n+m)
	if err != nil {
		return nil, fmt.Errorf("buildExtended: %w", err)
	}

	row := make([]float64, n+m)
	for i := 0; i < m; i++ {
		src, err := a.ReadRow(i)
		if err != nil {
			ext.Close()
			return nil, fmt.Errorf("buildExtended: read A row %d: %w", i, err)
		}
		copy(row, src)
		for k := n; k < n+m; k++ {
			row[k] = 0
		}
		row[n+i] = 1
		if err := ext.WriteRow(row, i); err != nil {
			ext.Close()
			return nil, fmt.Errorf("buildExtended: write extended row %d: %w", i, err)
		}
	}
	return ext, nil
}

// buildCExt assembles c_ext per spec.md §4.3.1 step 4: the first n entries
// copy c; the last m entries are -M, where M = bigMFactor * max_j|c_j|
// (0 if c is all-zero, per spec.md §9's explicit-zero-initialization fix
// for the reference's accidental-but-correct numeric_limits::min() start).
func buildCExt(c []float64, m int, bigMFactor float64) *mat.VecDense {
	n := len(c)
	maxAbs := 0.0
	for _, v := range c {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	bigM := bigMFactor * maxAbs

	data := make([]float64, n+m)
	copy(data, c)
	for i := n; i < n+m; i++ {
		data[i] = -bigM
	}
	return mat.NewVecDense(n+m, data)
}

// sequence returns [from, to).
func sequence(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

// identity returns the m×m identity matrix, the initial B_inv (spec.md
// §3: the initial basis is the artificial-variable columns, whose
// submatrix is I_m).
func identity(m int) *mat.Dense {
	d := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		d.Set(i, i, 1)
	}
	return d
}
