package simplex_test

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlarion/disklp/ondiskmatrix"
	"github.com/vlarion/disklp/simplex"
)

// buildMatrix writes a dense row-major matrix to path and returns its path.
func buildMatrix(t *testing.T, path string, rows [][]float64) string {
	t.Helper()
	if len(rows) == 0 {
		t.Fatal("buildMatrix: no rows")
	}
	m, err := ondiskmatrix.Create[float64](path, len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		require.NoError(t, m.WriteRow(row, i))
	}
	require.NoError(t, m.Close())
	return path
}

func TestSolve_TrivialIdentity(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	aPath := buildMatrix(t, filepath.Join(dir, "a.mat"), [][]float64{
		{1, 0},
		{0, 1},
	})

	s, err := simplex.New(aPath, []float64{1, 1}, []float64{1, 1})
	require.NoError(t, err)
	defer s.Close()

	x, z, err := s.Solve()
	require.NoError(t, err)
	require.Equal(t, simplex.StateOptimal, s.State())
	require.InDelta(t, 2, z, 1e-6)
	require.InDelta(t, 1, x[0], 1e-6)
	require.InDelta(t, 1, x[1], 1e-6)
}

func TestSolve_ReferenceExample(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	aPath := buildMatrix(t, filepath.Join(dir, "a.mat"), [][]float64{
		{1, -2, 1, 1, 0},
		{-4, 1, 2, 0, -1},
		{-2, 0, 1, 0, 0},
	})
	b := []float64{11, 3, 1}
	c := []float64{3, -1, -1, 0, 0}

	s, err := simplex.New(aPath, b, c)
	require.NoError(t, err)
	defer s.Close()

	x, z, err := s.Solve()
	require.NoError(t, err)
	require.Equal(t, simplex.StateOptimal, s.State())

	// Ax = b over the recovered solution (variables absent from x are
	// non-basic, hence 0).
	a := [][]float64{
		{1, -2, 1, 1, 0},
		{-4, 1, 2, 0, -1},
		{-2, 0, 1, 0, 0},
	}
	for i, row := range a {
		sum := 0.0
		for j, coef := range row {
			sum += coef * x[j]
		}
		require.InDelta(t, b[i], sum, 1e-5, "constraint row %d", i)
	}

	want := 0.0
	for j, coef := range c {
		want += coef * x[j]
	}
	require.InDelta(t, want, z, 1e-5)
}

func TestSolve_Infeasible(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	aPath := buildMatrix(t, filepath.Join(dir, "a.mat"), [][]float64{
		{1, 1},
		{-1, -1},
	})

	s, err := simplex.New(aPath, []float64{1, -1}, []float64{1, 1})
	require.NoError(t, err)
	defer s.Close()

	_, _, err = s.Solve()
	require.ErrorIs(t, err, simplex.ErrNoSolution)
	require.Equal(t, simplex.StateNoSolution, s.State())
}

func TestSolve_Unbounded(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	aPath := buildMatrix(t, filepath.Join(dir, "a.mat"), [][]float64{
		{1, -1},
	})

	s, err := simplex.New(aPath, []float64{0}, []float64{1, 0})
	require.NoError(t, err)
	defer s.Close()

	_, _, err = s.Solve()
	require.ErrorIs(t, err, simplex.ErrUnbounded)
	require.Equal(t, simplex.StateUnbounded, s.State())
}

func TestNew_RejectsDimensionMismatch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	aPath := buildMatrix(t, filepath.Join(dir, "a.mat"), [][]float64{
		{1, 0},
		{0, 1},
	})

	_, err := simplex.New(aPath, []float64{1, 1, 1}, []float64{1, 1})
	require.True(t, errors.Is(err, simplex.ErrInvalidProblem))

	_, err = simplex.New(aPath, []float64{1, 1}, []float64{1, 1, 1})
	require.True(t, errors.Is(err, simplex.ErrInvalidProblem))
}

func TestNew_RejectsNLessThanM(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// 2 constraints, 1 variable: n < m.
	aPath := buildMatrix(t, filepath.Join(dir, "a.mat"), [][]float64{
		{1},
		{1},
	})

	_, err := simplex.New(aPath, []float64{1, 1}, []float64{1})
	require.True(t, errors.Is(err, simplex.ErrInvalidProblem))
}

func TestSolve_IterationLimit(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	aPath := buildMatrix(t, filepath.Join(dir, "a.mat"), [][]float64{
		{1, -2, 1, 1, 0},
		{-4, 1, 2, 0, -1},
		{-2, 0, 1, 0, 0},
	})

	s, err := simplex.New(aPath, []float64{11, 3, 1}, []float64{3, -1, -1, 0, 0},
		simplex.WithMaxIterations(1))
	require.NoError(t, err)
	defer s.Close()

	_, _, err = s.Solve()
	require.ErrorIs(t, err, simplex.ErrIterationLimit)
}

func TestExtendedFiles_CreatedAndNamed(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	aPath := buildMatrix(t, filepath.Join(dir, "a.mat"), [][]float64{
		{1, 0},
		{0, 1},
	})

	s, err := simplex.New(aPath, []float64{1, 1}, []float64{1, 1})
	require.NoError(t, err)
	defer s.Close()

	require.Equal(t, aPath+"_extended", s.ExtendedPath())
	require.Equal(t, aPath+"_extended_t", s.TransposePath())

	extended, err := ondiskmatrix.Open[float64](s.ExtendedPath())
	require.NoError(t, err)
	defer extended.Close()
	require.Equal(t, 2, extended.Rows())
	require.Equal(t, 4, extended.Cols())
}

func TestBigMSelection(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	aPath := buildMatrix(t, filepath.Join(dir, "a.mat"), [][]float64{
		{1, 0},
		{0, 1},
	})

	// c = (0, 0) => M = 0, so c_ext's artificial-variable entries are 0.
	s, err := simplex.New(aPath, []float64{1, 1}, []float64{0, 0})
	require.NoError(t, err)
	defer s.Close()
	require.InDelta(t, 0, s.BigM(), 1e-12)

	// c = (1, -2, 3) with a 1x3 problem => M = 200*3 = 600.
	aPath2 := buildMatrix(t, filepath.Join(dir, "b.mat"), [][]float64{
		{1, 1, 1},
	})
	s2, err := simplex.New(aPath2, []float64{1}, []float64{1, -2, 3})
	require.NoError(t, err)
	defer s2.Close()
	require.InDelta(t, 600, s2.BigM(), 1e-9)
}

func TestSimplexInvariants_PartitionAfterSolve(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	aPath := buildMatrix(t, filepath.Join(dir, "a.mat"), [][]float64{
		{1, -2, 1, 1, 0},
		{-4, 1, 2, 0, -1},
		{-2, 0, 1, 0, 0},
	})

	s, err := simplex.New(aPath, []float64{11, 3, 1}, []float64{3, -1, -1, 0, 0})
	require.NoError(t, err)
	defer s.Close()

	_, _, err = s.Solve()
	require.NoError(t, err)

	base, nonbase := s.Partition()
	require.Len(t, base, 3)
	require.Len(t, nonbase, 5)

	seen := make(map[int]bool, 8)
	for _, v := range base {
		require.False(t, seen[v], "duplicate index %d", v)
		seen[v] = true
	}
	for _, v := range nonbase {
		require.False(t, seen[v], "duplicate index %d", v)
		seen[v] = true
	}
	for i := 0; i < 8; i++ {
		require.True(t, seen[i], "index %d missing from partition", i)
	}
}

func TestSolve_OptimalityTermination(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	aPath := buildMatrix(t, filepath.Join(dir, "a.mat"), [][]float64{
		{1, 0},
		{0, 1},
	})

	s, err := simplex.New(aPath, []float64{4, 5}, []float64{2, 3})
	require.NoError(t, err)
	defer s.Close()

	x, z, err := s.Solve()
	require.NoError(t, err)
	require.InDelta(t, 4, x[0], 1e-6)
	require.InDelta(t, 5, x[1], 1e-6)
	require.InDelta(t, 2*4+3*5, z, 1e-6)
	for _, v := range x {
		require.GreaterOrEqual(t, v, -1e-8)
		require.False(t, math.IsNaN(v))
	}
}
