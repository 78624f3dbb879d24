package ondiskmatrix_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlarion/disklp/ondiskmatrix"
)

// buildSequential fills an r×c matrix at path so element (i, j) == i*c + j,
// matching spec.md §8 scenario 5.
func buildSequential(t *testing.T, path string, rows, cols int) *ondiskmatrix.Matrix[float64] {
	t.Helper()
	m, err := ondiskmatrix.Create[float64](path, rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			row[j] = float64(i*cols + j)
		}
		require.NoError(t, m.WriteRow(row, i))
	}
	return m
}

func TestGenerateTranspose_Correctness(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rows, cols := 17, 13
	src := buildSequential(t, filepath.Join(dir, "src.mat"), rows, cols)
	defer src.Close()

	dst, err := src.GenerateTranspose(filepath.Join(dir, "src_t.mat"))
	require.NoError(t, err)
	defer dst.Close()

	require.Equal(t, cols, dst.Rows())
	require.Equal(t, rows, dst.Cols())

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			want, err := src.GetElement(i, j)
			require.NoError(t, err)
			got, err := dst.GetElement(j, i)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	}
}

func TestGenerateTranspose_Involution(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rows, cols := 5, 8
	src := buildSequential(t, filepath.Join(dir, "src.mat"), rows, cols)
	defer src.Close()

	firstT, err := src.GenerateTranspose(filepath.Join(dir, "t1.mat"))
	require.NoError(t, err)
	defer firstT.Close()

	secondT, err := firstT.GenerateTranspose(filepath.Join(dir, "t2.mat"))
	require.NoError(t, err)
	defer secondT.Close()

	require.Equal(t, rows, secondT.Rows())
	require.Equal(t, cols, secondT.Cols())

	for i := 0; i < rows; i++ {
		rowWant, err := src.ReadRow(i)
		require.NoError(t, err)
		rowGot, err := secondT.ReadRow(i)
		require.NoError(t, err)
		require.Equal(t, rowWant, rowGot)
	}
}
