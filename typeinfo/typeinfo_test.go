package typeinfo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlarion/disklp/typeinfo"
)

func TestOf_Float64(t *testing.T) {
	t.Parallel()

	d, err := typeinfo.Of[float64]()
	require.NoError(t, err)
	require.Equal(t, int32(8), d.Size)
	require.Equal(t, "f64", d.String())
}

func TestOf_Float32(t *testing.T) {
	t.Parallel()

	d, err := typeinfo.Of[float32]()
	require.NoError(t, err)
	require.Equal(t, int32(4), d.Size)
	require.Equal(t, "f32", d.String())
}

func TestOf_Unsupported(t *testing.T) {
	t.Parallel()

	// myFloat satisfies Element through ~float64 but is neither float64
	// nor float32, so Of's dispatch falls through to the sentinel error.
	type myFloat float64
	_, err := typeinfo.Of[myFloat]()
	require.ErrorIs(t, err, typeinfo.ErrUnsupportedElementType)

	d64 := typeinfo.MustOf[float64]()
	d32 := typeinfo.MustOf[float32]()
	require.False(t, typeinfo.Equal(d64, d32))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, err := typeinfo.Of[float64]()
	require.NoError(t, err)
	b, err := typeinfo.Of[float64]()
	require.NoError(t, err)
	require.True(t, typeinfo.Equal(a, b))
}

func TestMustOf_PanicsNever(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		typeinfo.MustOf[float32]()
	})
}
