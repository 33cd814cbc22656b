package matadapt

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/wippyai/array-bridge/bridge"
	"github.com/wippyai/array-bridge/dtype"
	"github.com/wippyai/array-bridge/engine"
	"github.com/wippyai/array-bridge/host"
)

func TestDenseSharesStorage(t *testing.T) {
	b := bridge.New()
	arr, err := b.ToEngine2D([]*host.Array{
		host.Float64s([]float64{1, 2}),
		host.Float64s([]float64{3, 4}),
	})
	require.NoError(t, err)

	m, err := Dense(arr)
	require.NoError(t, err)
	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 3.0, m.At(1, 0))

	m.Set(0, 1, 42)
	row, err := arr.Row(0)
	require.NoError(t, err)
	got, err := row.FloatAt(1)
	require.NoError(t, err)
	require.Equal(t, 42.0, got)
}

func TestDenseGuards(t *testing.T) {
	rank1, err := engine.New(dtype.Float64, 3)
	require.NoError(t, err)
	_, err = Dense(rank1)
	require.Error(t, err)

	ints, err := engine.New(dtype.Int32, 2, 2)
	require.NoError(t, err)
	_, err = Dense(ints)
	require.Error(t, err)
}

func TestVector(t *testing.T) {
	arr, err := engine.New(dtype.Float64, 3)
	require.NoError(t, err)
	for i, v := range []float64{1.5, 2.5, 3.5} {
		require.NoError(t, arr.SetFloat(i, v))
	}

	v, err := Vector(arr)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	require.Equal(t, 2.5, v.AtVec(1))

	v.SetVec(2, 9.5)
	got, err := arr.FloatAt(2)
	require.NoError(t, err)
	require.Equal(t, 9.5, got)
}

func TestFromDensePacked(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	arr, err := FromDense(d)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, arr.Shape())

	raw := d.RawMatrix()
	require.Equal(t, unsafe.Pointer(unsafe.SliceData(raw.Data)),
		unsafe.Pointer(unsafe.SliceData(arr.Bytes())),
		"packed matrix should share storage")

	row, err := arr.Row(1)
	require.NoError(t, err)
	got, err := row.FloatAt(2)
	require.NoError(t, err)
	require.Equal(t, 6.0, got)
}

func TestFromDenseStridedCopies(t *testing.T) {
	d := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	view := d.Slice(0, 2, 0, 2).(*mat.Dense)

	arr, err := FromDense(view)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, arr.Shape())

	row, err := arr.Row(1)
	require.NoError(t, err)
	got, err := row.FloatAt(1)
	require.NoError(t, err)
	require.Equal(t, 5.0, got)

	// Copied, not shared: mutating the source leaves the array alone.
	view.Set(0, 0, 99)
	top, err := arr.Row(0)
	require.NoError(t, err)
	got, err = top.FloatAt(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, got)
}

func TestMatMulRoundTrip(t *testing.T) {
	b := bridge.New()
	arr, err := b.ToEngine2D([]*host.Array{
		host.Float64s([]float64{1, 0}),
		host.Float64s([]float64{0, 2}),
	})
	require.NoError(t, err)

	m, err := Dense(arr)
	require.NoError(t, err)
	var out mat.Dense
	out.Mul(m, m)

	res, err := FromDense(&out)
	require.NoError(t, err)
	rows, err := b.FromEngine2D(res, dtype.KindFloat64)
	require.NoError(t, err)

	r0, _ := rows[0].Float64Data()
	r1, _ := rows[1].Float64Data()
	require.Equal(t, []float64{1, 0}, r0)
	require.Equal(t, []float64{0, 4}, r1)
}
