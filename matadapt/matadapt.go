package matadapt

import (
	"unsafe"

	"gonum.org/v1/gonum/mat"

	"github.com/wippyai/array-bridge/dtype"
	"github.com/wippyai/array-bridge/engine"
	"github.com/wippyai/array-bridge/errors"
)

// Dense wraps a rank-2 float64 engine array as a gonum matrix without
// copying. The matrix aliases the array's storage: writes through either side
// are visible to both, and the float64 slice keeps the storage alive.
func Dense(arr *engine.Array) (*mat.Dense, error) {
	if arr.Rank() != 2 {
		return nil, errors.RankRequired(errors.PhaseView, arr.Rank(), 2)
	}
	if arr.DType() != dtype.Float64 {
		return nil, errors.TypeMismatch(errors.PhaseView, arr.DType().String(), dtype.Float64.String())
	}
	if !arr.Contiguous() {
		return nil, errors.InvalidData(errors.PhaseView, "matrix view needs contiguous storage")
	}
	shape := arr.Shape()
	return mat.NewDense(shape[0], shape[1], floats(arr.Bytes(), arr.Len())), nil
}

// Vector wraps a rank-1 float64 engine array as a gonum vector without
// copying.
func Vector(arr *engine.Array) (*mat.VecDense, error) {
	if arr.Rank() != 1 {
		return nil, errors.RankRequired(errors.PhaseView, arr.Rank(), 1)
	}
	if arr.DType() != dtype.Float64 {
		return nil, errors.TypeMismatch(errors.PhaseView, arr.DType().String(), dtype.Float64.String())
	}
	return mat.NewVecDense(arr.Len(), floats(arr.Bytes(), arr.Len())), nil
}

// FromDense adopts a gonum matrix as a rank-2 float64 engine array. When the
// matrix is densely packed (stride equals the column count) the array shares
// its storage; a strided matrix, such as a Slice view, is copied into fresh
// storage.
func FromDense(d *mat.Dense) (*engine.Array, error) {
	raw := d.RawMatrix()
	if raw.Stride == raw.Cols {
		data := bytes(raw.Data)
		return engine.FromBuffer(dtype.Float64,
			[]int{raw.Rows, raw.Cols},
			[]int{raw.Cols * 8, 8},
			data, raw.Data)
	}

	arr, err := engine.New(dtype.Float64, raw.Rows, raw.Cols)
	if err != nil {
		return nil, err
	}
	dst := floats(arr.Bytes(), arr.Len())
	for i := 0; i < raw.Rows; i++ {
		copy(dst[i*raw.Cols:(i+1)*raw.Cols], raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
	}
	return arr, nil
}

func floats(b []byte, n int) []float64 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

func bytes(f []float64) []byte {
	if len(f) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(f))), len(f)*8)
}
