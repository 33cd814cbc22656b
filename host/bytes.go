package host

import (
	"unsafe"

	"github.com/wippyai/array-bridge/dtype"
)

// Bytes returns the element storage aliased as raw bytes without copying.
//
// The returned slice shares memory with the array: writes through either are
// visible to both. It must not outlive the array; holders extend the storage's
// lifetime by retaining the array (or Retain()), which is what shared views do.
func (a *Array) Bytes() []byte {
	switch v := a.data.(type) {
	case []bool:
		return alias(v, 1)
	case []int8:
		return alias(v, 1)
	case []int16:
		return alias(v, 2)
	case []int32:
		return alias(v, 4)
	case []int64:
		return alias(v, 8)
	case []float32:
		return alias(v, 4)
	case []float64:
		return alias(v, 8)
	case []uint16:
		return alias(v, 2)
	}
	return nil
}

func alias[T any](s []T, itemSize int) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*itemSize)
}

// FromBytes adopts raw element storage as a typed array without copying.
// The element count is len(data) / itemsize; trailing partial elements are an
// error upstream and refused here. Misaligned storage is refused too, the
// caller then falls back to an element-wise copy. The returned array's typed
// slice points into data's allocation, which keeps it alive.
func FromBytes(kind dtype.ElementKind, data []byte) (*Array, bool) {
	size := kind.ItemSize()
	if size == 0 || len(data)%size != 0 {
		return nil, false
	}
	n := len(data) / size
	if n == 0 {
		a, err := Zeros(kind, 0)
		return a, err == nil
	}
	p := unsafe.Pointer(unsafe.SliceData(data))
	if uintptr(p)%uintptr(size) != 0 {
		return nil, false
	}
	switch kind {
	case dtype.KindBool:
		return Bools(unsafe.Slice((*bool)(p), n)), true
	case dtype.KindInt8:
		return Int8s(unsafe.Slice((*int8)(p), n)), true
	case dtype.KindInt16:
		return Int16s(unsafe.Slice((*int16)(p), n)), true
	case dtype.KindInt32:
		return Int32s(unsafe.Slice((*int32)(p), n)), true
	case dtype.KindInt64:
		return Int64s(unsafe.Slice((*int64)(p), n)), true
	case dtype.KindFloat32:
		return Float32s(unsafe.Slice((*float32)(p), n)), true
	case dtype.KindFloat64:
		return Float64s(unsafe.Slice((*float64)(p), n)), true
	default:
		// char16 storage is never shared across the runtimes.
		return nil, false
	}
}
