package host

import (
	arraybridge "github.com/wippyai/array-bridge"
	"github.com/wippyai/array-bridge/cast"
	"github.com/wippyai/array-bridge/dtype"
	"github.com/wippyai/array-bridge/errors"
)

var (
	_ arraybridge.Buffer   = (*Array)(nil)
	_ arraybridge.Retainer = (*Array)(nil)
)

// Array is a host-runtime typed array: a fixed element kind over contiguous
// element storage. The kind is always concrete; KindNativeInt never appears
// here. Arrays are created with their final length and never resized, so the
// storage backing a shared view stays valid for as long as the view holds a
// reference to it.
type Array struct {
	kind dtype.ElementKind
	data any // typed slice matching kind
}

// Constructors, one per kind. The slice is adopted, not copied.

func Bools(v []bool) *Array       { return &Array{kind: dtype.KindBool, data: v} }
func Int8s(v []int8) *Array       { return &Array{kind: dtype.KindInt8, data: v} }
func Int16s(v []int16) *Array     { return &Array{kind: dtype.KindInt16, data: v} }
func Int32s(v []int32) *Array     { return &Array{kind: dtype.KindInt32, data: v} }
func Int64s(v []int64) *Array     { return &Array{kind: dtype.KindInt64, data: v} }
func Float32s(v []float32) *Array { return &Array{kind: dtype.KindFloat32, data: v} }
func Float64s(v []float64) *Array { return &Array{kind: dtype.KindFloat64, data: v} }

// Char16s adopts a slice of UTF-16 code units, one per element.
func Char16s(v []uint16) *Array { return &Array{kind: dtype.KindChar16, data: v} }

// Zeros returns a zero-filled array of n elements of the given concrete kind.
func Zeros(kind dtype.ElementKind, n int) (*Array, error) {
	switch kind {
	case dtype.KindBool:
		return Bools(make([]bool, n)), nil
	case dtype.KindInt8:
		return Int8s(make([]int8, n)), nil
	case dtype.KindInt16:
		return Int16s(make([]int16, n)), nil
	case dtype.KindInt32:
		return Int32s(make([]int32, n)), nil
	case dtype.KindInt64:
		return Int64s(make([]int64, n)), nil
	case dtype.KindFloat32:
		return Float32s(make([]float32, n)), nil
	case dtype.KindFloat64:
		return Float64s(make([]float64, n)), nil
	case dtype.KindChar16:
		return Char16s(make([]uint16, n)), nil
	default:
		return nil, errors.InvalidData(errors.PhaseConstruct,
			"cannot allocate host array of kind "+kind.String())
	}
}

// Kind returns the concrete element kind.
func (a *Array) Kind() dtype.ElementKind { return a.kind }

// Len returns the element count.
func (a *Array) Len() int {
	switch v := a.data.(type) {
	case []bool:
		return len(v)
	case []int8:
		return len(v)
	case []int16:
		return len(v)
	case []int32:
		return len(v)
	case []int64:
		return len(v)
	case []float32:
		return len(v)
	case []float64:
		return len(v)
	case []uint16:
		return len(v)
	}
	return 0
}

// ItemSize returns the width of one element in bytes.
func (a *Array) ItemSize() int { return a.kind.ItemSize() }

// Shape returns the rank-1 shape.
func (a *Array) Shape() []int { return []int{a.Len()} }

// Strides returns the byte stride of the single dimension.
func (a *Array) Strides() []int { return []int{a.ItemSize()} }

// Retain returns the value that keeps the element storage reachable.
func (a *Array) Retain() any { return a.data }

// Typed slice accessors. ok is false when the kind does not match.

func (a *Array) BoolData() ([]bool, bool)       { v, ok := a.data.([]bool); return v, ok }
func (a *Array) Int8Data() ([]int8, bool)       { v, ok := a.data.([]int8); return v, ok }
func (a *Array) Int16Data() ([]int16, bool)     { v, ok := a.data.([]int16); return v, ok }
func (a *Array) Int32Data() ([]int32, bool)     { v, ok := a.data.([]int32); return v, ok }
func (a *Array) Int64Data() ([]int64, bool)     { v, ok := a.data.([]int64); return v, ok }
func (a *Array) Float32Data() ([]float32, bool) { v, ok := a.data.([]float32); return v, ok }
func (a *Array) Float64Data() ([]float64, bool) { v, ok := a.data.([]float64); return v, ok }
func (a *Array) Char16Data() ([]uint16, bool)   { v, ok := a.data.([]uint16); return v, ok }

// IntAt reads element i of an integer-kind array widened to int64.
func (a *Array) IntAt(i int) (int64, error) {
	if err := a.checkIndex(i); err != nil {
		return 0, err
	}
	switch v := a.data.(type) {
	case []int8:
		return int64(v[i]), nil
	case []int16:
		return int64(v[i]), nil
	case []int32:
		return int64(v[i]), nil
	case []int64:
		return v[i], nil
	}
	return 0, errors.TypeMismatch(errors.PhaseAssign, a.kind.String(), "integer")
}

// FloatAt reads element i of a numeric array as float64. Integer kinds widen;
// int64 values may lose precision, magnitude is preserved.
func (a *Array) FloatAt(i int) (float64, error) {
	if err := a.checkIndex(i); err != nil {
		return 0, err
	}
	switch v := a.data.(type) {
	case []float32:
		return float64(v[i]), nil
	case []float64:
		return v[i], nil
	}
	n, err := a.IntAt(i)
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}

// SetInt writes an integer value into slot i with assignment semantics: a
// value outside the slot's range wraps with two's-complement modular
// truncation. Writing into a float slot converts; bool and char slots reject.
func (a *Array) SetInt(i int, v int64) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	switch s := a.data.(type) {
	case []int8:
		s[i] = int8(cast.WrapToWidth(v, 8))
	case []int16:
		s[i] = int16(cast.WrapToWidth(v, 16))
	case []int32:
		s[i] = int32(cast.WrapToWidth(v, 32))
	case []int64:
		s[i] = v
	case []float32:
		s[i] = float32(v)
	case []float64:
		s[i] = float64(v)
	default:
		return errors.TypeMismatch(errors.PhaseAssign, "integer", a.kind.String())
	}
	return nil
}

// SetFloat writes a float value into slot i with assignment semantics: float
// slots store it (float32 may round), integer slots truncate toward zero and
// wrap. Bool and char slots reject.
func (a *Array) SetFloat(i int, v float64) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	switch s := a.data.(type) {
	case []float32:
		s[i] = float32(v)
	case []float64:
		s[i] = v
	case []int8:
		s[i] = int8(cast.TruncateFloat(v, 8))
	case []int16:
		s[i] = int16(cast.TruncateFloat(v, 16))
	case []int32:
		s[i] = int32(cast.TruncateFloat(v, 32))
	case []int64:
		s[i] = cast.TruncateFloat(v, 64)
	default:
		return errors.TypeMismatch(errors.PhaseAssign, "float", a.kind.String())
	}
	return nil
}

// SetBool writes into a bool slot.
func (a *Array) SetBool(i int, v bool) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	s, ok := a.data.([]bool)
	if !ok {
		return errors.TypeMismatch(errors.PhaseAssign, "bool", a.kind.String())
	}
	s[i] = v
	return nil
}

// SetChar writes a single UTF-16 code unit into a char slot.
func (a *Array) SetChar(i int, v uint16) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	s, ok := a.data.([]uint16)
	if !ok {
		return errors.TypeMismatch(errors.PhaseAssign, "char16", a.kind.String())
	}
	s[i] = v
	return nil
}

func (a *Array) checkIndex(i int) error {
	if n := a.Len(); i < 0 || i >= n {
		return errors.OutOfBounds(errors.PhaseAssign, i, n)
	}
	return nil
}
