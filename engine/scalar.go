package engine

import (
	"math"
	"unsafe"

	"github.com/wippyai/array-bridge/cast"
	"github.com/wippyai/array-bridge/dtype"
	"github.com/wippyai/array-bridge/errors"
)

// Scalar access for rank-1 arrays. Elements are stored in native byte order
// (a requirement of zero-copy sharing with host storage), so loads and stores
// go through direct pointer access rather than a fixed-endian codec.

func (a *Array) elem(i int) ([]byte, error) {
	if len(a.shape) != 1 {
		return nil, errors.RankRequired(errors.PhaseAssign, len(a.shape), 1)
	}
	if i < 0 || i >= a.shape[0] {
		return nil, errors.OutOfBounds(errors.PhaseAssign, i, a.shape[0])
	}
	off := i * a.strides[0]
	return a.data[off:], nil
}

// IntAt reads element i of an integer or bool array widened to int64.
// Unsigned dtypes read back their positive (two's-complement) value.
func (a *Array) IntAt(i int) (int64, error) {
	b, err := a.elem(i)
	if err != nil {
		return 0, err
	}
	switch a.dt {
	case dtype.Bool:
		if b[0] != 0 {
			return 1, nil
		}
		return 0, nil
	case dtype.Int8:
		return int64(int8(b[0])), nil
	case dtype.Uint8:
		return int64(b[0]), nil
	case dtype.Int16:
		return int64(*(*int16)(unsafe.Pointer(&b[0]))), nil
	case dtype.Uint16:
		return int64(*(*uint16)(unsafe.Pointer(&b[0]))), nil
	case dtype.Int32:
		return int64(*(*int32)(unsafe.Pointer(&b[0]))), nil
	case dtype.Uint32:
		return int64(*(*uint32)(unsafe.Pointer(&b[0]))), nil
	case dtype.Int64:
		return *(*int64)(unsafe.Pointer(&b[0])), nil
	case dtype.Uint64:
		return int64(*(*uint64)(unsafe.Pointer(&b[0]))), nil
	}
	return 0, errors.TypeMismatch(errors.PhaseAssign, a.dt.String(), "integer")
}

// FloatAt reads element i of a numeric array as float64.
func (a *Array) FloatAt(i int) (float64, error) {
	b, err := a.elem(i)
	if err != nil {
		return 0, err
	}
	switch a.dt {
	case dtype.Float32:
		return float64(*(*float32)(unsafe.Pointer(&b[0]))), nil
	case dtype.Float64:
		return *(*float64)(unsafe.Pointer(&b[0])), nil
	}
	n, err := a.IntAt(i)
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}

// RuneAt reads element i of a Str1 array.
func (a *Array) RuneAt(i int) (rune, error) {
	b, err := a.elem(i)
	if err != nil {
		return 0, err
	}
	if a.dt != dtype.Str1 {
		return 0, errors.TypeMismatch(errors.PhaseAssign, a.dt.String(), dtype.Str1.String())
	}
	return *(*rune)(unsafe.Pointer(&b[0])), nil
}

// SetInt writes an integer into element i with assignment semantics: the low
// bits land in narrower integer slots (modular wrap), float slots convert,
// bool slots store v != 0.
func (a *Array) SetInt(i int, v int64) error {
	b, err := a.elem(i)
	if err != nil {
		return err
	}
	switch a.dt {
	case dtype.Bool:
		if v != 0 {
			b[0] = 1
		} else {
			b[0] = 0
		}
	case dtype.Int8, dtype.Uint8:
		b[0] = byte(v)
	case dtype.Int16, dtype.Uint16:
		*(*uint16)(unsafe.Pointer(&b[0])) = uint16(v)
	case dtype.Int32, dtype.Uint32:
		*(*uint32)(unsafe.Pointer(&b[0])) = uint32(v)
	case dtype.Int64, dtype.Uint64:
		*(*uint64)(unsafe.Pointer(&b[0])) = uint64(v)
	case dtype.Float32:
		*(*float32)(unsafe.Pointer(&b[0])) = float32(v)
	case dtype.Float64:
		*(*float64)(unsafe.Pointer(&b[0])) = float64(v)
	default:
		return errors.TypeMismatch(errors.PhaseAssign, "integer", a.dt.String())
	}
	return nil
}

// SetFloat writes a float into element i with assignment semantics: integer
// slots truncate toward zero then wrap, float32 slots round.
func (a *Array) SetFloat(i int, v float64) error {
	if a.dt.IsInteger() || a.dt == dtype.Bool {
		if a.dt == dtype.Bool {
			return a.SetInt(i, boolBit(v != 0 && !math.IsNaN(v)))
		}
		return a.SetInt(i, cast.TruncateFloat(v, a.dt.Width()))
	}
	b, err := a.elem(i)
	if err != nil {
		return err
	}
	switch a.dt {
	case dtype.Float32:
		*(*float32)(unsafe.Pointer(&b[0])) = float32(v)
	case dtype.Float64:
		*(*float64)(unsafe.Pointer(&b[0])) = v
	default:
		return errors.TypeMismatch(errors.PhaseAssign, "float", a.dt.String())
	}
	return nil
}

// SetRune writes a rune into element i of a Str1 array.
func (a *Array) SetRune(i int, v rune) error {
	b, err := a.elem(i)
	if err != nil {
		return err
	}
	if a.dt != dtype.Str1 {
		return errors.TypeMismatch(errors.PhaseAssign, dtype.Str1.String(), a.dt.String())
	}
	*(*rune)(unsafe.Pointer(&b[0])) = v
	return nil
}

func boolBit(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
