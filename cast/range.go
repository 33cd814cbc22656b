package cast

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/wippyai/array-bridge/dtype"
)

// Numeric covers every element type the conversion kernels operate on.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// RangeOf returns the inclusive value range of a signed integer kind.
// KindNativeInt must be resolved before calling.
func RangeOf(k dtype.ElementKind) (lo, hi int64) {
	switch k {
	case dtype.KindInt8:
		return math.MinInt8, math.MaxInt8
	case dtype.KindInt16:
		return math.MinInt16, math.MaxInt16
	case dtype.KindInt32:
		return math.MinInt32, math.MaxInt32
	case dtype.KindInt64:
		return math.MinInt64, math.MaxInt64
	default:
		return 0, 0
	}
}

// Convert converts every element unconditionally. Used for the Exact and
// WidenLossless outcomes, where no value can fail.
func Convert[D, S Numeric](src []S) []D {
	dst := make([]D, len(src))
	for i, v := range src {
		dst[i] = D(v)
	}
	return dst
}

// NarrowInts converts integer values with a per-value range check against the
// inclusive [lo, hi] destination range. On the first value outside the range
// it stops and returns its index with ok=false.
func NarrowInts[D, S constraints.Signed](src []S, lo, hi int64) ([]D, int, bool) {
	dst := make([]D, len(src))
	for i, v := range src {
		if int64(v) < lo || int64(v) > hi {
			return nil, i, false
		}
		dst[i] = D(v)
	}
	return dst, 0, true
}

// NarrowFloats converts float64 values to float32 with a per-value range
// check. Infinities and NaN pass through; a finite value whose magnitude
// exceeds the float32 range fails with its index.
func NarrowFloats(src []float64) ([]float32, int, bool) {
	dst := make([]float32, len(src))
	for i, v := range src {
		if !math.IsInf(v, 0) && !math.IsNaN(v) && math.Abs(v) > math.MaxFloat32 {
			return nil, i, false
		}
		dst[i] = float32(v)
	}
	return dst, 0, true
}
