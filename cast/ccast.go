package cast

import "math"

// C-cast assignment semantics: the behavior of writing a scalar into an
// already-typed narrower slot. Unlike bulk construction this never errors;
// out-of-range integers wrap and floats are truncated toward zero first.

// WrapToWidth truncates v to its low width bits and sign-extends the result,
// i.e. two's-complement modular reduction into a width-bit signed slot.
// Width 64 is the identity.
func WrapToWidth(v int64, width int) int64 {
	if width >= 64 {
		return v
	}
	shift := uint(64 - width)
	return v << shift >> shift
}

// TruncateFloat converts a float to a width-bit signed integer slot with
// C-cast semantics: truncation toward zero, then modular wrap. NaN maps to 0.
func TruncateFloat(f float64, width int) int64 {
	if math.IsNaN(f) {
		return 0
	}
	t := math.Trunc(f)
	// Saturate the int64 conversion itself; the wrap below reduces further.
	switch {
	case t >= math.MaxInt64:
		return WrapToWidth(math.MaxInt64, width)
	case t <= math.MinInt64:
		return WrapToWidth(math.MinInt64, width)
	}
	return WrapToWidth(int64(t), width)
}
