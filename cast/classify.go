package cast

import (
	"github.com/wippyai/array-bridge/dtype"
)

// Outcome is the result of classifying a (source kind, destination kind) pair.
type Outcome uint8

const (
	// Exact: every representable source value converts with equal value.
	Exact Outcome = iota
	// WidenLossless: accepted widening whose magnitude is preserved but whose
	// precision may not be (int64 into float32/float64, int32 into float32).
	WidenLossless
	// NarrowWrap: single-element assignment semantics, two's-complement
	// modular truncation. Never produced for bulk construction.
	NarrowWrap
	// NarrowReject: the conversion is refused, see the Reason.
	NarrowReject
)

var outcomeNames = [...]string{
	Exact:         "exact",
	WidenLossless: "widen_lossless",
	NarrowWrap:    "narrow_wrap",
	NarrowReject:  "narrow_reject",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Reason qualifies a NarrowReject outcome.
type Reason uint8

const (
	ReasonNone Reason = iota
	// ReasonFloatToInt: float source into an integer destination. Rejected
	// before any value is inspected.
	ReasonFloatToInt
	// ReasonOverflow: integer or float narrowing where some values may not be
	// representable. Bulk construction must range-check each value.
	ReasonOverflow
	// ReasonIncompatible: no conversion defined between the kinds (bool and
	// char16 convert only to themselves).
	ReasonIncompatible
)

var reasonNames = [...]string{
	ReasonNone:         "none",
	ReasonFloatToInt:   "float-to-int",
	ReasonOverflow:     "overflow",
	ReasonIncompatible: "incompatible",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Classify decides the bulk-construction outcome for a kind pair. It is pure
// and considers only the kinds: a NarrowReject(overflow) result means the
// destination range may not cover every value and each one must be checked.
//
// The destination may be KindNativeInt; it is resolved through tbl. The source
// never is (host arrays always report a concrete width), but resolution is
// applied to both for totality.
func Classify(src, dst dtype.ElementKind, tbl *dtype.Table) (Outcome, Reason) {
	src = tbl.Resolve(src)
	dst = tbl.Resolve(dst)

	if src == dst {
		return Exact, ReasonNone
	}

	// Bool and char16 are their own conversion islands.
	if src == dtype.KindBool || dst == dtype.KindBool ||
		src == dtype.KindChar16 || dst == dtype.KindChar16 {
		return NarrowReject, ReasonIncompatible
	}

	switch {
	case src.IsInteger() && dst.IsInteger():
		if dst.Width() >= src.Width() {
			return Exact, ReasonNone
		}
		return NarrowReject, ReasonOverflow

	case src.IsInteger() && dst.IsFloat():
		if mantissaBits(dst) >= src.Width() {
			return Exact, ReasonNone
		}
		// Magnitude always fits; low bits of wide integers may not.
		return WidenLossless, ReasonNone

	case src.IsFloat() && dst.IsFloat():
		if dst.Width() > src.Width() {
			return Exact, ReasonNone
		}
		return NarrowReject, ReasonOverflow

	case src.IsFloat() && dst.IsInteger():
		return NarrowReject, ReasonFloatToInt
	}

	return NarrowReject, ReasonIncompatible
}

// ClassifyAssign decides the single-element assignment outcome for a kind
// pair. Where bulk construction rejects (narrowing overflow, float into int),
// assignment wraps instead: two's-complement modular truncation, floats
// truncated toward zero first. The two paths are deliberately asymmetric and
// must stay that way.
func ClassifyAssign(src, dst dtype.ElementKind, tbl *dtype.Table) (Outcome, Reason) {
	out, reason := Classify(src, dst, tbl)
	if out == NarrowReject && (reason == ReasonOverflow || reason == ReasonFloatToInt) {
		return NarrowWrap, ReasonNone
	}
	return out, reason
}

// mantissaBits returns the integer width a float kind can represent exactly.
func mantissaBits(k dtype.ElementKind) int {
	if k == dtype.KindFloat64 {
		return 53
	}
	return 24 // float32
}
