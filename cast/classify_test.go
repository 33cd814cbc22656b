package cast

import (
	"testing"

	"github.com/wippyai/array-bridge/dtype"
)

func table64(t *testing.T) *dtype.Table {
	t.Helper()
	tbl, err := dtype.New(64)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestClassify(t *testing.T) {
	tbl := table64(t)

	tests := []struct {
		src, dst dtype.ElementKind
		outcome  Outcome
		reason   Reason
	}{
		// Identity.
		{dtype.KindBool, dtype.KindBool, Exact, ReasonNone},
		{dtype.KindInt32, dtype.KindInt32, Exact, ReasonNone},
		{dtype.KindFloat64, dtype.KindFloat64, Exact, ReasonNone},
		{dtype.KindChar16, dtype.KindChar16, Exact, ReasonNone},

		// Signed integer widening.
		{dtype.KindInt8, dtype.KindInt16, Exact, ReasonNone},
		{dtype.KindInt8, dtype.KindInt64, Exact, ReasonNone},
		{dtype.KindInt16, dtype.KindInt32, Exact, ReasonNone},
		{dtype.KindInt32, dtype.KindInt64, Exact, ReasonNone},

		// Integer narrowing: needs a per-value check.
		{dtype.KindInt16, dtype.KindInt8, NarrowReject, ReasonOverflow},
		{dtype.KindInt32, dtype.KindInt8, NarrowReject, ReasonOverflow},
		{dtype.KindInt64, dtype.KindInt32, NarrowReject, ReasonOverflow},

		// Integer into float: exact while the mantissa covers the width.
		{dtype.KindInt8, dtype.KindFloat32, Exact, ReasonNone},
		{dtype.KindInt16, dtype.KindFloat32, Exact, ReasonNone},
		{dtype.KindInt32, dtype.KindFloat32, WidenLossless, ReasonNone},
		{dtype.KindInt64, dtype.KindFloat32, WidenLossless, ReasonNone},
		{dtype.KindInt8, dtype.KindFloat64, Exact, ReasonNone},
		{dtype.KindInt32, dtype.KindFloat64, Exact, ReasonNone},
		{dtype.KindInt64, dtype.KindFloat64, WidenLossless, ReasonNone},

		// Float widening and narrowing.
		{dtype.KindFloat32, dtype.KindFloat64, Exact, ReasonNone},
		{dtype.KindFloat64, dtype.KindFloat32, NarrowReject, ReasonOverflow},

		// Float into integer: rejected without looking at values.
		{dtype.KindFloat32, dtype.KindInt8, NarrowReject, ReasonFloatToInt},
		{dtype.KindFloat32, dtype.KindInt64, NarrowReject, ReasonFloatToInt},
		{dtype.KindFloat64, dtype.KindInt32, NarrowReject, ReasonFloatToInt},

		// Bool and char16 convert only to themselves.
		{dtype.KindBool, dtype.KindInt8, NarrowReject, ReasonIncompatible},
		{dtype.KindInt8, dtype.KindBool, NarrowReject, ReasonIncompatible},
		{dtype.KindChar16, dtype.KindInt16, NarrowReject, ReasonIncompatible},
		{dtype.KindFloat64, dtype.KindChar16, NarrowReject, ReasonIncompatible},

		// NativeInt destination resolves to the platform width (64 here).
		{dtype.KindInt32, dtype.KindNativeInt, Exact, ReasonNone},
		{dtype.KindInt64, dtype.KindNativeInt, Exact, ReasonNone},
		{dtype.KindFloat32, dtype.KindNativeInt, NarrowReject, ReasonFloatToInt},
	}

	for _, tc := range tests {
		t.Run(tc.src.String()+"->"+tc.dst.String(), func(t *testing.T) {
			out, reason := Classify(tc.src, tc.dst, tbl)
			if out != tc.outcome || reason != tc.reason {
				t.Errorf("Classify(%s, %s) = (%s, %s), want (%s, %s)",
					tc.src, tc.dst, out, reason, tc.outcome, tc.reason)
			}
		})
	}
}

func TestClassifyNativeInt32Bit(t *testing.T) {
	tbl, err := dtype.New(32)
	if err != nil {
		t.Fatal(err)
	}

	// On a 32-bit platform nativeint is int32, so an int64 source narrows.
	out, reason := Classify(dtype.KindInt64, dtype.KindNativeInt, tbl)
	if out != NarrowReject || reason != ReasonOverflow {
		t.Errorf("Classify(int64, nativeint) on 32-bit = (%s, %s), want (narrow_reject, overflow)",
			out, reason)
	}
}

func TestClassifyAssignWraps(t *testing.T) {
	tbl := table64(t)

	// Where bulk construction rejects, assignment wraps.
	tests := []struct {
		src, dst dtype.ElementKind
	}{
		{dtype.KindInt32, dtype.KindInt8},
		{dtype.KindInt64, dtype.KindInt16},
		{dtype.KindFloat32, dtype.KindInt8},
		{dtype.KindFloat64, dtype.KindInt64},
		{dtype.KindFloat64, dtype.KindFloat32},
	}
	for _, tc := range tests {
		out, reason := ClassifyAssign(tc.src, tc.dst, tbl)
		if out != NarrowWrap || reason != ReasonNone {
			t.Errorf("ClassifyAssign(%s, %s) = (%s, %s), want (narrow_wrap, none)",
				tc.src, tc.dst, out, reason)
		}
	}

	// Exact and incompatible pairs are unchanged.
	if out, _ := ClassifyAssign(dtype.KindInt8, dtype.KindInt64, tbl); out != Exact {
		t.Errorf("ClassifyAssign(int8, int64) = %s, want exact", out)
	}
	out, reason := ClassifyAssign(dtype.KindBool, dtype.KindInt8, tbl)
	if out != NarrowReject || reason != ReasonIncompatible {
		t.Errorf("ClassifyAssign(bool, int8) = (%s, %s), want (narrow_reject, incompatible)",
			out, reason)
	}
}

// Bulk construction rejecting while assignment wraps is the contract the rest
// of the bridge is built on; lock it down pairwise.
func TestBulkAssignAsymmetry(t *testing.T) {
	tbl := table64(t)

	bulk, bulkReason := Classify(dtype.KindInt32, dtype.KindInt8, tbl)
	assign, _ := ClassifyAssign(dtype.KindInt32, dtype.KindInt8, tbl)
	if bulk != NarrowReject || bulkReason != ReasonOverflow {
		t.Fatalf("bulk int32->int8 = (%s, %s)", bulk, bulkReason)
	}
	if assign != NarrowWrap {
		t.Fatalf("assign int32->int8 = %s", assign)
	}

	bulk, bulkReason = Classify(dtype.KindFloat64, dtype.KindInt8, tbl)
	assign, _ = ClassifyAssign(dtype.KindFloat64, dtype.KindInt8, tbl)
	if bulk != NarrowReject || bulkReason != ReasonFloatToInt {
		t.Fatalf("bulk float64->int8 = (%s, %s)", bulk, bulkReason)
	}
	if assign != NarrowWrap {
		t.Fatalf("assign float64->int8 = %s", assign)
	}
}

func TestOutcomeReasonStrings(t *testing.T) {
	if Exact.String() != "exact" || NarrowWrap.String() != "narrow_wrap" {
		t.Error("outcome names wrong")
	}
	if ReasonFloatToInt.String() != "float-to-int" || ReasonOverflow.String() != "overflow" {
		t.Error("reason names wrong")
	}
	if Outcome(200).String() != "unknown" || Reason(200).String() != "unknown" {
		t.Error("out-of-range names should be unknown")
	}
}
