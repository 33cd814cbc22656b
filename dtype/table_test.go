package dtype

import (
	"strconv"
	"testing"
)

func TestNewRejectsBadWidth(t *testing.T) {
	for _, w := range []int{0, 16, 31, 48, 128} {
		if _, err := New(w); err == nil {
			t.Errorf("New(%d) should fail", w)
		}
	}
}

func TestCanonicalTotal(t *testing.T) {
	for _, width := range []int{32, 64} {
		tbl, err := New(width)
		if err != nil {
			t.Fatal(err)
		}
		for k := ElementKind(0); k < kindCount; k++ {
			dt := tbl.Canonical(k)
			if !dt.Valid() {
				t.Errorf("width %d: Canonical(%s) invalid", width, k)
			}
			// Deterministic: the same call yields the same answer.
			if again := tbl.Canonical(k); again != dt {
				t.Errorf("width %d: Canonical(%s) not deterministic", width, k)
			}
		}
	}
}

func TestCanonicalMapping(t *testing.T) {
	tbl64, _ := New(64)
	tbl32, _ := New(32)

	tests := []struct {
		kind ElementKind
		want DType
	}{
		{KindBool, Bool},
		{KindInt8, Int8},
		{KindInt16, Int16},
		{KindInt32, Int32},
		{KindInt64, Int64},
		{KindFloat32, Float32},
		{KindFloat64, Float64},
		{KindChar16, Str1},
	}
	for _, tc := range tests {
		if got := tbl64.Canonical(tc.kind); got != tc.want {
			t.Errorf("64-bit Canonical(%s) = %s, want %s", tc.kind, got, tc.want)
		}
		if got := tbl32.Canonical(tc.kind); got != tc.want {
			t.Errorf("32-bit Canonical(%s) = %s, want %s", tc.kind, got, tc.want)
		}
	}

	if got := tbl64.Canonical(KindNativeInt); got != Int64 {
		t.Errorf("64-bit Canonical(nativeint) = %s, want int64", got)
	}
	if got := tbl32.Canonical(KindNativeInt); got != Int32 {
		t.Errorf("32-bit Canonical(nativeint) = %s, want int32", got)
	}
}

func TestMatchingKindsAmbiguity(t *testing.T) {
	tbl64, _ := New(64)

	// The platform default integer dtype is reachable from two kinds,
	// concrete width first.
	got := tbl64.MatchingKinds(Int64)
	if len(got) != 2 || got[0] != KindInt64 || got[1] != KindNativeInt {
		t.Errorf("64-bit MatchingKinds(int64) = %v, want [int64 nativeint]", got)
	}
	if got := tbl64.MatchingKinds(Int32); len(got) != 1 || got[0] != KindInt32 {
		t.Errorf("64-bit MatchingKinds(int32) = %v, want [int32]", got)
	}

	tbl32, _ := New(32)
	got = tbl32.MatchingKinds(Int32)
	if len(got) != 2 || got[0] != KindInt32 || got[1] != KindNativeInt {
		t.Errorf("32-bit MatchingKinds(int32) = %v, want [int32 nativeint]", got)
	}
	if got := tbl32.MatchingKinds(Int64); len(got) != 1 || got[0] != KindInt64 {
		t.Errorf("32-bit MatchingKinds(int64) = %v, want [int64]", got)
	}

	// Unsigned dtypes have no host kind.
	for _, dt := range []DType{Uint8, Uint16, Uint32, Uint64} {
		if got := tbl64.MatchingKinds(dt); len(got) != 0 {
			t.Errorf("MatchingKinds(%s) = %v, want none", dt, got)
		}
	}
}

func TestMatchingKindsCopies(t *testing.T) {
	tbl, _ := New(64)
	a := tbl.MatchingKinds(Int64)
	a[0] = KindBool
	b := tbl.MatchingKinds(Int64)
	if b[0] != KindInt64 {
		t.Error("MatchingKinds result must not alias table state")
	}
}

func TestInferKindConcrete(t *testing.T) {
	tbl, _ := New(64)

	k, ok := tbl.InferKind(Int64)
	if !ok || k != KindInt64 {
		t.Errorf("InferKind(int64) = %s, %v; want int64, true", k, ok)
	}
	if k == KindNativeInt {
		t.Error("inference must never report the nativeint alias")
	}

	if _, ok := tbl.InferKind(Uint8); ok {
		t.Error("InferKind(uint8) should fail, no host kind maps to it")
	}
}

func TestResolve(t *testing.T) {
	tbl64, _ := New(64)
	tbl32, _ := New(32)

	if got := tbl64.Resolve(KindNativeInt); got != KindInt64 {
		t.Errorf("64-bit Resolve(nativeint) = %s, want int64", got)
	}
	if got := tbl32.Resolve(KindNativeInt); got != KindInt32 {
		t.Errorf("32-bit Resolve(nativeint) = %s, want int32", got)
	}
	if got := tbl64.Resolve(KindInt16); got != KindInt16 {
		t.Errorf("Resolve(int16) = %s, want int16", got)
	}

	if got := tbl64.ItemSize(KindNativeInt); got != 8 {
		t.Errorf("64-bit ItemSize(nativeint) = %d, want 8", got)
	}
	if got := tbl32.ItemSize(KindNativeInt); got != 4 {
		t.Errorf("32-bit ItemSize(nativeint) = %d, want 4", got)
	}
}

func TestDefaultMatchesPlatform(t *testing.T) {
	tbl := Default()
	if tbl.NativeWidth() != strconv.IntSize {
		t.Errorf("Default width = %d, want %d", tbl.NativeWidth(), strconv.IntSize)
	}
	if Default() != tbl {
		t.Error("Default must return the same process-wide table")
	}
}
