package dtype

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		want string
		kind ElementKind
	}{
		{"bool", KindBool},
		{"int8", KindInt8},
		{"int16", KindInt16},
		{"int32", KindInt32},
		{"int64", KindInt64},
		{"float32", KindFloat32},
		{"float64", KindFloat64},
		{"char16", KindChar16},
		{"nativeint", KindNativeInt},
		{"unknown", ElementKind(255)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKindPredicates(t *testing.T) {
	integers := []ElementKind{KindInt8, KindInt16, KindInt32, KindInt64, KindNativeInt}
	for _, k := range integers {
		if !k.IsInteger() {
			t.Errorf("%s should be integer", k)
		}
	}

	floats := []ElementKind{KindFloat32, KindFloat64}
	for _, k := range floats {
		if !k.IsFloat() {
			t.Errorf("%s should be float", k)
		}
		if k.IsInteger() {
			t.Errorf("%s should not be integer", k)
		}
	}

	for _, k := range []ElementKind{KindBool, KindChar16} {
		if k.IsInteger() || k.IsFloat() {
			t.Errorf("%s should be neither integer nor float", k)
		}
	}
}

func TestKindItemSize(t *testing.T) {
	tests := []struct {
		kind ElementKind
		want int
	}{
		{KindBool, 1},
		{KindInt8, 1},
		{KindInt16, 2},
		{KindInt32, 4},
		{KindInt64, 8},
		{KindFloat32, 4},
		{KindFloat64, 8},
		{KindChar16, 2},
		{KindNativeInt, 0}, // no width of its own
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := tc.kind.ItemSize(); got != tc.want {
				t.Errorf("ItemSize() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDTypeString(t *testing.T) {
	tests := []struct {
		want  string
		dtype DType
	}{
		{"bool", Bool},
		{"int8", Int8},
		{"uint8", Uint8},
		{"int16", Int16},
		{"uint16", Uint16},
		{"int32", Int32},
		{"uint32", Uint32},
		{"int64", Int64},
		{"uint64", Uint64},
		{"float32", Float32},
		{"float64", Float64},
		{"<U1", Str1},
		{"unknown", DType(255)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.dtype.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDTypeItemSize(t *testing.T) {
	tests := []struct {
		dtype DType
		want  int
	}{
		{Bool, 1},
		{Int8, 1},
		{Uint8, 1},
		{Int16, 2},
		{Uint16, 2},
		{Int32, 4},
		{Uint32, 4},
		{Int64, 8},
		{Uint64, 8},
		{Float32, 4},
		{Float64, 8},
		{Str1, 4}, // one rune per element
	}

	for _, tc := range tests {
		if got := tc.dtype.ItemSize(); got != tc.want {
			t.Errorf("%s: ItemSize() = %d, want %d", tc.dtype, got, tc.want)
		}
	}
}

func TestDTypeSignedness(t *testing.T) {
	signed := []DType{Int8, Int16, Int32, Int64}
	for _, d := range signed {
		if !d.IsSigned() || !d.IsInteger() {
			t.Errorf("%s should be a signed integer", d)
		}
	}

	unsigned := []DType{Uint8, Uint16, Uint32, Uint64}
	for _, d := range unsigned {
		if d.IsSigned() {
			t.Errorf("%s should not be signed", d)
		}
		if !d.IsInteger() {
			t.Errorf("%s should be an integer", d)
		}
	}

	for _, d := range []DType{Bool, Float32, Float64, Str1} {
		if d.IsInteger() {
			t.Errorf("%s should not be an integer", d)
		}
	}
}
