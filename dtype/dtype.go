package dtype

// DType identifies an engine-runtime scalar type.
//
// Each ElementKind maps to exactly one canonical DType, but a DType can be
// reachable from two kinds: on a 64-bit platform Int64 is the canonical dtype
// of both KindInt64 and KindNativeInt (and symmetrically for Int32 on 32-bit).
// The unsigned dtypes have no host kind at all; they are reachable only through
// explicit-dtype conversion on the engine side.
type DType uint8

const (
	Bool DType = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	Str1

	dtypeCount
)

var dtypeNames = [...]string{
	Bool:    "bool",
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int64:   "int64",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	Str1:    "<U1",
}

func (d DType) String() string {
	if int(d) < len(dtypeNames) {
		return dtypeNames[d]
	}
	return "unknown"
}

// Valid reports whether d is a member of the closed dtype set.
func (d DType) Valid() bool {
	return d < dtypeCount
}

// ItemSize returns the storage width of one element in bytes.
// Str1 stores one rune per element (UCS-4, matching the "<U1" identity).
func (d DType) ItemSize() int {
	switch d {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32, Str1:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// IsInteger reports whether d is a fixed-width integer dtype.
func (d DType) IsInteger() bool {
	switch d {
	case Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64:
		return true
	default:
		return false
	}
}

// IsSigned reports whether d is a signed integer dtype.
func (d DType) IsSigned() bool {
	switch d {
	case Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether d is a floating-point dtype.
func (d DType) IsFloat() bool {
	return d == Float32 || d == Float64
}

// Width returns the element width in bits.
func (d DType) Width() int {
	return d.ItemSize() * 8
}
