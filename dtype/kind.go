package dtype

// ElementKind identifies a host-runtime primitive element type.
//
// The set is closed: every policy in the bridge (type table, cast rules, view
// construction) switches exhaustively over it. KindNativeInt is the platform
// default integer alias; it is only ever a destination kind, a host array
// always reports a concrete width.
type ElementKind uint8

const (
	KindBool ElementKind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindChar16
	KindNativeInt

	kindCount
)

var kindNames = [...]string{
	KindBool:      "bool",
	KindInt8:      "int8",
	KindInt16:     "int16",
	KindInt32:     "int32",
	KindInt64:     "int64",
	KindFloat32:   "float32",
	KindFloat64:   "float64",
	KindChar16:    "char16",
	KindNativeInt: "nativeint",
}

func (k ElementKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is a member of the closed kind set.
func (k ElementKind) Valid() bool {
	return k < kindCount
}

// IsInteger reports whether k is a signed fixed-width integer kind.
// KindNativeInt counts: it always resolves to one.
func (k ElementKind) IsInteger() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindNativeInt:
		return true
	default:
		return false
	}
}

// IsFloat reports whether k is a floating-point kind.
func (k ElementKind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Width returns the element width in bits for concrete kinds.
// KindNativeInt has no width of its own; resolve it through a Table first.
func (k ElementKind) Width() int {
	switch k {
	case KindBool, KindInt8:
		return 8
	case KindInt16, KindChar16:
		return 16
	case KindInt32, KindFloat32:
		return 32
	case KindInt64, KindFloat64:
		return 64
	default:
		return 0
	}
}

// ItemSize returns the storage width of one element in bytes for concrete
// kinds, and 0 for KindNativeInt (resolve through a Table first).
func (k ElementKind) ItemSize() int {
	return k.Width() / 8
}
