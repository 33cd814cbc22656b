package dtype

import (
	"strconv"
	"sync"

	"github.com/wippyai/array-bridge/errors"
)

// Table is the bidirectional kind/dtype mapping for one platform width.
//
// A Table is immutable after construction and safe for unsynchronized
// concurrent reads. The process-wide instance from Default is built once from
// the native int width; tests that need the other width construct their own.
type Table struct {
	width     int // native integer width in bits
	canonical [kindCount]DType
	matching  [dtypeCount][]ElementKind
}

var (
	defaultTable *Table
	tableOnce    sync.Once
)

// Default returns the process-wide table for the host platform's native
// integer width. It is built on first use and never mutated.
func Default() *Table {
	tableOnce.Do(func() {
		t, err := New(strconv.IntSize)
		if err != nil {
			// strconv.IntSize is 32 or 64 on every supported platform.
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// New builds a table for an explicit native integer width (32 or 64).
func New(width int) (*Table, error) {
	if width != 32 && width != 64 {
		return nil, errors.InvalidData(errors.PhaseMap,
			"native integer width must be 32 or 64, got "+strconv.Itoa(width))
	}

	t := &Table{width: width}

	t.canonical[KindBool] = Bool
	t.canonical[KindInt8] = Int8
	t.canonical[KindInt16] = Int16
	t.canonical[KindInt32] = Int32
	t.canonical[KindInt64] = Int64
	t.canonical[KindFloat32] = Float32
	t.canonical[KindFloat64] = Float64
	t.canonical[KindChar16] = Str1
	if width == 64 {
		t.canonical[KindNativeInt] = Int64
	} else {
		t.canonical[KindNativeInt] = Int32
	}

	// Invert the canonical map. Concrete kinds come first so that inference
	// over an ambiguous dtype reports the concrete width, never the alias.
	for k := ElementKind(0); k < kindCount; k++ {
		dt := t.canonical[k]
		if k == KindNativeInt {
			t.matching[dt] = append(t.matching[dt], k)
			continue
		}
		t.matching[dt] = append([]ElementKind{k}, t.matching[dt]...)
	}

	return t, nil
}

// NativeWidth returns the native integer width in bits the table was built for.
func (t *Table) NativeWidth() int {
	return t.width
}

// Canonical returns the single engine dtype an element kind maps to.
// Total over the closed kind set.
func (t *Table) Canonical(k ElementKind) DType {
	if !k.Valid() {
		// Closed enum; an invalid kind is a programming error upstream.
		panic("dtype: invalid element kind " + strconv.Itoa(int(k)))
	}
	return t.canonical[k]
}

// MatchingKinds returns every element kind whose canonical dtype is dt.
// Cardinality is 1 except for the platform default integer dtype, where it is
// 2 (the concrete kind plus KindNativeInt, concrete kind first). Unsigned
// dtypes and Str1's absence of extra aliases fall out naturally: dtypes no
// kind maps to yield an empty slice.
func (t *Table) MatchingKinds(dt DType) []ElementKind {
	if !dt.Valid() {
		return nil
	}
	kinds := t.matching[dt]
	out := make([]ElementKind, len(kinds))
	copy(out, kinds)
	return out
}

// InferKind picks the element kind to report for an engine dtype: the concrete
// width kind, never KindNativeInt. ok is false when no host kind maps to dt.
func (t *Table) InferKind(dt DType) (ElementKind, bool) {
	if !dt.Valid() || len(t.matching[dt]) == 0 {
		return 0, false
	}
	return t.matching[dt][0], true
}

// Resolve replaces KindNativeInt with the concrete width kind for this
// platform. Concrete kinds pass through unchanged.
func (t *Table) Resolve(k ElementKind) ElementKind {
	if k != KindNativeInt {
		return k
	}
	if t.width == 64 {
		return KindInt64
	}
	return KindInt32
}

// ItemSize returns the storage width in bytes of one element of kind k,
// resolving KindNativeInt through the table.
func (t *Table) ItemSize(k ElementKind) int {
	return t.Resolve(k).ItemSize()
}
