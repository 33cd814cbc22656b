package bufview

import (
	"github.com/wippyai/array-bridge/dtype"
	"github.com/wippyai/array-bridge/engine"
	"github.com/wippyai/array-bridge/host"
)

// View describes a contiguous memory region both runtimes can use without
// copying: element identities on both sides, layout, and the raw bytes.
//
// A View never owns memory. It anchors the source's storage through retain,
// so the buffer stays alive for at least the view's lifetime; whoever holds
// the view longest keeps the buffer.
type View struct {
	Kind    dtype.ElementKind
	DType   dtype.DType
	Shape   []int
	Strides []int
	Data    []byte

	retain any
}

// Retain returns the anchor keeping the viewed storage alive. Derived arrays
// must carry it forward.
func (v *View) Retain() any { return v.retain }

// Len returns the total element count.
func (v *View) Len() int {
	n := 1
	for _, d := range v.Shape {
		n *= d
	}
	return n
}

// FromHost attempts a zero-copy view of a host array as the engine dtype
// target. It succeeds exactly when the host kind's canonical dtype is target
// and both sides store elements at the same width; char16 never qualifies
// (2-byte units versus 4-byte engine storage). No bytes are copied.
func FromHost(a *host.Array, target dtype.DType, tbl *dtype.Table) (*View, bool) {
	if a.Kind() == dtype.KindChar16 {
		return nil, false
	}
	if tbl.Canonical(a.Kind()) != target {
		return nil, false
	}
	return &View{
		Kind:    a.Kind(),
		DType:   target,
		Shape:   a.Shape(),
		Strides: a.Strides(),
		Data:    a.Bytes(),
		retain:  a.Retain(),
	}, true
}

// FromEngine attempts a zero-copy view of an engine array as the host kind
// dst. It succeeds exactly when the engine dtype is dst's canonical dtype and
// the layout is C-contiguous at rank 1 or 2. This makes an array of the
// platform default integer dtype viewable as KindNativeInt with zero copy.
// The reported Kind is always concrete, never the nativeint alias.
func FromEngine(a *engine.Array, dst dtype.ElementKind, tbl *dtype.Table) (*View, bool) {
	if dst == dtype.KindChar16 {
		return nil, false
	}
	if tbl.Canonical(dst) != a.DType() {
		return nil, false
	}
	if a.Rank() > 2 || !a.Contiguous() {
		return nil, false
	}
	return &View{
		Kind:    tbl.Resolve(dst),
		DType:   a.DType(),
		Shape:   a.Shape(),
		Strides: a.Strides(),
		Data:    a.Bytes(),
		retain:  a.Retain(),
	}, true
}
