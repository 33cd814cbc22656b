package engine

import (
	"unsafe"

	arraybridge "github.com/wippyai/array-bridge"
	"github.com/wippyai/array-bridge/dtype"
	"github.com/wippyai/array-bridge/errors"
)

var (
	_ arraybridge.Buffer   = (*Array)(nil)
	_ arraybridge.Retainer = (*Array)(nil)
)

// Array is an engine-runtime array: a dtype tag, a shape of rank 1 or 2, byte
// strides, and raw element storage in native byte order.
//
// Storage may be owned (allocated by New) or shared (adopted by FromBuffer).
// The retain field anchors whatever keeps shared storage alive; row views and
// host-side views propagate it, so the Go runtime cannot collect the backing
// buffer while any view is reachable.
type Array struct {
	dt      dtype.DType
	shape   []int
	strides []int
	data    []byte
	retain  any
}

// New allocates a zero-filled C-contiguous array.
func New(dt dtype.DType, shape ...int) (*Array, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	if !dt.Valid() {
		return nil, errors.InvalidData(errors.PhaseConstruct, "invalid dtype")
	}
	n := 1
	for _, d := range shape {
		n *= d
	}
	// Allocate through a word slice so the storage is 8-byte aligned; typed
	// zero-copy views over it rely on that.
	size := n * dt.ItemSize()
	words := make([]uint64, (size+7)/8)
	data := alias(words, size)
	return &Array{
		dt:      dt,
		shape:   append([]int(nil), shape...),
		strides: contiguousStrides(shape, dt.ItemSize()),
		data:    data,
		retain:  words,
	}, nil
}

// FromBuffer adopts existing storage without copying. retain is the value
// that keeps the storage alive (typically the source array); the new array
// holds it for its whole lifetime.
func FromBuffer(dt dtype.DType, shape, strides []int, data []byte, retain any) (*Array, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	if len(strides) != len(shape) {
		return nil, errors.InvalidData(errors.PhaseConstruct, "strides rank does not match shape rank")
	}
	n := 1
	for _, d := range shape {
		n *= d
	}
	if want := n * dt.ItemSize(); len(data) < want {
		return nil, errors.New(errors.PhaseConstruct, errors.KindInvalidData).
			Detail("buffer holds %d bytes, shape needs %d", len(data), want).
			Build()
	}
	return &Array{
		dt:      dt,
		shape:   append([]int(nil), shape...),
		strides: append([]int(nil), strides...),
		data:    data,
		retain:  retain,
	}, nil
}

func checkShape(shape []int) error {
	if len(shape) < 1 || len(shape) > 2 {
		return errors.UnsupportedRank(errors.PhaseConstruct, len(shape))
	}
	for _, d := range shape {
		if d < 0 {
			return errors.InvalidData(errors.PhaseConstruct, "negative dimension")
		}
	}
	return nil
}

func alias(words []uint64, size int) []byte {
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), size)
}

func contiguousStrides(shape []int, itemSize int) []int {
	strides := make([]int, len(shape))
	stride := itemSize
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return strides
}

// DType returns the scalar type tag.
func (a *Array) DType() dtype.DType { return a.dt }

// Rank returns the number of dimensions (1 or 2).
func (a *Array) Rank() int { return len(a.shape) }

// Len returns the total element count across all dimensions.
func (a *Array) Len() int {
	n := 1
	for _, d := range a.shape {
		n *= d
	}
	return n
}

// ItemSize returns the width of one element in bytes.
func (a *Array) ItemSize() int { return a.dt.ItemSize() }

// Shape returns a copy of the dimension extents.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Strides returns a copy of the per-dimension byte strides.
func (a *Array) Strides() []int { return append([]int(nil), a.strides...) }

// Bytes returns the raw element storage. Shared, not copied.
func (a *Array) Bytes() []byte { return a.data }

// Retain returns the value anchoring the underlying storage.
func (a *Array) Retain() any { return a.retain }

// Contiguous reports whether the array is laid out C-contiguously.
func (a *Array) Contiguous() bool {
	want := contiguousStrides(a.shape, a.dt.ItemSize())
	for i := range want {
		if a.strides[i] != want[i] {
			return false
		}
	}
	return true
}

// Row returns a rank-1 view of row i of a rank-2 array. The view shares the
// buffer; no element is copied, and the parent's storage anchor is carried
// over so the buffer outlives the row.
func (a *Array) Row(i int) (*Array, error) {
	if len(a.shape) != 2 {
		return nil, errors.RankRequired(errors.PhaseView, len(a.shape), 2)
	}
	if i < 0 || i >= a.shape[0] {
		return nil, errors.OutOfBounds(errors.PhaseView, i, a.shape[0])
	}
	off := i * a.strides[0]
	rowBytes := a.shape[1] * a.strides[1]
	return &Array{
		dt:      a.dt,
		shape:   []int{a.shape[1]},
		strides: []int{a.strides[1]},
		data:    a.data[off : off+rowBytes : off+rowBytes],
		retain:  a.retain,
	}, nil
}
