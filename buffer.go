package arraybridge

// Buffer is the buffer-protocol contract both runtimes expose: a raw byte
// region plus enough layout metadata to interpret it as a homogeneous array.
type Buffer interface {
	// Bytes returns the raw element storage. The slice aliases the owner's
	// memory; it must not be retained past the owner's documented lifetime.
	Bytes() []byte
	// ItemSize returns the width of one element in bytes.
	ItemSize() int
	// Shape returns the dimension extents, outermost first. Rank is 1 or 2.
	Shape() []int
	// Strides returns the per-dimension byte strides matching Shape.
	Strides() []int
}

// Retainer is implemented by arrays whose storage can be shared without
// copying. Retain returns a value that keeps the underlying buffer reachable;
// holders of a shared view keep it until the view is dropped.
type Retainer interface {
	Retain() any
}
