// Package engine models the numeric engine's arrays: a scalar dtype tag, a
// shape of rank 1 or 2, byte strides, and raw storage in native byte order.
// This is the buffer-protocol surface the bridge converts to and from.
//
// Arrays either own their storage (New) or share somebody else's
// (FromBuffer). Shared storage is kept alive through the retain anchor, which
// every derived view carries: the backing buffer cannot be collected while a
// view is reachable, which is the whole-lifetime guarantee zero-copy
// conversion depends on.
//
// Row returns rank-1 views into rank-2 arrays without copying. Single-element
// Set* methods follow assignment semantics (modular wrap, truncation toward
// zero), mirroring the host side.
package engine
