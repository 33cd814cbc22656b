// Package host models the host runtime's typed arrays: fixed-width primitive
// elements in contiguous storage, always reporting a concrete element kind.
//
// Single-element writes (SetInt, SetFloat) follow assignment semantics:
// out-of-range integers wrap with two's-complement modular truncation and
// floats truncate toward zero when written into integer slots. This matches
// the in-place assignment contract of the bridge and intentionally differs
// from bulk construction, which rejects such values.
//
// Bytes exposes the element storage zero-copy for view construction.
package host
