// Package bufview builds zero-copy buffer views between host arrays and
// engine arrays.
//
// A view is constructible when the two sides agree on the canonical dtype and
// the memory layout is contiguous at rank 1 or 2; otherwise construction
// declines and the caller falls back to element-wise conversion. Views carry
// a retain anchor so the viewed storage cannot be collected while the view,
// or anything derived from it, is reachable.
package bufview
