// Package dtype defines the element type vocabulary shared by both runtimes.
//
// ElementKind is the host runtime's closed set of primitive array element
// types; DType is the engine runtime's scalar type identity. The Table maps
// between them:
//
//	Kind        Canonical dtype
//	───────────────────────────
//	bool        bool
//	int8        int8
//	int16       int16
//	int32       int32
//	int64       int64
//	float32     float32
//	float64     float64
//	char16      <U1
//	nativeint   int32 or int64 (platform native int width)
//
// The nativeint row is the one deliberate ambiguity: on a 64-bit platform the
// int64 dtype is reachable from both int64 and nativeint, and inference over
// that dtype must report the concrete width. The Table preserves this
// many-to-one relationship exactly; it is built once per process from the
// native integer width and is read-only thereafter.
package dtype
