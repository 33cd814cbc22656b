// Package bridge converts typed arrays between the host runtime and the
// numeric engine.
//
// Conversion layers:
//
//	bridge
//	├── bridge.go     - Bridge, ToEngine / ToEngineAs / FromEngine
//	├── construct.go  - bulk construction with cast rules, copy fallbacks
//	├── twod.go       - rank-2 construction and row-wise reconstruction
//	├── char.go       - char16 <-> str1 width adapter
//	└── logger.go     - package logger (no-op by default)
//
// Two regimes apply, and they are never mixed:
//
//   - Bulk construction (FromEngine, ConstructWithCast) classifies the whole
//     (source, destination) pair once. Lossless pairs convert; narrowing
//     integer pairs range-check each value and fail on the first overflow;
//     float sources never bulk-convert into integer destinations, not even
//     when every value is integral.
//
//   - Element assignment (ToEngineAs with a non-canonical dtype, and the
//     SetInt/SetFloat scalar writers) uses C conversion semantics: narrower
//     integer slots take the low bits, float values truncate toward zero.
//
// Wherever the host kind's canonical dtype matches the engine dtype and the
// layout permits, conversion is a zero-copy buffer share: the destination
// array aliases the source storage and anchors it against collection.
package bridge
