// Package arraybridge moves typed arrays between a statically typed host
// runtime and a dynamically typed numeric engine.
//
// The host side works in fixed-width element kinds (bool, int8..int64,
// float32/float64, 16-bit chars); the engine side works in dtype-tagged
// n-dimensional buffers. The bridge maps between the two with zero-copy
// buffer sharing wherever the layouts agree and well-defined cast rules
// everywhere else.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	arraybridge/         Root package with the Buffer and Retainer contracts
//	├── bridge/          High-level conversion API between the runtimes
//	├── dtype/           Element kinds, engine dtypes, and the platform type table
//	├── cast/            Cast classification and conversion kernels
//	├── host/            Host-runtime typed arrays
//	├── engine/          Engine-runtime dtype-tagged arrays (rank 1 and 2)
//	├── bufview/         Zero-copy buffer views shared by both runtimes
//	├── matadapt/        gonum matrix adapters over float64 engine arrays
//	└── errors/          Structured error types for conversion failures
//
// # Quick Start
//
// Share a host array with the engine and get it back:
//
//	b := bridge.New()
//
//	arr, dt, err := b.ToEngine(host.Int32s([]int32{1, 2, 3}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dt) // "int32", sharing the host storage
//
//	back, err := b.FromEngine(arr, dtype.KindInt32)
//
// # Conversion Semantics
//
// Two regimes apply depending on direction and explicitness:
//
//   - Bulk construction classifies the whole type pair once: lossless pairs
//     convert, narrowing integer pairs range-check every value and reject on
//     overflow, and float sources never construct integer destinations.
//   - Element assignment follows C conversion rules: narrower integer slots
//     take the low bits and float values truncate toward zero.
//
// # Memory Model
//
// A zero-copy view anchors its source storage through a retain value, so the
// garbage collector keeps the buffer alive for as long as any array or view
// referencing it is reachable. Host arrays are created at their final length
// and never resized; the storage behind a shared view therefore never moves.
package arraybridge
