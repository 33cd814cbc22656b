// Package cast decides, for a (source kind, destination kind) pair, how a
// conversion behaves: exact, lossless widening, wraparound truncation, or
// rejection with a reason.
//
// There are two deliberately different rule sets:
//
//   - Bulk construction (Classify): building a whole destination array from a
//     typed source. Narrowing rejects values outside the destination range
//     (per-value check), and a float source never converts into an integer
//     destination regardless of its values.
//   - Single-element assignment (ClassifyAssign): writing one value into an
//     existing typed slot. Narrowing wraps with two's-complement modular
//     arithmetic and floats truncate toward zero; no error is possible.
//
// Callers must pick the entry point matching their operation; the two rule
// sets are never unified.
//
// All functions are pure. Classification considers only the kinds; the
// per-value range checks (NarrowInts, NarrowFloats) run afterwards when the
// classification demands them.
package cast
