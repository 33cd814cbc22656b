// Package errors provides structured error types for the array-bridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: source/destination type
// names, the offending element index, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConstruct, errors.KindOverflow).
//		Source("int32").
//		Dest("int8").
//		Index(2).
//		Value(128).
//		Detail("value outside destination range").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseConstruct, "float64", "int8")
//	err := errors.Overflow(errors.PhaseConstruct, 2, 128, "int8")
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when Phase and Kind agree, so callers
// can branch on error identity without string matching.
package errors
