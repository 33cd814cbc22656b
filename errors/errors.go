package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in a conversion the error occurred
type Phase string

const (
	PhaseMap       Phase = "map"       // type table resolution
	PhaseConstruct Phase = "construct" // bulk array construction
	PhaseView      Phase = "view"      // zero-copy view construction
	PhaseAssign    Phase = "assign"    // single-element assignment
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch    Kind = "type_mismatch"
	KindOverflow        Kind = "overflow"
	KindRaggedShape     Kind = "ragged_shape"
	KindUnsupportedRank Kind = "unsupported_rank"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindInvalidData     Kind = "invalid_data"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	SourceType string
	DestType   string
	Detail     string
	Index      int // offending element index, -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Index >= 0 {
		fmt.Fprintf(&b, " at index %d", e.Index)
	}

	if e.SourceType != "" || e.DestType != "" {
		b.WriteString(": ")
		if e.SourceType != "" && e.DestType != "" {
			b.WriteString(e.SourceType)
			b.WriteString(" -> ")
			b.WriteString(e.DestType)
		} else if e.SourceType != "" {
			b.WriteString("source ")
			b.WriteString(e.SourceType)
		} else {
			b.WriteString("destination ")
			b.WriteString(e.DestType)
		}
	}

	if e.Detail != "" {
		if e.SourceType != "" || e.DestType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
			Index: -1,
		},
	}
}

// Source sets the source type name
func (b *Builder) Source(t string) *Builder {
	b.err.SourceType = t
	return b
}

// Dest sets the destination type name
func (b *Builder) Dest(t string) *Builder {
	b.err.DestType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Index sets the offending element index
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, sourceType, destType string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindTypeMismatch,
		SourceType: sourceType,
		DestType:   destType,
		Index:      -1,
	}
}

// Overflow creates an overflow error for a value outside the destination range
func Overflow(phase Phase, index int, value any, destType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindOverflow,
		DestType: destType,
		Detail:   fmt.Sprintf("value %v overflows %s", value, destType),
		Value:    value,
		Index:    index,
	}
}

// RaggedShape creates an error for 2-D rows of unequal length
func RaggedShape(row, rowLen, wantLen int) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindRaggedShape,
		Detail: fmt.Sprintf("row %d has length %d, want %d", row, rowLen, wantLen),
		Index:  row,
	}
}

// RankRequired creates an error for an operation restricted to a single rank
func RankRequired(phase Phase, rank, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedRank,
		Detail: fmt.Sprintf("operation requires rank %d, got rank %d", want, rank),
		Index:  -1,
	}
}

// UnsupportedRank creates an error for a rank outside the supported 1..2 range
func UnsupportedRank(phase Phase, rank int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedRank,
		Detail: fmt.Sprintf("rank %d not supported (want 1 or 2)", rank),
		Index:  -1,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
		Index:  index,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
		Index:  -1,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
		Index:  -1,
	}
}
