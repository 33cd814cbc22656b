package bridge

import (
	"go.uber.org/zap"

	"github.com/wippyai/array-bridge/bufview"
	"github.com/wippyai/array-bridge/dtype"
	"github.com/wippyai/array-bridge/engine"
	"github.com/wippyai/array-bridge/errors"
	"github.com/wippyai/array-bridge/host"
)

// Bridge converts arrays between the host runtime and the numeric engine.
//
// Every conversion first asks for a zero-copy buffer view; only when none is
// constructible does it fall back to element-wise conversion through the cast
// rules. A Bridge is stateless apart from its type table and safe for
// concurrent use.
type Bridge struct {
	tbl *dtype.Table
}

// New returns a bridge over the process-wide type table.
func New() *Bridge {
	return &Bridge{tbl: dtype.Default()}
}

// NewWithTable returns a bridge over an explicit table. Used by tests that
// need the other platform width.
func NewWithTable(tbl *dtype.Table) *Bridge {
	return &Bridge{tbl: tbl}
}

// Table returns the type table the bridge resolves kinds against.
func (b *Bridge) Table() *dtype.Table { return b.tbl }

// ToEngine converts a host array into an engine array of its canonical dtype.
//
// For every numeric kind this is a zero-copy share: the engine array adopts
// the host storage and anchors it for its lifetime. Char16 falls back to the
// character adapter, which copies (the storage widths differ).
func (b *Bridge) ToEngine(src *host.Array) (*engine.Array, dtype.DType, error) {
	target := b.tbl.Canonical(src.Kind())

	if v, ok := bufview.FromHost(src, target, b.tbl); ok {
		arr, err := engine.FromBuffer(v.DType, v.Shape, v.Strides, v.Data, v.Retain())
		if err != nil {
			return nil, 0, err
		}
		Logger().Debug("to-engine zero-copy",
			zap.Stringer("kind", src.Kind()),
			zap.Stringer("dtype", target),
			zap.Int("len", src.Len()))
		return arr, target, nil
	}

	if src.Kind() == dtype.KindChar16 {
		arr, err := b.charToEngine(src)
		if err != nil {
			return nil, 0, err
		}
		return arr, target, nil
	}

	// No view and not a char array: copy element-wise. Host arrays are always
	// contiguous, so this path is not normally reached; it is kept as the
	// correctness fallback.
	arr, err := b.copyToEngine(src, target)
	if err != nil {
		return nil, 0, err
	}
	return arr, target, nil
}

// ToEngineAs converts a host array into an engine array of an explicit dtype.
//
// When dt is the source kind's canonical dtype this is ToEngine's zero-copy
// share. Otherwise every element is written with assignment semantics:
// narrower integer destinations wrap modularly and float values truncate
// toward zero into integer destinations. This mirrors writing the values one
// slot at a time into an existing engine array, and it is deliberately more
// permissive than bulk construction in the opposite direction.
func (b *Bridge) ToEngineAs(src *host.Array, dt dtype.DType) (*engine.Array, error) {
	if !dt.Valid() {
		return nil, errors.InvalidData(errors.PhaseConstruct, "invalid destination dtype")
	}
	if dt == b.tbl.Canonical(src.Kind()) {
		arr, _, err := b.ToEngine(src)
		return arr, err
	}

	if src.Kind() == dtype.KindChar16 || dt == dtype.Str1 {
		return nil, errors.TypeMismatch(errors.PhaseConstruct, src.Kind().String(), dt.String())
	}

	arr, err := engine.New(dt, src.Len())
	if err != nil {
		return nil, err
	}
	Logger().Debug("to-engine element-wise",
		zap.Stringer("kind", src.Kind()),
		zap.Stringer("dtype", dt),
		zap.Int("len", src.Len()))

	switch {
	case src.Kind().IsFloat():
		for i := 0; i < src.Len(); i++ {
			v, err := src.FloatAt(i)
			if err != nil {
				return nil, err
			}
			if err := arr.SetFloat(i, v); err != nil {
				return nil, err
			}
		}
	case src.Kind() == dtype.KindBool:
		data, _ := src.BoolData()
		for i, v := range data {
			bit := int64(0)
			if v {
				bit = 1
			}
			if err := arr.SetInt(i, bit); err != nil {
				return nil, err
			}
		}
	default:
		for i := 0; i < src.Len(); i++ {
			v, err := src.IntAt(i)
			if err != nil {
				return nil, err
			}
			if err := arr.SetInt(i, v); err != nil {
				return nil, err
			}
		}
	}
	return arr, nil
}

// FromEngine reconstructs a host array from an engine array.
//
// The reported kind is inferred from the engine dtype through the type table;
// when the dtype is the platform default integer the concrete width kind is
// reported, never the nativeint alias. An empty array carries no usable
// element information beyond its dtype, so the hint kind decides; a hint is
// required there.
//
// When the hint disagrees with the inferred kind the conversion becomes a
// bulk construction with cast rules (see ConstructWithCast).
func (b *Bridge) FromEngine(arr *engine.Array, hint dtype.ElementKind) (*host.Array, error) {
	if arr.Rank() != 1 {
		return nil, errors.RankRequired(errors.PhaseConstruct, arr.Rank(), 1)
	}
	if !hint.Valid() {
		return nil, errors.New(errors.PhaseConstruct, errors.KindTypeMismatch).
			Dest(hint.String()).
			Detail("cannot resolve element kind").
			Build()
	}
	want := b.tbl.Resolve(hint)

	if arr.Len() == 0 {
		a, err := host.Zeros(want, 0)
		if err != nil {
			return nil, err
		}
		return a, nil
	}

	inferred, ok := b.tbl.InferKind(arr.DType())
	if ok && inferred == want {
		return b.reconstructExact(arr, inferred)
	}
	return b.ConstructWithCast(arr, want)
}

// reconstructExact rebuilds a host array whose kind's canonical dtype is the
// engine dtype: zero-copy when the layout allows it, element-wise otherwise.
func (b *Bridge) reconstructExact(arr *engine.Array, kind dtype.ElementKind) (*host.Array, error) {
	if v, ok := bufview.FromEngine(arr, kind, b.tbl); ok {
		if a, ok := host.FromBytes(v.Kind, v.Data); ok {
			Logger().Debug("from-engine zero-copy",
				zap.Stringer("dtype", arr.DType()),
				zap.Stringer("kind", v.Kind),
				zap.Int("len", arr.Len()))
			return a, nil
		}
	}
	if kind == dtype.KindChar16 {
		return b.charFromEngine(arr)
	}
	return b.copyFromEngine(arr, kind)
}
