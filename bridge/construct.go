package bridge

import (
	"golang.org/x/exp/constraints"

	"github.com/wippyai/array-bridge/bufview"
	"github.com/wippyai/array-bridge/cast"
	"github.com/wippyai/array-bridge/dtype"
	"github.com/wippyai/array-bridge/engine"
	"github.com/wippyai/array-bridge/errors"
	"github.com/wippyai/array-bridge/host"
)

// ConstructWithCast builds a host array of kind dst from an engine array's
// values under bulk-construction rules: the (source kind, destination kind)
// pair is classified once, and
//
//   - Exact / WidenLossless converts every value unconditionally,
//   - NarrowReject(float-to-int) fails before reading any value,
//   - NarrowReject(overflow) range-checks each value and fails on the first
//     one outside the destination range.
//
// The per-value check is the only part of the decision that looks at data;
// the classification itself is uniform for the pair.
func (b *Bridge) ConstructWithCast(arr *engine.Array, dst dtype.ElementKind) (*host.Array, error) {
	if arr.Rank() != 1 {
		return nil, errors.RankRequired(errors.PhaseConstruct, arr.Rank(), 1)
	}
	dst = b.tbl.Resolve(dst)

	srcKind, ok := b.tbl.InferKind(arr.DType())
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseConstruct, arr.DType().String(), dst.String())
	}
	if srcKind == dst {
		return b.reconstructExact(arr, dst)
	}

	outcome, reason := cast.Classify(srcKind, dst, b.tbl)
	switch outcome {
	case cast.Exact, cast.WidenLossless:
		return b.convertAll(arr, srcKind, dst)
	case cast.NarrowReject:
		if reason == cast.ReasonOverflow {
			return b.narrowChecked(arr, srcKind, dst)
		}
		return nil, errors.New(errors.PhaseConstruct, errors.KindTypeMismatch).
			Source(srcKind.String()).
			Dest(dst.String()).
			Detail("%s", reason.String()).
			Build()
	default:
		// Classify never yields NarrowWrap for bulk construction.
		return nil, errors.TypeMismatch(errors.PhaseConstruct, srcKind.String(), dst.String())
	}
}

// sourceView aliases a contiguous engine array's storage as a read-only host
// array of the source kind, enabling the typed conversion kernels.
func (b *Bridge) sourceView(arr *engine.Array, srcKind dtype.ElementKind) (*host.Array, bool) {
	v, ok := bufview.FromEngine(arr, srcKind, b.tbl)
	if !ok {
		return nil, false
	}
	return host.FromBytes(v.Kind, v.Data)
}

// convertAll handles the Exact and WidenLossless outcomes: no value can fail.
func (b *Bridge) convertAll(arr *engine.Array, srcKind, dst dtype.ElementKind) (*host.Array, error) {
	if src, ok := b.sourceView(arr, srcKind); ok {
		if out := widenTyped(src, dst); out != nil {
			return out, nil
		}
	}

	// Strided or misaligned source: element-wise.
	out, err := host.Zeros(dst, arr.Len())
	if err != nil {
		return nil, err
	}
	for i := 0; i < arr.Len(); i++ {
		if srcKind.IsFloat() || dst.IsFloat() {
			v, err := arr.FloatAt(i)
			if err != nil {
				return nil, err
			}
			if err := out.SetFloat(i, v); err != nil {
				return nil, err
			}
			continue
		}
		v, err := arr.IntAt(i)
		if err != nil {
			return nil, err
		}
		if err := out.SetInt(i, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// widenTyped runs the unconditional conversion kernel over typed slices.
// Returns nil for pairings it does not cover; the caller falls back.
func widenTyped(src *host.Array, dst dtype.ElementKind) *host.Array {
	switch src.Kind() {
	case dtype.KindInt8:
		s, _ := src.Int8Data()
		return widenFrom(s, dst)
	case dtype.KindInt16:
		s, _ := src.Int16Data()
		return widenFrom(s, dst)
	case dtype.KindInt32:
		s, _ := src.Int32Data()
		return widenFrom(s, dst)
	case dtype.KindInt64:
		s, _ := src.Int64Data()
		return widenFrom(s, dst)
	case dtype.KindFloat32:
		s, _ := src.Float32Data()
		if dst == dtype.KindFloat64 {
			return host.Float64s(cast.Convert[float64](s))
		}
	}
	return nil
}

func widenFrom[S constraints.Signed](s []S, dst dtype.ElementKind) *host.Array {
	switch dst {
	case dtype.KindInt16:
		return host.Int16s(cast.Convert[int16](s))
	case dtype.KindInt32:
		return host.Int32s(cast.Convert[int32](s))
	case dtype.KindInt64:
		return host.Int64s(cast.Convert[int64](s))
	case dtype.KindFloat32:
		return host.Float32s(cast.Convert[float32](s))
	case dtype.KindFloat64:
		return host.Float64s(cast.Convert[float64](s))
	default:
		return nil
	}
}

// narrowChecked handles NarrowReject(overflow): a homogeneous classification
// culminating in a per-value range check.
func (b *Bridge) narrowChecked(arr *engine.Array, srcKind, dst dtype.ElementKind) (*host.Array, error) {
	if src, ok := b.sourceView(arr, srcKind); ok {
		out, idx, ok := narrowTyped(src, dst)
		if ok {
			return out, nil
		}
		if idx >= 0 {
			var v any
			if src.Kind().IsFloat() {
				v, _ = src.FloatAt(idx)
			} else {
				v, _ = src.IntAt(idx)
			}
			return nil, errors.Overflow(errors.PhaseConstruct, idx, v, dst.String())
		}
		// Pairing not covered by the typed kernels; fall through.
	}

	out, err := host.Zeros(dst, arr.Len())
	if err != nil {
		return nil, err
	}
	if srcKind.IsFloat() {
		// Only float64 -> float32 narrows among the float kinds.
		for i := 0; i < arr.Len(); i++ {
			v, err := arr.FloatAt(i)
			if err != nil {
				return nil, err
			}
			vs, _, ok := cast.NarrowFloats([]float64{v})
			if !ok {
				return nil, errors.Overflow(errors.PhaseConstruct, i, v, dst.String())
			}
			if err := out.SetFloat(i, float64(vs[0])); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	lo, hi := cast.RangeOf(dst)
	for i := 0; i < arr.Len(); i++ {
		v, err := arr.IntAt(i)
		if err != nil {
			return nil, err
		}
		if v < lo || v > hi {
			return nil, errors.Overflow(errors.PhaseConstruct, i, v, dst.String())
		}
		if err := out.SetInt(i, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// narrowTyped runs the range-checked kernel over typed slices. ok=false with
// idx >= 0 reports the offending element; idx < 0 means the pairing is not
// covered and the caller must fall back.
func narrowTyped(src *host.Array, dst dtype.ElementKind) (*host.Array, int, bool) {
	if src.Kind() == dtype.KindFloat64 && dst == dtype.KindFloat32 {
		s, _ := src.Float64Data()
		out, idx, ok := cast.NarrowFloats(s)
		if !ok {
			return nil, idx, false
		}
		return host.Float32s(out), -1, true
	}

	switch src.Kind() {
	case dtype.KindInt16:
		s, _ := src.Int16Data()
		return narrowFrom(s, dst)
	case dtype.KindInt32:
		s, _ := src.Int32Data()
		return narrowFrom(s, dst)
	case dtype.KindInt64:
		s, _ := src.Int64Data()
		return narrowFrom(s, dst)
	}
	return nil, -1, false
}

func narrowFrom[S constraints.Signed](s []S, dst dtype.ElementKind) (*host.Array, int, bool) {
	lo, hi := cast.RangeOf(dst)
	switch dst {
	case dtype.KindInt8:
		out, idx, ok := cast.NarrowInts[int8](s, lo, hi)
		if !ok {
			return nil, idx, false
		}
		return host.Int8s(out), -1, true
	case dtype.KindInt16:
		out, idx, ok := cast.NarrowInts[int16](s, lo, hi)
		if !ok {
			return nil, idx, false
		}
		return host.Int16s(out), -1, true
	case dtype.KindInt32:
		out, idx, ok := cast.NarrowInts[int32](s, lo, hi)
		if !ok {
			return nil, idx, false
		}
		return host.Int32s(out), -1, true
	}
	return nil, -1, false
}

// copyToEngine is the element-wise host-to-engine fallback for the canonical
// dtype. Orders of magnitude slower than the buffer share; correct for any
// layout.
func (b *Bridge) copyToEngine(src *host.Array, dt dtype.DType) (*engine.Array, error) {
	arr, err := engine.New(dt, src.Len())
	if err != nil {
		return nil, err
	}
	for i := 0; i < src.Len(); i++ {
		switch {
		case src.Kind() == dtype.KindBool:
			data, _ := src.BoolData()
			bit := int64(0)
			if data[i] {
				bit = 1
			}
			err = arr.SetInt(i, bit)
		case src.Kind().IsFloat():
			var v float64
			v, err = src.FloatAt(i)
			if err == nil {
				err = arr.SetFloat(i, v)
			}
		default:
			var v int64
			v, err = src.IntAt(i)
			if err == nil {
				err = arr.SetInt(i, v)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return arr, nil
}

// copyFromEngine is the element-wise engine-to-host fallback for a matching
// dtype (strided or misaligned storage).
func (b *Bridge) copyFromEngine(arr *engine.Array, kind dtype.ElementKind) (*host.Array, error) {
	out, err := host.Zeros(kind, arr.Len())
	if err != nil {
		return nil, err
	}
	for i := 0; i < arr.Len(); i++ {
		switch {
		case kind == dtype.KindBool:
			v, err := arr.IntAt(i)
			if err != nil {
				return nil, err
			}
			if err := out.SetBool(i, v != 0); err != nil {
				return nil, err
			}
		case kind.IsFloat():
			v, err := arr.FloatAt(i)
			if err != nil {
				return nil, err
			}
			if err := out.SetFloat(i, v); err != nil {
				return nil, err
			}
		default:
			v, err := arr.IntAt(i)
			if err != nil {
				return nil, err
			}
			if err := out.SetInt(i, v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
