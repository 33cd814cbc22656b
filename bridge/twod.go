package bridge

import (
	"go.uber.org/zap"

	"github.com/wippyai/array-bridge/dtype"
	"github.com/wippyai/array-bridge/engine"
	"github.com/wippyai/array-bridge/errors"
	"github.com/wippyai/array-bridge/host"
)

// ToEngine2D converts a slice of same-kind, same-length host arrays into one
// rank-2 engine array of shape (len(rows), rowLen), row-major.
//
// The rows are copied; a rank-2 engine array needs a single contiguous block,
// which separate host rows cannot provide. Mixed kinds and ragged rows are
// rejected before any element moves.
func (b *Bridge) ToEngine2D(rows []*host.Array) (*engine.Array, error) {
	if len(rows) == 0 {
		return nil, errors.InvalidData(errors.PhaseConstruct, "no rows")
	}
	kind := rows[0].Kind()
	rowLen := rows[0].Len()
	for i, r := range rows {
		if r.Kind() != kind {
			return nil, errors.New(errors.PhaseConstruct, errors.KindTypeMismatch).
				Source(r.Kind().String()).
				Dest(kind.String()).
				Index(i).
				Detail("mixed row kinds").
				Build()
		}
		if r.Len() != rowLen {
			return nil, errors.RaggedShape(i, r.Len(), rowLen)
		}
	}

	dt := b.tbl.Canonical(kind)
	arr, err := engine.New(dt, len(rows), rowLen)
	if err != nil {
		return nil, err
	}
	Logger().Debug("to-engine rank-2",
		zap.Stringer("kind", kind),
		zap.Stringer("dtype", dt),
		zap.Int("rows", len(rows)),
		zap.Int("cols", rowLen))

	if kind == dtype.KindChar16 {
		for i, r := range rows {
			row, err := arr.Row(i)
			if err != nil {
				return nil, err
			}
			units, _ := r.Char16Data()
			for j, u := range units {
				if err := row.SetRune(j, rune(u)); err != nil {
					return nil, err
				}
			}
		}
		return arr, nil
	}

	rowBytes := rowLen * dt.ItemSize()
	dst := arr.Bytes()
	for i, r := range rows {
		copy(dst[i*rowBytes:(i+1)*rowBytes], r.Bytes())
	}
	return arr, nil
}

// RowToHost reconstructs row i of a rank-2 engine array as a host array.
// The row is taken as a shared view first, so an exact-dtype row still copies
// only when its storage is misaligned for the host element type.
func (b *Bridge) RowToHost(arr *engine.Array, i int, hint dtype.ElementKind) (*host.Array, error) {
	row, err := arr.Row(i)
	if err != nil {
		return nil, err
	}
	return b.FromEngine(row, hint)
}

// FromEngine2D reconstructs a rank-2 engine array as one host array per row.
// Conversion runs row by row through the rank-1 path; there is no rank-2 bulk
// fast path.
func (b *Bridge) FromEngine2D(arr *engine.Array, hint dtype.ElementKind) ([]*host.Array, error) {
	if arr.Rank() != 2 {
		return nil, errors.RankRequired(errors.PhaseConstruct, arr.Rank(), 2)
	}
	rows := arr.Shape()[0]
	out := make([]*host.Array, rows)
	for i := 0; i < rows; i++ {
		r, err := b.RowToHost(arr, i, hint)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
