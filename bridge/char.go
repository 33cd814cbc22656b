package bridge

import (
	"github.com/wippyai/array-bridge/dtype"
	"github.com/wippyai/array-bridge/engine"
	"github.com/wippyai/array-bridge/errors"
	"github.com/wippyai/array-bridge/host"
)

// Character arrays never share storage across the runtimes: the host stores
// 16-bit code units and the engine stores one 32-bit code point per element.
// Both directions copy through a width adapter.

func (b *Bridge) charToEngine(src *host.Array) (*engine.Array, error) {
	units, ok := src.Char16Data()
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseConstruct, src.Kind().String(), dtype.Str1.String())
	}
	arr, err := engine.New(dtype.Str1, len(units))
	if err != nil {
		return nil, err
	}
	for i, u := range units {
		if err := arr.SetRune(i, rune(u)); err != nil {
			return nil, err
		}
	}
	return arr, nil
}

func (b *Bridge) charFromEngine(arr *engine.Array) (*host.Array, error) {
	units := make([]uint16, arr.Len())
	for i := range units {
		r, err := arr.RuneAt(i)
		if err != nil {
			return nil, err
		}
		if r < 0 || r > 0xFFFF {
			// Code points beyond one UTF-16 unit cannot survive the trip back.
			r = 0xFFFD
		}
		units[i] = uint16(r)
	}
	return host.Char16s(units), nil
}
