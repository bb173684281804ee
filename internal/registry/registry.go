// Package registry maps frame identifiers to frame decoders.
package registry

import (
	"github.com/simonhull/id3tag/internal/types"
)

// DecodeFunc turns a raw frame into a typed frame.
type DecodeFunc func(raw types.RawFrame) (types.Frame, error)

// exact maps full four-character identifiers to decoders.
var exact = make(map[string]DecodeFunc)

// families maps an identifier's first character to a decoder for the
// whole family ('T' text, 'W' URL links).
var families = make(map[byte]DecodeFunc)

// fallback decodes identifiers nothing else claims.
var fallback DecodeFunc

// Register registers a decoder for one identifier.
// This is called by frame packages during initialization (init functions).
func Register(id string, fn DecodeFunc) {
	exact[id] = fn
}

// RegisterFamily registers a decoder for every identifier starting with
// prefix. Exact registrations take precedence, which is how "TXXX" and
// "WXXX" escape their families.
func RegisterFamily(prefix byte, fn DecodeFunc) {
	families[prefix] = fn
}

// RegisterFallback sets the decoder used when no other decoder matches.
func RegisterFallback(fn DecodeFunc) {
	fallback = fn
}

// Lookup returns the decoder for id: an exact match, then the family of
// its first character, then the fallback. It returns nil only if no
// fallback was registered.
func Lookup(id string) DecodeFunc {
	if fn, ok := exact[id]; ok {
		return fn
	}
	if len(id) > 0 {
		if fn, ok := families[id[0]]; ok {
			return fn
		}
	}
	return fallback
}

// Dispatch decodes raw with the decoder selected by Lookup.
func Dispatch(raw types.RawFrame) (types.Frame, error) {
	fn := Lookup(raw.ID)
	if fn == nil {
		return nil, &types.UnsupportedError{Op: "decode frame " + raw.ID, Reason: "no decoder registered"}
	}
	return fn(raw)
}
