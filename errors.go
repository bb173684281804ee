package id3tag

import (
	"github.com/simonhull/id3tag/internal/types"
)

// FormatError reports that the marker bytes of a tag format are missing.
// Callers use it to tell "not this format" apart from a short stream.
type FormatError = types.FormatError

// IOError reports a stream that is too short, unreadable or unwritable.
// It wraps the underlying cause.
type IOError = types.IOError

// PayloadError reports a frame whose payload cannot be decoded or encoded.
type PayloadError = types.PayloadError

// ArgumentError reports a nil or invalid caller-supplied value.
type ArgumentError = types.ArgumentError

// UnsupportedError reports an encode path that is not available.
type UnsupportedError = types.UnsupportedError

// OutOfBoundsError is returned, wrapped in an IOError, when a read would
// leave the stream or tag region.
type OutOfBoundsError = types.OutOfBoundsError

// Warning is a non-fatal decoding issue recorded in lenient mode.
type Warning = types.Warning
