package types

import (
	"fmt"

	"github.com/simonhull/id3tag/internal/binary"
)

// OutOfBoundsError is returned when attempting to read beyond stream bounds.
type OutOfBoundsError = binary.OutOfBoundsError

// FormatError is returned when the marker bytes of a tag format are missing.
//
// It means "not this format", as opposed to IOError which means the stream
// could not be read far enough to tell.
type FormatError struct {
	Path   string
	Reason string
	Format Format
}

func (e *FormatError) Error() string {
	return prefix(e.Path) + fmt.Sprintf("%s header not found: %s", e.Format, e.Reason)
}

// IOError is returned when a stream is too short, unreadable, or a transfer fails.
type IOError struct {
	Err  error
	Path string
	Op   string
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return prefix(e.Path) + e.Op
	}
	return prefix(e.Path) + fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// PayloadError is returned when a frame's internal structure cannot be
// decoded or encoded.
type PayloadError struct {
	Err     error
	FrameID string
	Reason  string
}

func (e *PayloadError) Error() string {
	msg := fmt.Sprintf("frame %s: %s", e.FrameID, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}

// ArgumentError is returned for nil or invalid caller-supplied values.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Name, e.Reason)
}

// UnsupportedError indicates an encode path that is not available.
type UnsupportedError struct {
	Op     string
	Reason string
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s not supported: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s not supported", e.Op)
}

// Warning represents a non-fatal issue encountered during decoding.
//
// Warnings are only produced in lenient mode, where a frame that fails to
// decode is kept as an UnknownFrame instead of aborting the whole tag.
type Warning struct {
	// Stage where the warning occurred ("frame", "header")
	Stage string

	// Warning message
	Message string

	// Frame identifier, if the warning concerns a frame
	FrameID string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.FrameID != "" {
		return fmt.Sprintf("%s %s: %s", w.Stage, w.FrameID, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}

func prefix(path string) string {
	if path == "" {
		return ""
	}
	return path + ": "
}
