package types

import (
	"iter"
	"slices"
)

// Header holds the tag-level properties of a typed frame-tag.
//
// When CRCPresent is set and CRC is nil, the writer computes the
// checksum over the encoded frames. A 4-byte CRC is written as given.
// Decoding leaves CRC nil so that an edited tag never keeps a stale one.
type Header struct {
	CRC          []byte
	PaddingSize  uint32
	MajorVersion byte
	Revision     byte

	Unsynchronisation bool
	ExtendedHeader    bool
	Experimental      bool
	CRCPresent        bool
}

// Tag is a typed frame-tag: the header plus frames in file order.
//
// Warnings is populated only when decoding in lenient mode.
type Tag struct {
	Frames   []Frame
	Warnings []Warning
	Header
}

// NewTag returns an empty tag of the given version.
func NewTag(major, revision byte) *Tag {
	return &Tag{Header: Header{MajorVersion: major, Revision: revision}}
}

// Add appends a frame to the end of the tag.
func (t *Tag) Add(f Frame) {
	t.Frames = append(t.Frames, f)
}

// Len returns the number of frames.
func (t *Tag) Len() int {
	return len(t.Frames)
}

// Clear removes all frames, keeping the header.
func (t *Tag) Clear() {
	t.Frames = nil
}

// Search returns the frames with the given identifier, in file order.
func (t *Tag) Search(id string) []Frame {
	var out []Frame
	for _, f := range t.Frames {
		if f.Descriptor().ID == id {
			out = append(out, f)
		}
	}
	return out
}

// First returns the first frame with the given identifier, or nil.
func (t *Tag) First(id string) Frame {
	for _, f := range t.Frames {
		if f.Descriptor().ID == id {
			return f
		}
	}
	return nil
}

// Remove deletes every frame with the given identifier and reports how
// many were removed.
func (t *Tag) Remove(id string) int {
	before := len(t.Frames)
	t.Frames = slices.DeleteFunc(t.Frames, func(f Frame) bool {
		return f.Descriptor().ID == id
	})
	return before - len(t.Frames)
}

// All returns an iterator over identifier and frame pairs in file order.
//
// Example:
//
//	for id, frame := range tag.All() {
//		fmt.Printf("%s: %s\n", id, frame.Type())
//	}
func (t *Tag) All() iter.Seq2[string, Frame] {
	return func(yield func(string, Frame) bool) {
		for _, f := range t.Frames {
			if !yield(f.Descriptor().ID, f) {
				return
			}
		}
	}
}
