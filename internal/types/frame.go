package types

import (
	"fmt"

	"github.com/simonhull/id3tag/internal/binary"
)

// Frame flag bits (ID3v2.3 layout, status byte then format byte).
const (
	FlagTagAlterPreservation  uint16 = 0x8000
	FlagFileAlterPreservation uint16 = 0x4000
	FlagReadOnly              uint16 = 0x2000
	FlagCompression           uint16 = 0x0080
	FlagEncryption            uint16 = 0x0040
	FlagGroupingIdentity      uint16 = 0x0020
)

// RawFrame is the untyped wire form of one frame.
//
// The payload length is implied by the frame header on the wire.
type RawFrame struct {
	ID      string
	Payload []byte
	Flags   uint16
}

// NewRawFrame builds a RawFrame after validating the identifier.
func NewRawFrame(id string, flags uint16, payload []byte) (RawFrame, error) {
	if err := ValidateFrameID(id); err != nil {
		return RawFrame{}, err
	}
	return RawFrame{ID: id, Flags: flags, Payload: payload}, nil
}

// ValidateFrameID checks that id is exactly four bytes and not padding.
func ValidateFrameID(id string) error {
	if len(id) != 4 {
		return &ArgumentError{Name: "frame id", Reason: fmt.Sprintf("%q must be exactly 4 characters", id)}
	}
	if IsPaddingID(id) {
		return &ArgumentError{Name: "frame id", Reason: "all-zero identifier marks padding"}
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x20 || id[i] > 0x7E {
			return &ArgumentError{Name: "frame id", Reason: fmt.Sprintf("%q contains a non-printable byte", id)}
		}
	}
	return nil
}

// IsPaddingID reports whether a frame identifier is all zero bytes, which
// marks the start of padding rather than a frame.
func IsPaddingID(id string) bool {
	for i := 0; i < len(id); i++ {
		if id[i] != 0 {
			return false
		}
	}
	return id != ""
}

// FlagBytes returns the flags as they appear on the wire.
func (f RawFrame) FlagBytes() [2]byte {
	return [2]byte{byte(f.Flags >> 8), byte(f.Flags)}
}

// AppendTo appends the frame header and the payload to buf.
func (f RawFrame) AppendTo(buf []byte) []byte {
	buf = append(buf, f.ID...)
	buf = binary.Append(buf, uint32(len(f.Payload)))
	buf = binary.Append(buf, f.Flags)
	return append(buf, f.Payload...)
}

// FrameDescriptor carries the identifier and flags every frame has.
type FrameDescriptor struct {
	ID    string
	Flags uint16
}

// Descriptor returns the descriptor itself, so that embedding a
// FrameDescriptor satisfies part of the Frame interface.
func (d *FrameDescriptor) Descriptor() *FrameDescriptor {
	return d
}

// Has reports whether all bits of flag are set.
func (d *FrameDescriptor) Has(flag uint16) bool {
	return d.Flags&flag == flag
}

// Set turns flag bits on or off.
func (d *FrameDescriptor) Set(flag uint16, on bool) {
	if on {
		d.Flags |= flag
	} else {
		d.Flags &^= flag
	}
}

// Frame is a typed frame. The set of implementations is closed apart from
// UnknownFrame, which carries any identifier the dispatcher does not know.
type Frame interface {
	Descriptor() *FrameDescriptor
	Type() FrameType
}

// FrameType identifies the variant of a typed frame.
type FrameType int

const (
	FrameUnknown            FrameType = iota // Unknown
	FrameText                                // Text
	FrameUserDefinedText                     // User defined text
	FrameURLLink                             // URL link
	FrameUserDefinedURLLink                  // User defined URL link
	FrameComment                             // Comment
	FramePrivate                             // Private
	FrameMusicCDIdentifier                   // Music CD identifier
	FrameAudioEncryption                     // Audio encryption
	FramePicture                             // Attached picture
	FrameChapter                             // Chapter
)

var frameTypeNames = [...]string{
	FrameUnknown:            "Unknown",
	FrameText:               "Text",
	FrameUserDefinedText:    "User defined text",
	FrameURLLink:            "URL link",
	FrameUserDefinedURLLink: "User defined URL link",
	FrameComment:            "Comment",
	FramePrivate:            "Private",
	FrameMusicCDIdentifier:  "Music CD identifier",
	FrameAudioEncryption:    "Audio encryption",
	FramePicture:            "Attached picture",
	FrameChapter:            "Chapter",
}

func (t FrameType) String() string {
	if t < 0 || int(t) >= len(frameTypeNames) {
		return fmt.Sprintf("FrameType(%d)", int(t))
	}
	return frameTypeNames[t]
}
