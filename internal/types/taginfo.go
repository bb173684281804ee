package types

// Header flag bits of the 10-byte outer header.
const (
	HeaderFlagUnsynchronisation byte = 0x80
	HeaderFlagExtendedHeader    byte = 0x40
	HeaderFlagExperimental      byte = 0x20
)

// ExtendedHeader is the optional sub-header following the outer header.
type ExtendedHeader struct {
	CRC         []byte
	PaddingSize uint32
	CRCPresent  bool
}

// Len returns the encoded length of the extended header, its own size
// field included.
func (eh *ExtendedHeader) Len() int {
	if eh.CRCPresent {
		return 14
	}
	return 10
}

// TagInfo is the undispatched wire form of a whole frame-tag.
//
// Frames keep their on-disk order. Padding is the number of bytes left in
// the tag region after the last frame when reading, and the number of zero
// bytes to append when writing.
type TagInfo struct {
	ExtendedHeader *ExtendedHeader
	Frames         []RawFrame
	Padding        uint32

	MajorVersion byte
	Revision     byte

	Unsynchronisation     bool
	ExtendedHeaderPresent bool
	Experimental          bool
}

// FlagByte packs the three header flags into the outer header flag byte.
func (ti *TagInfo) FlagByte() byte {
	var b byte
	if ti.Unsynchronisation {
		b |= HeaderFlagUnsynchronisation
	}
	if ti.ExtendedHeaderPresent {
		b |= HeaderFlagExtendedHeader
	}
	if ti.Experimental {
		b |= HeaderFlagExperimental
	}
	return b
}

// SetFlagByte unpacks the outer header flag byte.
func (ti *TagInfo) SetFlagByte(b byte) {
	ti.Unsynchronisation = b&HeaderFlagUnsynchronisation != 0
	ti.ExtendedHeaderPresent = b&HeaderFlagExtendedHeader != 0
	ti.Experimental = b&HeaderFlagExperimental != 0
}
