package frames

import (
	"bytes"
	"slices"

	"github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/text"
	"github.com/simonhull/id3tag/internal/types"
)

// PrivateFrame is a PRIV frame: an owner identifier and opaque data.
type PrivateFrame struct {
	Owner string
	Data  []byte
	types.FrameDescriptor
}

// NewPrivateFrame creates a PRIV frame.
func NewPrivateFrame(owner string, data []byte) *PrivateFrame {
	return &PrivateFrame{FrameDescriptor: types.FrameDescriptor{ID: "PRIV"}, Owner: owner, Data: data}
}

func (*PrivateFrame) Type() types.FrameType { return types.FramePrivate }

func decodePrivate(raw types.RawFrame) (types.Frame, error) {
	owner, rest, err := decodeTerminated(raw.ID, "owner", raw.Payload, text.ISO88591)
	if err != nil {
		return nil, err
	}
	return &PrivateFrame{FrameDescriptor: descriptor(raw), Owner: owner, Data: slices.Clone(rest)}, nil
}

func encodePrivate(f *PrivateFrame) ([]byte, error) {
	owner, err := encodeString(f.ID, "owner", f.Owner, text.ISO88591, true)
	if err != nil {
		return nil, err
	}
	return append(owner, f.Data...), nil
}

// MusicCDIdentifierFrame is an MCDI frame holding a raw CD table of contents.
type MusicCDIdentifierFrame struct {
	TOC []byte
	types.FrameDescriptor
}

// NewMusicCDIdentifierFrame creates an MCDI frame.
func NewMusicCDIdentifierFrame(toc []byte) *MusicCDIdentifierFrame {
	return &MusicCDIdentifierFrame{FrameDescriptor: types.FrameDescriptor{ID: "MCDI"}, TOC: toc}
}

func (*MusicCDIdentifierFrame) Type() types.FrameType { return types.FrameMusicCDIdentifier }

func decodeMusicCDIdentifier(raw types.RawFrame) (types.Frame, error) {
	return &MusicCDIdentifierFrame{FrameDescriptor: descriptor(raw), TOC: slices.Clone(raw.Payload)}, nil
}

// AudioEncryptionFrame is an AENC frame.
//
// Layout:
//
//	[terminated]      Owner identifier (ISO-8859-1)
//	[2 bytes]         Preview start (frames)
//	[2 bytes]         Preview length (frames)
//	[remaining]       Encryption info
type AudioEncryptionFrame struct {
	Owner string
	Info  []byte
	types.FrameDescriptor
	PreviewStart  uint16
	PreviewLength uint16
}

// NewAudioEncryptionFrame creates an AENC frame.
func NewAudioEncryptionFrame(owner string, previewStart, previewLength uint16, info []byte) *AudioEncryptionFrame {
	return &AudioEncryptionFrame{
		FrameDescriptor: types.FrameDescriptor{ID: "AENC"},
		Owner:           owner,
		PreviewStart:    previewStart,
		PreviewLength:   previewLength,
		Info:            info,
	}
}

func (*AudioEncryptionFrame) Type() types.FrameType { return types.FrameAudioEncryption }

func decodeAudioEncryption(raw types.RawFrame) (types.Frame, error) {
	owner, rest, err := decodeTerminated(raw.ID, "owner", raw.Payload, text.ISO88591)
	if err != nil {
		return nil, err
	}

	cr := payloadReader(raw.ID, rest)
	start := binary.ReadChained[uint16](cr, "preview start")
	length := binary.ReadChained[uint16](cr, "preview length")
	info := cr.Bytes(cr.Remaining(), "encryption info")
	if err := cr.Error(); err != nil {
		return nil, payloadError(raw.ID, "read preview", errTooShort)
	}

	return &AudioEncryptionFrame{
		FrameDescriptor: descriptor(raw),
		Owner:           owner,
		PreviewStart:    start,
		PreviewLength:   length,
		Info:            info,
	}, nil
}

func encodeAudioEncryption(f *AudioEncryptionFrame) ([]byte, error) {
	buf, err := encodeString(f.ID, "owner", f.Owner, text.ISO88591, true)
	if err != nil {
		return nil, err
	}
	buf = binary.Append(buf, f.PreviewStart)
	buf = binary.Append(buf, f.PreviewLength)
	return append(buf, f.Info...), nil
}

// payloadReader returns a bounds-checked sequential reader over data.
func payloadReader(id string, data []byte) *binary.ChainReader {
	sr := binary.NewSafeReader(bytes.NewReader(data), int64(len(data)), id)
	return binary.NewChainReader(binary.NewReader(sr, 0))
}
