package frames

import (
	"errors"
	"slices"

	"github.com/simonhull/id3tag/internal/text"
	"github.com/simonhull/id3tag/internal/types"
)

var (
	errAPICNoMIMETerm = errors.New("APIC MIME type not null-terminated")
	errAPICTruncated  = errors.New("APIC frame truncated after MIME type")
)

// PictureFrame is an APIC (attached picture) frame. The image bytes are
// kept as-is and never interpreted.
//
// Layout:
//
//	[1 byte]              Text encoding
//	[null-terminated]     MIME type (ISO-8859-1)
//	[1 byte]              Picture type
//	[terminated]          Description
//	[remaining]           Picture data
type PictureFrame struct {
	MIMEType    string
	Description string
	Data        []byte
	types.FrameDescriptor
	Encoding    text.Encoding
	PictureType types.PictureType
}

// NewPictureFrame creates an APIC frame.
func NewPictureFrame(mime string, pictureType types.PictureType, description string, data []byte) *PictureFrame {
	return &PictureFrame{
		FrameDescriptor: types.FrameDescriptor{ID: "APIC"},
		Encoding:        PreferredEncoding(description),
		MIMEType:        mime,
		PictureType:     pictureType,
		Description:     description,
		Data:            data,
	}
}

func (*PictureFrame) Type() types.FrameType { return types.FramePicture }

// String returns a summary such as "Front cover (JPEG, 245KB)".
func (f *PictureFrame) String() string {
	return types.DescribePicture(f.PictureType, f.MIMEType, len(f.Data))
}

func decodePicture(raw types.RawFrame) (types.Frame, error) {
	enc, data, err := readEncoding(raw)
	if err != nil {
		return nil, err
	}

	mime, rest, found := text.Cut(data, text.ISO88591)
	if !found {
		return nil, payloadError(raw.ID, "decode MIME type", errAPICNoMIMETerm)
	}
	if len(rest) < 1 {
		return nil, payloadError(raw.ID, "read picture type", errAPICTruncated)
	}
	pictureType := types.PictureType(rest[0])

	desc, rest, err := decodeTerminated(raw.ID, "description", rest[1:], enc)
	if err != nil {
		return nil, err
	}

	return &PictureFrame{
		FrameDescriptor: descriptor(raw),
		Encoding:        enc,
		MIMEType:        text.DecodeLatin1(mime),
		PictureType:     pictureType,
		Description:     desc,
		Data:            slices.Clone(rest),
	}, nil
}

func encodePicture(f *PictureFrame) ([]byte, error) {
	if err := checkEncoding(f.ID, f.Encoding); err != nil {
		return nil, err
	}
	mime, err := encodeString(f.ID, "MIME type", f.MIMEType, text.ISO88591, true)
	if err != nil {
		return nil, err
	}
	desc, err := encodeString(f.ID, "description", f.Description, f.Encoding, true)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 2+len(mime)+len(desc)+len(f.Data))
	buf = append(buf, byte(f.Encoding))
	buf = append(buf, mime...)
	buf = append(buf, byte(f.PictureType))
	buf = append(buf, desc...)
	return append(buf, f.Data...), nil
}
