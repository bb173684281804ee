package frames

import (
	"github.com/simonhull/id3tag/internal/text"
	"github.com/simonhull/id3tag/internal/types"
)

// CommentFrame is a COMM frame.
//
// Layout:
//
//	[1 byte]          Text encoding
//	[3 bytes]         Language (ISO-639-2)
//	[terminated]      Short description
//	[remaining]       Text
type CommentFrame struct {
	Language    string
	Description string
	Text        string
	types.FrameDescriptor
	Encoding text.Encoding
}

// NewCommentFrame creates a COMM frame. An empty language becomes "XXX".
func NewCommentFrame(language, description, body string) *CommentFrame {
	if language == "" {
		language = "XXX"
	}
	return &CommentFrame{
		FrameDescriptor: types.FrameDescriptor{ID: "COMM"},
		Encoding:        PreferredEncoding(description, body),
		Language:        language,
		Description:     description,
		Text:            body,
	}
}

func (*CommentFrame) Type() types.FrameType { return types.FrameComment }

func decodeComment(raw types.RawFrame) (types.Frame, error) {
	enc, data, err := readEncoding(raw)
	if err != nil {
		return nil, err
	}
	if len(data) < 3 {
		return nil, payloadError(raw.ID, "read language", errTooShort)
	}
	lang := text.DecodeLatin1(data[:3])
	desc, rest, err := decodeTerminated(raw.ID, "description", data[3:], enc)
	if err != nil {
		return nil, err
	}
	body, err := text.DecodeString(rest, enc)
	if err != nil {
		return nil, payloadError(raw.ID, "decode text", err)
	}
	return &CommentFrame{
		FrameDescriptor: descriptor(raw),
		Encoding:        enc,
		Language:        lang,
		Description:     desc,
		Text:            body,
	}, nil
}

func encodeComment(f *CommentFrame) ([]byte, error) {
	if err := checkEncoding(f.ID, f.Encoding); err != nil {
		return nil, err
	}
	lang, err := encodeString(f.ID, "language", f.Language, text.ISO88591, false)
	if err != nil {
		return nil, err
	}
	if len(lang) != 3 {
		return nil, payloadError(f.ID, "encode language "+f.Language, errLanguageLength)
	}
	desc, err := encodeString(f.ID, "description", f.Description, f.Encoding, true)
	if err != nil {
		return nil, err
	}
	body, err := encodeString(f.ID, "text", f.Text, f.Encoding, false)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, 4+len(desc)+len(body))
	buf = append(buf, byte(f.Encoding))
	buf = append(buf, lang...)
	buf = append(buf, desc...)
	return append(buf, body...), nil
}
