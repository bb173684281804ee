package frames

import (
	"strings"

	"github.com/simonhull/id3tag/internal/text"
	"github.com/simonhull/id3tag/internal/types"
)

// TextFrame is any T*** frame except TXXX. It may hold several values.
type TextFrame struct {
	Values []string
	types.FrameDescriptor
	Encoding text.Encoding
}

// NewTextFrame creates a text frame, choosing the narrowest encoding that
// can hold the values.
func NewTextFrame(id string, values ...string) *TextFrame {
	return &TextFrame{
		FrameDescriptor: types.FrameDescriptor{ID: id},
		Encoding:        PreferredEncoding(values...),
		Values:          values,
	}
}

func (*TextFrame) Type() types.FrameType { return types.FrameText }

// Text returns the first value, or "" if there is none.
func (f *TextFrame) Text() string {
	if len(f.Values) == 0 {
		return ""
	}
	return f.Values[0]
}

func (f *TextFrame) String() string {
	return strings.Join(f.Values, " / ")
}

func decodeText(raw types.RawFrame) (types.Frame, error) {
	enc, data, err := readEncoding(raw)
	if err != nil {
		return nil, err
	}
	values, err := text.DecodeList(data, enc)
	if err != nil {
		return nil, payloadError(raw.ID, "decode values", err)
	}
	return &TextFrame{FrameDescriptor: descriptor(raw), Encoding: enc, Values: values}, nil
}

func encodeText(f *TextFrame) ([]byte, error) {
	if err := checkEncoding(f.ID, f.Encoding); err != nil {
		return nil, err
	}
	values, err := text.EncodeList(f.Values, f.Encoding)
	if err != nil {
		return nil, payloadError(f.ID, "encode values", err)
	}
	return append([]byte{byte(f.Encoding)}, values...), nil
}

// UserDefinedTextFrame is a TXXX frame: a description and a value.
type UserDefinedTextFrame struct {
	Description string
	Value       string
	types.FrameDescriptor
	Encoding text.Encoding
}

// NewUserDefinedTextFrame creates a TXXX frame.
func NewUserDefinedTextFrame(description, value string) *UserDefinedTextFrame {
	return &UserDefinedTextFrame{
		FrameDescriptor: types.FrameDescriptor{ID: "TXXX"},
		Encoding:        PreferredEncoding(description, value),
		Description:     description,
		Value:           value,
	}
}

func (*UserDefinedTextFrame) Type() types.FrameType { return types.FrameUserDefinedText }

func decodeUserDefinedText(raw types.RawFrame) (types.Frame, error) {
	enc, data, err := readEncoding(raw)
	if err != nil {
		return nil, err
	}
	desc, rest, err := decodeTerminated(raw.ID, "description", data, enc)
	if err != nil {
		return nil, err
	}
	value, err := text.DecodeString(rest, enc)
	if err != nil {
		return nil, payloadError(raw.ID, "decode value", err)
	}
	return &UserDefinedTextFrame{
		FrameDescriptor: descriptor(raw),
		Encoding:        enc,
		Description:     desc,
		Value:           value,
	}, nil
}

func encodeUserDefinedText(f *UserDefinedTextFrame) ([]byte, error) {
	if err := checkEncoding(f.ID, f.Encoding); err != nil {
		return nil, err
	}
	desc, err := encodeString(f.ID, "description", f.Description, f.Encoding, true)
	if err != nil {
		return nil, err
	}
	value, err := encodeString(f.ID, "value", f.Value, f.Encoding, false)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, 1+len(desc)+len(value))
	buf = append(buf, byte(f.Encoding))
	buf = append(buf, desc...)
	return append(buf, value...), nil
}
