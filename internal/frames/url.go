package frames

import (
	"github.com/simonhull/id3tag/internal/text"
	"github.com/simonhull/id3tag/internal/types"
)

// URLFrame is any W*** frame except WXXX. The URL is always ISO-8859-1
// and has no encoding selector.
type URLFrame struct {
	URL string
	types.FrameDescriptor
}

// NewURLFrame creates a URL link frame.
func NewURLFrame(id, url string) *URLFrame {
	return &URLFrame{FrameDescriptor: types.FrameDescriptor{ID: id}, URL: url}
}

func (*URLFrame) Type() types.FrameType { return types.FrameURLLink }

func decodeURL(raw types.RawFrame) (types.Frame, error) {
	url, err := text.DecodeString(raw.Payload, text.ISO88591)
	if err != nil {
		return nil, payloadError(raw.ID, "decode url", err)
	}
	return &URLFrame{FrameDescriptor: descriptor(raw), URL: url}, nil
}

func encodeURL(f *URLFrame) ([]byte, error) {
	return encodeString(f.ID, "url", f.URL, text.ISO88591, false)
}

// UserDefinedURLFrame is a WXXX frame: an encoded description followed by
// an ISO-8859-1 URL.
type UserDefinedURLFrame struct {
	Description string
	URL         string
	types.FrameDescriptor
	Encoding text.Encoding
}

// NewUserDefinedURLFrame creates a WXXX frame.
func NewUserDefinedURLFrame(description, url string) *UserDefinedURLFrame {
	return &UserDefinedURLFrame{
		FrameDescriptor: types.FrameDescriptor{ID: "WXXX"},
		Encoding:        PreferredEncoding(description),
		Description:     description,
		URL:             url,
	}
}

func (*UserDefinedURLFrame) Type() types.FrameType { return types.FrameUserDefinedURLLink }

func decodeUserDefinedURL(raw types.RawFrame) (types.Frame, error) {
	enc, data, err := readEncoding(raw)
	if err != nil {
		return nil, err
	}
	desc, rest, err := decodeTerminated(raw.ID, "description", data, enc)
	if err != nil {
		return nil, err
	}
	url, err := text.DecodeString(rest, text.ISO88591)
	if err != nil {
		return nil, payloadError(raw.ID, "decode url", err)
	}
	return &UserDefinedURLFrame{
		FrameDescriptor: descriptor(raw),
		Encoding:        enc,
		Description:     desc,
		URL:             url,
	}, nil
}

func encodeUserDefinedURL(f *UserDefinedURLFrame) ([]byte, error) {
	if err := checkEncoding(f.ID, f.Encoding); err != nil {
		return nil, err
	}
	desc, err := encodeString(f.ID, "description", f.Description, f.Encoding, true)
	if err != nil {
		return nil, err
	}
	url, err := encodeString(f.ID, "url", f.URL, text.ISO88591, false)
	if err != nil {
		return nil, err
	}
	buf := append([]byte{byte(f.Encoding)}, desc...)
	return append(buf, url...), nil
}
