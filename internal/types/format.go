package types

import (
	"bytes"
	"io"

	"github.com/simonhull/id3tag/internal/binary"
)

// Format identifies one of the two tag formats.
type Format int

const (
	FormatID3v1 Format = iota + 1 // ID3v1
	FormatID3v2                   // ID3v2
)

func (f Format) String() string {
	switch f {
	case FormatID3v1:
		return "ID3v1"
	case FormatID3v2:
		return "ID3v2"
	default:
		return "Unknown"
	}
}

// Tag markers and sizes.
const (
	V1Marker       = "TAG"
	V1Size         = 128
	V2Marker       = "ID3"
	V2HeaderLen    = 10
	FrameHeaderLen = 10 // identifier, plain size, flags
)

// FileState records which tag formats a stream carries.
type FileState struct {
	V1 bool `json:"id3v1"`
	V2 bool `json:"id3v2"`
}

// DetectTags reports which tags are present by examining marker bytes.
//
// The stream must be at least 128 bytes long, the size of an ID3v1 tag.
// Neither tag's contents are validated.
func DetectTags(r io.ReaderAt, size int64, path string) (FileState, error) {
	if size < V1Size {
		return FileState{}, &IOError{Path: path, Op: "detect tags", Err: io.ErrUnexpectedEOF}
	}

	sr := binary.NewSafeReader(r, size, "")

	magic := make([]byte, 3)
	if err := sr.ReadAt(magic, 0, "ID3v2 marker"); err != nil {
		return FileState{}, &IOError{Path: path, Op: "detect tags", Err: err}
	}
	var st FileState
	st.V2 = bytes.Equal(magic, []byte(V2Marker))

	if err := sr.ReadAt(magic, size-V1Size, "ID3v1 marker"); err != nil {
		return FileState{}, &IOError{Path: path, Op: "detect tags", Err: err}
	}
	st.V1 = bytes.Equal(magic, []byte(V1Marker))

	return st, nil
}
