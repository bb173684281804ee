package id3tag

import (
	"github.com/simonhull/id3tag/internal/id3v1"
	"github.com/simonhull/id3tag/internal/types"
)

// Tag is a decoded ID3v2 tag: header properties plus typed frames in
// file order.
type Tag = types.Tag

// Header holds the tag-level properties of an ID3v2 tag.
type Header = types.Header

// TagInfo is an ID3v2 tag with its frames left undecoded.
type TagInfo = types.TagInfo

// ExtendedHeader is the optional ID3v2 extended header.
type ExtendedHeader = types.ExtendedHeader

// RawFrame is an undecoded frame: identifier, flags and payload.
type RawFrame = types.RawFrame

// V1Tag is a decoded ID3v1 or ID3v1.1 trailer.
type V1Tag = id3v1.Tag

// NewTag returns an empty ID3v2 tag of the given version, for example
// NewTag(3, 0) for ID3v2.3.0.
func NewTag(major, revision byte) *Tag {
	return types.NewTag(major, revision)
}

// NewV1Tag returns an empty ID3v1 tag whose genre byte is derived from
// its Genre string when written.
func NewV1Tag() *V1Tag {
	return id3v1.NewTag()
}

// GenreFromString is the V1Tag.GenreID value that derives the genre byte
// from V1Tag.Genre.
const GenreFromString = id3v1.GenreFromString

// GenreNone is the conventional "no genre" byte.
const GenreNone = id3v1.GenreNone

// GenreName returns the ID3v1 genre name for code.
func GenreName(code int) (string, bool) {
	return id3v1.GenreName(code)
}

// GenreCode returns the ID3v1 genre code for name, ignoring case.
func GenreCode(name string) (int, bool) {
	return id3v1.GenreCode(name)
}
