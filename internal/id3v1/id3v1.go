// Package id3v1 reads and writes the fixed 128-byte ID3v1 trailer.
//
// Layout:
//
//	[0:3]     "TAG"
//	[3:33]    Title
//	[33:63]   Artist
//	[63:93]   Album
//	[93:97]   Year
//	[97:127]  Comment (ID3v1.1: 28 bytes, a zero byte, then the track number)
//	[127]     Genre
package id3v1

import (
	"bytes"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/text"
	"github.com/simonhull/id3tag/internal/types"
)

// Field offsets and widths within the trailer.
const (
	offTitle   = 3
	offArtist  = 33
	offAlbum   = 63
	offYear    = 93
	offComment = 97
	offGenre   = 127

	lenText           = 30
	lenYear           = 4
	lenCommentV11     = 28
	offTrackInComment = 29
)

// GenreFromString marks a Tag whose genre byte is resolved from Genre.
const GenreFromString = -1

// Tag is a decoded ID3v1 or ID3v1.1 trailer.
type Tag struct {
	Title   string
	Artist  string
	Album   string
	Year    string
	Comment string

	// Genre is rendered as "(code)name" when reading.
	Genre string

	// GenreID is the raw genre byte. When writing, GenreFromString (or any
	// negative value) derives the byte from Genre instead.
	GenreID int

	// Extended reports the ID3v1.1 variant, which carries Track.
	Extended bool
	Track    int
}

// NewTag returns an empty tag whose genre is taken from the Genre field.
func NewTag() *Tag {
	return &Tag{GenreID: GenreFromString}
}

// Read decodes the trailer in the last 128 bytes of r.
//
// A stream shorter than 128 bytes is an IOError, checked before the
// marker; a missing "TAG" marker is a FormatError.
func Read(r io.ReaderAt, size int64, path string) (*Tag, error) {
	if r == nil {
		return nil, &types.ArgumentError{Name: "reader", Reason: "nil"}
	}
	if size < types.V1Size {
		return nil, &types.IOError{
			Path: path,
			Op:   "read ID3v1 tag",
			Err:  fmt.Errorf("stream is %d bytes, need %d: %w", size, types.V1Size, io.ErrUnexpectedEOF),
		}
	}

	buf := make([]byte, types.V1Size)
	sr := binary.NewSafeReader(r, size, "")
	if err := sr.ReadAt(buf, size-types.V1Size, "ID3v1 tag"); err != nil {
		return nil, &types.IOError{Path: path, Op: "read ID3v1 tag", Err: err}
	}
	if !bytes.Equal(buf[:3], []byte(types.V1Marker)) {
		return nil, &types.FormatError{Path: path, Format: types.FormatID3v1, Reason: fmt.Sprintf("marker %q", buf[:3])}
	}

	tag := decode(buf)
	log.WithFields(log.Fields{"path": path, "extended": tag.Extended, "genre": tag.GenreID}).Debug("read ID3v1 tag")
	return tag, nil
}

func decode(buf []byte) *Tag {
	comment := buf[offComment : offComment+lenText]
	tag := &Tag{
		Title:   field(buf[offTitle : offTitle+lenText]),
		Artist:  field(buf[offArtist : offArtist+lenText]),
		Album:   field(buf[offAlbum : offAlbum+lenText]),
		Year:    field(buf[offYear : offYear+lenYear]),
		GenreID: int(buf[offGenre]),
		Genre:   renderGenre(buf[offGenre]),
	}

	if comment[offTrackInComment-1] == 0 && comment[offTrackInComment] != 0 {
		tag.Extended = true
		tag.Track = int(comment[offTrackInComment])
		tag.Comment = field(comment[:lenCommentV11])
	} else {
		tag.Comment = field(comment)
	}
	return tag
}

// field decodes ISO-8859-1 bytes, dropping every zero byte wherever it
// occurs, so "A\x00B" reads as "AB".
func field(b []byte) string {
	return text.DecodeLatin1(bytes.ReplaceAll(b, []byte{0}, nil))
}

// HasTag reports whether the last 128 bytes of r start with "TAG".
func HasTag(r io.ReaderAt, size int64) (bool, error) {
	if size < types.V1Size {
		return false, nil
	}
	magic := make([]byte, 3)
	if err := binary.NewSafeReader(r, size, "").ReadAt(magic, size-types.V1Size, "ID3v1 marker"); err != nil {
		return false, err
	}
	return bytes.Equal(magic, []byte(types.V1Marker)), nil
}
