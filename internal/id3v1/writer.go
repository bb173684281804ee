package id3v1

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/text"
	"github.com/simonhull/id3tag/internal/types"
)

// Marshal builds the 128-byte trailer for tag.
//
// Text is encoded as ISO-8859-1 with unsupported characters replaced,
// then truncated or zero-padded to the field width.
func Marshal(tag *Tag) ([]byte, error) {
	if tag == nil {
		return nil, &types.ArgumentError{Name: "tag", Reason: "nil"}
	}
	genre, err := genreByte(tag)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, types.V1Size)
	copy(buf, types.V1Marker)
	putField(buf[offTitle:offTitle+lenText], tag.Title)
	putField(buf[offArtist:offArtist+lenText], tag.Artist)
	putField(buf[offAlbum:offAlbum+lenText], tag.Album)
	putField(buf[offYear:offYear+lenYear], tag.Year)

	comment := buf[offComment : offComment+lenText]
	if tag.Extended {
		if tag.Track < 1 || tag.Track > 255 {
			return nil, &types.ArgumentError{Name: "track", Reason: fmt.Sprintf("%d not in 1..255", tag.Track)}
		}
		putField(comment[:lenCommentV11], tag.Comment)
		comment[offTrackInComment] = byte(tag.Track)
	} else {
		putField(comment, tag.Comment)
	}

	buf[offGenre] = genre
	return buf, nil
}

func putField(dst []byte, s string) {
	copy(dst, text.EncodeLatin1Lossy(s))
}

func genreByte(tag *Tag) (byte, error) {
	if tag.GenreID > 255 {
		return 0, &types.ArgumentError{Name: "genre id", Reason: fmt.Sprintf("%d not in 0..255", tag.GenreID)}
	}
	if tag.GenreID >= 0 {
		return byte(tag.GenreID), nil
	}
	code, ok := parseGenre(tag.Genre)
	if !ok {
		return 0, &types.ArgumentError{Name: "genre", Reason: fmt.Sprintf("unknown genre %q", tag.Genre)}
	}
	return code, nil
}

// Write copies the audio of original to w, leaving out an existing
// trailer, and appends the trailer for tag.
func Write(w io.Writer, tag *Tag, original io.ReaderAt, originalSize int64, path string) error {
	if w == nil {
		return &types.ArgumentError{Name: "writer", Reason: "nil"}
	}
	if original == nil {
		return &types.ArgumentError{Name: "original", Reason: "nil"}
	}

	trailer, err := Marshal(tag)
	if err != nil {
		return err
	}

	audioLen := originalSize
	hasTag, err := HasTag(original, originalSize)
	if err != nil {
		return &types.IOError{Path: path, Op: "locate ID3v1 tag", Err: err}
	}
	if hasTag {
		audioLen -= types.V1Size
	}
	log.WithFields(log.Fields{"path": path, "audio_bytes": audioLen, "replacing": hasTag}).Debug("writing ID3v1 tag")

	sw := binary.NewSafeWriter(w)
	if _, err := io.Copy(sw, io.NewSectionReader(original, 0, audioLen)); err != nil {
		return &types.IOError{Path: path, Op: "copy audio", Err: err}
	}
	if err := sw.WriteBytes(trailer); err != nil {
		return &types.IOError{Path: path, Op: "write ID3v1 tag", Err: err}
	}
	log.WithFields(log.Fields{"path": path, "bytes": sw.Offset()}).Trace("ID3v1 write complete")
	return nil
}
