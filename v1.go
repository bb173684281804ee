package id3tag

import (
	"fmt"
	"io"
	"os"

	"github.com/simonhull/id3tag/internal/id3v1"
)

// ReadV1 decodes the ID3v1 trailer in the last 128 bytes of r.
//
// A stream shorter than 128 bytes yields an IOError; a stream without the
// "TAG" marker yields a FormatError.
func ReadV1(r io.ReaderAt, size int64) (*V1Tag, error) {
	return id3v1.Read(r, size, "")
}

// ReadFileV1 is ReadV1 for the file at path.
func ReadFileV1(path string) (*V1Tag, error) {
	var tag *V1Tag
	err := withFile(path, func(f *os.File, size int64) error {
		var err error
		tag, err = id3v1.Read(f, size, path)
		return err
	})
	return tag, err
}

// WriteV1 writes the audio of original to w, without any ID3v1 trailer it
// already has, followed by the trailer for tag.
func WriteV1(w io.Writer, tag *V1Tag, original io.ReaderAt, size int64) error {
	return id3v1.Write(w, tag, original, size, "")
}

// SaveV1 replaces the ID3v1 trailer of the file at path.
//
// This is an atomic operation: the new content is written to a temporary
// file in the same directory, which then replaces the original.
func SaveV1(path string, tag *V1Tag, opts ...SaveOption) error {
	if tag == nil {
		return &ArgumentError{Name: "tag", Reason: "nil"}
	}
	write := func(w io.Writer, r io.ReaderAt, size int64) error {
		return id3v1.Write(w, tag, r, size, path)
	}
	validate := func() error {
		written, err := ReadFileV1(path)
		if err != nil {
			return fmt.Errorf("re-read: %w", err)
		}
		return compareV1(written, tag)
	}
	return saveFile(path, write, validate, opts)
}

// compareV1 compares the fields that survive a write unchanged for
// ISO-8859-1 text that fits its field.
func compareV1(got, want *V1Tag) error {
	if got.Title != want.Title {
		return fmt.Errorf("title mismatch: got %q, want %q", got.Title, want.Title)
	}
	if got.Artist != want.Artist {
		return fmt.Errorf("artist mismatch: got %q, want %q", got.Artist, want.Artist)
	}
	if got.Album != want.Album {
		return fmt.Errorf("album mismatch: got %q, want %q", got.Album, want.Album)
	}
	if got.Extended != want.Extended || got.Track != want.Track {
		return fmt.Errorf("track mismatch: got %d, want %d", got.Track, want.Track)
	}
	return nil
}
