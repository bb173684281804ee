package id3tag

import (
	"fmt"
	"io"
	"os"

	"github.com/simonhull/id3tag/internal/frames"
	"github.com/simonhull/id3tag/internal/id3v2"
)

// ReadRaw reads the ID3v2 tag at the start of r without interpreting its
// frames.
//
// A stream that does not start with "ID3" yields a FormatError; a stream
// too short for the header or the declared tag size yields an IOError.
func ReadRaw(r io.ReaderAt, size int64, opts ...Option) (*TagInfo, error) {
	return readRaw(r, size, "", applyOptions(opts))
}

func readRaw(r io.ReaderAt, size int64, path string, o *readOptions) (*TagInfo, error) {
	return id3v2.Read(r, size, path, id3v2.ReadOptions{MaxFrameSize: o.maxFrameSize})
}

// Decode turns every raw frame of info into a typed frame.
//
// Identifiers starting with 'T' become *TextFrame (TXXX becomes
// *UserDefinedTextFrame), 'W' becomes *URLFrame (WXXX becomes
// *UserDefinedURLFrame), known identifiers get their own type, and
// everything else becomes *UnknownFrame.
func Decode(info *TagInfo, opts ...Option) (*Tag, error) {
	return decode(info, applyOptions(opts))
}

func decode(info *TagInfo, o *readOptions) (*Tag, error) {
	return frames.DecodeTag(info, frames.DecodeOptions{Lenient: o.lenient})
}

// Encode turns a typed tag back into raw frames.
func Encode(tag *Tag) (*TagInfo, error) {
	return frames.EncodeTag(tag)
}

// ReadV2 reads and decodes the ID3v2 tag at the start of r.
//
// Example:
//
//	tag, err := id3tag.ReadV2(r, size)
//	if err != nil {
//		return err
//	}
//	if f, ok := tag.First("TIT2").(*id3tag.TextFrame); ok {
//		fmt.Println(f.Text())
//	}
func ReadV2(r io.ReaderAt, size int64, opts ...Option) (*Tag, error) {
	o := applyOptions(opts)
	info, err := readRaw(r, size, "", o)
	if err != nil {
		return nil, err
	}
	return decode(info, o)
}

// ReadFileV2 is ReadV2 for the file at path.
func ReadFileV2(path string, opts ...Option) (*Tag, error) {
	o := applyOptions(opts)
	var info *TagInfo
	err := withFile(path, func(f *os.File, size int64) error {
		var err error
		info, err = readRaw(f, size, path, o)
		return err
	})
	if err != nil {
		return nil, err
	}
	return decode(info, o)
}

// WriteV2 writes tag to w followed by the audio of original. An ID3v2 tag
// at the start of original is skipped; an ID3v1 trailer is kept.
//
// When tag.CRCPresent is set and tag.CRC is nil, the checksum is computed
// from the encoded frames.
//
// Setting tag.Unsynchronisation escapes every 0xFF that starts a byte
// pair. A 0xFF in the second byte of a pair followed by a byte with the
// high bit set stays unescaped, so the output is not guaranteed to be
// free of false sync patterns.
func WriteV2(w io.Writer, tag *Tag, original io.ReaderAt, size int64) error {
	info, err := Encode(tag)
	if err != nil {
		return err
	}
	return id3v2.Write(w, info, original, size, "")
}

// SaveV2 replaces the ID3v2 tag of the file at path.
//
// This is an atomic operation: the new content is written to a temporary
// file in the same directory, which then replaces the original.
//
//	tag.Remove("COMM")
//	tag.Add(id3tag.NewTextFrame("TIT2", "New Title"))
//	err := id3tag.SaveV2("song.mp3", tag, id3tag.WithBackup(".bak"))
func SaveV2(path string, tag *Tag, opts ...SaveOption) error {
	info, err := Encode(tag)
	if err != nil {
		return err
	}
	write := func(w io.Writer, r io.ReaderAt, size int64) error {
		return id3v2.Write(w, info, r, size, path)
	}
	validate := func() error {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("re-open: %w", err)
		}
		defer f.Close() //nolint:errcheck // Read-only handle
		stat, err := f.Stat()
		if err != nil {
			return fmt.Errorf("stat: %w", err)
		}
		written, err := id3v2.Read(f, stat.Size(), path, id3v2.ReadOptions{})
		if err != nil {
			return fmt.Errorf("re-read: %w", err)
		}
		return compareV2(written, info)
	}
	return saveFile(path, write, validate, opts)
}

// compareV2 checks that the frames read back match the frames written.
func compareV2(got, want *TagInfo) error {
	if len(got.Frames) != len(want.Frames) {
		return fmt.Errorf("frame count mismatch: got %d, want %d", len(got.Frames), len(want.Frames))
	}
	for i := range want.Frames {
		g, w := got.Frames[i], want.Frames[i]
		if g.ID != w.ID || g.Flags != w.Flags || string(g.Payload) != string(w.Payload) {
			return fmt.Errorf("frame %d mismatch: got %s, want %s", i, g.ID, w.ID)
		}
	}
	return nil
}
