// Package id3tag reads and writes ID3 tags in audio files.
//
// Two incompatible formats share the same files: the fixed 128-byte ID3v1
// trailer at the end of the file, and the variable-length, frame-based
// ID3v2 tag at the start. id3tag decodes both into structured values and
// writes them back byte-exact.
//
// # Quick Start
//
// Reading the ID3v2 tag of a file:
//
//	tag, err := id3tag.ReadFileV2("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for id, f := range tag.All() {
//		if t, ok := f.(*id3tag.TextFrame); ok {
//			fmt.Printf("%s: %s\n", id, t.Text())
//		}
//	}
//
// Reading the ID3v1 trailer:
//
//	v1, err := id3tag.ReadFileV1("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s - %s %s\n", v1.Artist, v1.Title, v1.Genre)
//
// # Architecture
//
// ID3v2 decoding happens in two layers:
//
//	[ReadRaw]       - Header, extended header, unsynchronisation, raw frames
//	  └─ [Decode]   - Frame identifier to typed frame
//
// ReadV2 runs both. Frames with identifiers no decoder knows about become
// *UnknownFrame and are written back unchanged, so a read-modify-write
// cycle never loses data.
//
// Writing reverses this: Encode turns typed frames into a TagInfo, and
// WriteV2 or SaveV2 serializes it in front of the original audio.
//
// # Checking For Tags
//
// Status inspects only the marker bytes:
//
//	st, err := id3tag.StatusFile("song.mp3")
//	if err == nil && st.V2 {
//		...
//	}
//
// StatusMany checks many files concurrently:
//
//	states, err := id3tag.StatusMany(ctx, paths...)
//
// # Error Handling
//
// Every failure is one of a small set of typed errors, matched with
// errors.As:
//
//   - FormatError: the tag marker is missing
//   - IOError: the stream is too short or an I/O operation failed
//   - PayloadError: a frame payload does not match its grammar
//   - ArgumentError: a value cannot be encoded
//   - UnsupportedError: no decoder or encoder applies
//
// With WithLenientFrames, frame payload errors are downgraded to warnings
// in Tag.Warnings and the frame is kept as *UnknownFrame.
//
// # Saving
//
// SaveV1 and SaveV2 write to a temporary file next to the original and
// rename it into place, so a failed save leaves the original untouched:
//
//	err := id3tag.SaveV2("song.mp3", tag,
//	    id3tag.WithBackup(".bak"),
//	    id3tag.WithPreserveModTime(),
//	)
package id3tag
