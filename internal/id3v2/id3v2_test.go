package id3v2

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/types"
)

func read(t *testing.T, data []byte) *types.TagInfo {
	t.Helper()
	info, err := Read(bytes.NewReader(data), int64(len(data)), "test.mp3", ReadOptions{})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return info
}

func marshal(t *testing.T, info *types.TagInfo) []byte {
	t.Helper()
	data, err := Marshal(info)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	return data
}

// header builds an outer header declaring the given region size.
func header(flags byte, size uint32) []byte {
	s, _ := binary.EncodeSynchsafe(size)
	return append([]byte{'I', 'D', '3', 3, 0, flags}, s...)
}

func sampleFrames() []types.RawFrame {
	return []types.RawFrame{
		{ID: "TIT2", Payload: []byte("\x00hello")},
		{ID: "ZZZZ", Flags: 0, Payload: []byte{0x01, 0x02}},
	}
}

func assertFrames(t *testing.T, got, want []types.RawFrame) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Flags != want[i].Flags || !bytes.Equal(got[i].Payload, want[i].Payload) {
			t.Errorf("frame %d = %q/%04x/% x, want %q/%04x/% x", i,
				got[i].ID, got[i].Flags, got[i].Payload, want[i].ID, want[i].Flags, want[i].Payload)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	info := &types.TagInfo{MajorVersion: 3, Frames: sampleFrames()}
	data := marshal(t, info)

	if got := binary.DecodeSynchsafe(data[6:10]); int(got) != len(data)-10 {
		t.Errorf("outer size = %d, want %d", got, len(data)-10)
	}

	back := read(t, data)
	if back.MajorVersion != 3 || back.Revision != 0 {
		t.Errorf("version = %d.%d", back.MajorVersion, back.Revision)
	}
	assertFrames(t, back.Frames, info.Frames)
	if back.Padding != 0 {
		t.Errorf("Padding = %d, want 0", back.Padding)
	}
}

func TestRoundTrip_Padding(t *testing.T) {
	info := &types.TagInfo{MajorVersion: 3, Frames: sampleFrames(), Padding: 100}
	back := read(t, marshal(t, info))
	assertFrames(t, back.Frames, info.Frames)
	if back.Padding != 100 {
		t.Errorf("Padding = %d, want 100", back.Padding)
	}
}

func TestRead_EmptyRegion(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"zero size", header(0, 0)},
		{"only padding", append(header(0, 32), make([]byte, 32)...)},
		{"shorter than a frame header", append(header(0, 9), make([]byte, 9)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := read(t, tt.data)
			if len(info.Frames) != 0 {
				t.Errorf("got %d frames, want 0", len(info.Frames))
			}
		})
	}
}

func TestRead_ZeroIdentifierStops(t *testing.T) {
	var region []byte
	region = types.RawFrame{ID: "TIT2", Payload: []byte("\x00a")}.AppendTo(region)
	region = append(region, make([]byte, 10)...)
	region = types.RawFrame{ID: "TPE1", Payload: []byte("\x00b")}.AppendTo(region)

	data := append(header(0, uint32(len(region))), region...)
	info := read(t, data)
	if len(info.Frames) != 1 || info.Frames[0].ID != "TIT2" {
		t.Fatalf("frames = %+v, want only TIT2", info.Frames)
	}
	if info.Padding != uint32(10+12) {
		t.Errorf("Padding = %d, want 22", info.Padding)
	}
}

func TestRoundTrip_Unsynchronisation(t *testing.T) {
	frames := []types.RawFrame{
		{ID: "ZZZZ", Payload: []byte{0xFF, 0xE0, 0x00, 0xFF, 0x00, 0x12, 0xFF}},
		{ID: "TIT2", Payload: []byte("\x00sync")},
	}
	info := &types.TagInfo{MajorVersion: 3, Unsynchronisation: true, Frames: frames, Padding: 4}
	data := marshal(t, info)

	if data[5]&types.HeaderFlagUnsynchronisation == 0 {
		t.Fatal("unsynchronisation flag not set")
	}
	if int(binary.DecodeSynchsafe(data[6:10])) != len(data)-10 {
		t.Error("outer size must be measured after unsynchronisation")
	}

	back := read(t, data)
	if !back.Unsynchronisation {
		t.Error("Unsynchronisation = false")
	}
	assertFrames(t, back.Frames, frames)
}

func TestRoundTrip_ExtendedHeader(t *testing.T) {
	tests := []struct {
		name string
		eh   *types.ExtendedHeader
	}{
		{"no crc", &types.ExtendedHeader{PaddingSize: 16}},
		{"explicit crc", &types.ExtendedHeader{PaddingSize: 16, CRCPresent: true, CRC: []byte{0xDE, 0xAD, 0xBE, 0xEF}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &types.TagInfo{
				MajorVersion:          3,
				ExtendedHeaderPresent: true,
				ExtendedHeader:        tt.eh,
				Frames:                sampleFrames(),
				Padding:               16,
			}
			data := marshal(t, info)

			extLen := binary.DecodePlain(data[10:14])
			if tt.eh.CRCPresent && extLen != 10 || !tt.eh.CRCPresent && extLen != 6 {
				t.Errorf("extended header size = %d", extLen)
			}

			back := read(t, data)
			if back.ExtendedHeader == nil {
				t.Fatal("ExtendedHeader = nil")
			}
			if back.ExtendedHeader.PaddingSize != 16 || back.ExtendedHeader.CRCPresent != tt.eh.CRCPresent {
				t.Errorf("ExtendedHeader = %+v", back.ExtendedHeader)
			}
			if !bytes.Equal(back.ExtendedHeader.CRC, tt.eh.CRC) {
				t.Errorf("CRC = % x, want % x", back.ExtendedHeader.CRC, tt.eh.CRC)
			}
			assertFrames(t, back.Frames, info.Frames)
			if back.Padding != 16 {
				t.Errorf("Padding = %d, want 16", back.Padding)
			}
		})
	}
}

func TestMarshal_ComputesCRC(t *testing.T) {
	info := &types.TagInfo{
		MajorVersion:          3,
		ExtendedHeaderPresent: true,
		ExtendedHeader:        &types.ExtendedHeader{CRCPresent: true},
		Frames:                sampleFrames(),
	}
	back := read(t, marshal(t, info))
	if len(back.ExtendedHeader.CRC) != 4 || bytes.Equal(back.ExtendedHeader.CRC, make([]byte, 4)) {
		t.Errorf("CRC = % x, want a computed checksum", back.ExtendedHeader.CRC)
	}
}

func TestRead_Errors(t *testing.T) {
	var frame []byte
	frame = types.RawFrame{ID: "TIT2", Payload: []byte("\x00hello")}.AppendTo(frame)
	truncatedFrame := append(header(0, uint32(len(frame))), frame[:len(frame)-2]...)
	overrun := append(header(0, 12), []byte("TIT2\x00\x00\x00\x20\x00\x00\x00a")...)

	tests := []struct {
		name string
		data []byte
		want any
	}{
		{"short stream", []byte("ID3\x03"), new(*types.IOError)},
		{"bad marker", []byte("ID4\x03\x00\x00\x00\x00\x00\x00"), new(*types.FormatError)},
		{"region past end", truncatedFrame, new(*types.IOError)},
		{"frame past region", overrun, new(*types.IOError)},
		{"extended header past region", append(header(types.HeaderFlagExtendedHeader, 4), 0, 0, 0, 6), new(*types.IOError)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(bytes.NewReader(tt.data), int64(len(tt.data)), "bad.mp3", ReadOptions{})
			if err == nil {
				t.Fatal("Read() error = nil")
			}
			switch target := tt.want.(type) {
			case **types.IOError:
				if !errors.As(err, target) {
					t.Errorf("error = %v (%T), want *IOError", err, err)
				}
			case **types.FormatError:
				if !errors.As(err, target) {
					t.Errorf("error = %v (%T), want *FormatError", err, err)
				}
			}
		})
	}
}

func TestRead_RegionBoundsError(t *testing.T) {
	data := append(header(0, 100), make([]byte, 10)...)
	_, err := Read(bytes.NewReader(data), int64(len(data)), "short.mp3", ReadOptions{})
	var oob *binary.OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("error = %v, want wrapped *OutOfBoundsError", err)
	}
	if n := strings.Count(err.Error(), "short.mp3"); n != 1 {
		t.Errorf("path appears %d times in %q", n, err.Error())
	}
}

func TestRead_OversizedDeclaredLengths(t *testing.T) {
	const huge = 0xC0000000

	frame := append(header(0, 20), 'T', 'I', 'T', '2', 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00)
	frame = append(frame, make([]byte, 10)...)

	ext := append(header(types.HeaderFlagExtendedHeader, 20), 0xC0, 0x00, 0x00, 0x00)
	ext = append(ext, make([]byte, 16)...)

	tests := []struct {
		name string
		data []byte
		op   string
	}{
		{"frame size", frame, "read frame TIT2"},
		{"extended header size", ext, "read extended header"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.data) != 30 {
				t.Fatalf("fixture is %d bytes, want 30", len(tt.data))
			}
			_, err := Read(bytes.NewReader(tt.data), int64(len(tt.data)), "tiny.mp3", ReadOptions{})
			var ioErr *types.IOError
			if !errors.As(err, &ioErr) {
				t.Fatalf("error = %v, want *IOError", err)
			}
			if ioErr.Op != tt.op {
				t.Errorf("Op = %q, want %q", ioErr.Op, tt.op)
			}
			var oob *binary.OutOfBoundsError
			if !errors.As(err, &oob) {
				t.Fatalf("error = %v, want wrapped *OutOfBoundsError", err)
			}
			if oob.Length != huge {
				t.Errorf("Length = %#x, want %#x", oob.Length, huge)
			}
			if strings.Count(err.Error(), "tiny.mp3") != 1 {
				t.Errorf("error = %q, want the path exactly once", err.Error())
			}
		})
	}
}

func TestRead_MaxFrameSize(t *testing.T) {
	data := marshal(t, &types.TagInfo{MajorVersion: 3, Frames: sampleFrames()})
	_, err := Read(bytes.NewReader(data), int64(len(data)), "big.mp3", ReadOptions{MaxFrameSize: 4})
	var pe *types.PayloadError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *PayloadError", err)
	}
	if pe.FrameID != "TIT2" {
		t.Errorf("FrameID = %q, want TIT2", pe.FrameID)
	}
}

func TestMarshal_InvalidFrameID(t *testing.T) {
	_, err := Marshal(&types.TagInfo{MajorVersion: 3, Frames: []types.RawFrame{{ID: "TOO LONG"}}})
	var ae *types.ArgumentError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v, want *ArgumentError", err)
	}
}

func TestWrite_Splice(t *testing.T) {
	audio := bytes.Repeat([]byte{0xAB, 0xCD}, 300)
	trailer := append([]byte("TAG"), make([]byte, 125)...)
	oldTag := marshal(t, &types.TagInfo{MajorVersion: 3, Frames: sampleFrames(), Padding: 50})

	cat := func(parts ...[]byte) []byte { return bytes.Join(parts, nil) }
	info := &types.TagInfo{MajorVersion: 3, Frames: []types.RawFrame{{ID: "TALB", Payload: []byte("\x00new")}}}
	newTag := marshal(t, info)

	tests := []struct {
		name     string
		original []byte
		want     []byte
	}{
		{"replaces existing tag", cat(oldTag, audio, trailer), cat(newTag, audio, trailer)},
		{"no existing tag", cat(audio), cat(newTag, audio)},
		{"tiny source copied verbatim", []byte("ID3\x03"), cat(newTag, []byte("ID3\x03"))},
		{"empty source", nil, newTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Write(&out, info, bytes.NewReader(tt.original), int64(len(tt.original)), "out.mp3")
			if err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if !bytes.Equal(out.Bytes(), tt.want) {
				t.Errorf("Write() produced %d bytes, want %d", out.Len(), len(tt.want))
			}
		})
	}
}

func TestWrite_NilArguments(t *testing.T) {
	info := &types.TagInfo{MajorVersion: 3}
	var ae *types.ArgumentError
	if err := Write(nil, info, bytes.NewReader(nil), 0, ""); !errors.As(err, &ae) {
		t.Errorf("nil writer: error = %v", err)
	}
	if err := Write(&bytes.Buffer{}, info, nil, 0, ""); !errors.As(err, &ae) {
		t.Errorf("nil original: error = %v", err)
	}
	if err := Write(&bytes.Buffer{}, nil, bytes.NewReader(nil), 0, ""); !errors.As(err, &ae) {
		t.Errorf("nil info: error = %v", err)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesFailure(t *testing.T) {
	info := &types.TagInfo{MajorVersion: 3, Frames: sampleFrames()}
	err := Write(failWriter{}, info, bytes.NewReader(nil), 0, "x.mp3")
	var ioErr *types.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error = %v, want *IOError", err)
	}
}

func TestTagSize(t *testing.T) {
	tag := marshal(t, &types.TagInfo{MajorVersion: 3, Frames: sampleFrames()})
	data := append(tag, 1, 2, 3)
	n, err := TagSize(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(tag)) {
		t.Errorf("TagSize() = %d, want %d", n, len(tag))
	}

	n, err = TagSize(bytes.NewReader([]byte("not a tag at all")), 16)
	if err != nil || n != 0 {
		t.Errorf("TagSize(no tag) = %d, %v", n, err)
	}
}
