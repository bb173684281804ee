package frames

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/simonhull/id3tag/internal/text"
	"github.com/simonhull/id3tag/internal/types"
)

func TestDecode_Dispatch(t *testing.T) {
	tests := []struct {
		id      string
		payload []byte
		want    types.FrameType
	}{
		{"TIT2", []byte("\x00hello"), types.FrameText},
		{"TALB", []byte("\x00album"), types.FrameText},
		{"TXXX", []byte("\x00desc\x00value"), types.FrameUserDefinedText},
		{"WOAR", []byte("http://a"), types.FrameURLLink},
		{"WXXX", []byte("\x00d\x00http://a"), types.FrameUserDefinedURLLink},
		{"COMM", []byte("\x00eng\x00text"), types.FrameComment},
		{"PRIV", []byte("owner\x00\x01"), types.FramePrivate},
		{"MCDI", []byte{1, 2, 3}, types.FrameMusicCDIdentifier},
		{"AENC", []byte("o\x00\x00\x01\x00\x02"), types.FrameAudioEncryption},
		{"APIC", []byte("\x00image/png\x00\x03\x00\x89PNG"), types.FramePicture},
		{"CHAP", []byte("ch1\x00\x00\x00\x00\x00\x00\x00\x03\xe8\xff\xff\xff\xff\xff\xff\xff\xff"), types.FrameChapter},
		{"ZZZZ", []byte{1, 2}, types.FrameUnknown},
		{"GEOB", []byte{0}, types.FrameUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			f, err := Decode(types.RawFrame{ID: tt.id, Payload: tt.payload})
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if f.Type() != tt.want {
				t.Errorf("Type() = %v, want %v", f.Type(), tt.want)
			}
			if f.Descriptor().ID != tt.id {
				t.Errorf("ID = %q, want %q", f.Descriptor().ID, tt.id)
			}
		})
	}
}

// Every known payload must survive decode followed by encode unchanged.
func TestRoundTrip_Bytes(t *testing.T) {
	tests := []struct {
		id      string
		flags   uint16
		payload []byte
	}{
		{"TIT2", 0, []byte("\x00hello")},
		{"TCON", 0, []byte("\x00Rock\x00Jazz")},
		{"TPE1", 0, []byte{1, 0xFF, 0xFE, 'h', 0, 'i', 0}},
		{"TPE2", 0, []byte{2, 0, 'o', 0, 'k'}},
		{"TIT3", 0, append([]byte{3}, "日本"...)},
		{"TXXX", 0x2000, []byte("\x00desc\x00value")},
		{"WCOM", 0, []byte("http://example.com")},
		{"WXXX", 0, []byte("\x00home\x00http://example.com")},
		{"COMM", 0, []byte("\x00engshort\x00long comment")},
		{"PRIV", 0, []byte("com.example\x00\x00\x01\x02")},
		{"MCDI", 0, []byte{0x00, 0x12, 0x01, 0x0A}},
		{"AENC", 0, []byte("owner\x00\x00\x10\x00\x20\xAA\xBB")},
		{"APIC", 0, []byte("\x00image/jpeg\x00\x03cover\x00\xFF\xD8\xFF")},
		{"ZZZZ", 0x0040, []byte{0x01, 0x02}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			f, err := Decode(types.RawFrame{ID: tt.id, Flags: tt.flags, Payload: tt.payload})
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			raw, err := Encode(f)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if raw.ID != tt.id || raw.Flags != tt.flags {
				t.Errorf("header = %q/%04x, want %q/%04x", raw.ID, raw.Flags, tt.id, tt.flags)
			}
			if !bytes.Equal(raw.Payload, tt.payload) {
				t.Errorf("payload = % x, want % x", raw.Payload, tt.payload)
			}
		})
	}
}

func TestDecode_Fields(t *testing.T) {
	f, err := Decode(types.RawFrame{ID: "COMM", Payload: []byte("\x00engdesc\x00the text")})
	if err != nil {
		t.Fatal(err)
	}
	comm := f.(*CommentFrame)
	if comm.Language != "eng" || comm.Description != "desc" || comm.Text != "the text" {
		t.Errorf("COMM = %+v", comm)
	}

	f, err = Decode(types.RawFrame{ID: "PRIV", Payload: []byte("owner\x00\x01\x02")})
	if err != nil {
		t.Fatal(err)
	}
	priv := f.(*PrivateFrame)
	if priv.Owner != "owner" || !bytes.Equal(priv.Data, []byte{1, 2}) {
		t.Errorf("PRIV = %+v", priv)
	}

	f, err = Decode(types.RawFrame{ID: "AENC", Payload: []byte("o\x00\x00\x10\x00\x20\xAA")})
	if err != nil {
		t.Fatal(err)
	}
	aenc := f.(*AudioEncryptionFrame)
	if aenc.PreviewStart != 0x10 || aenc.PreviewLength != 0x20 || !bytes.Equal(aenc.Info, []byte{0xAA}) {
		t.Errorf("AENC = %+v", aenc)
	}

	f, err = Decode(types.RawFrame{ID: "APIC", Payload: []byte("\x00image/png\x00\x03front\x00DATA")})
	if err != nil {
		t.Fatal(err)
	}
	pic := f.(*PictureFrame)
	if pic.MIMEType != "image/png" || pic.PictureType != types.PictureFrontCover || pic.Description != "front" || string(pic.Data) != "DATA" {
		t.Errorf("APIC = %+v", pic)
	}
	if pic.String() != "Front cover (PNG, 4B)" {
		t.Errorf("String() = %q", pic.String())
	}
}

func TestDecode_PayloadErrors(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		payload []byte
	}{
		{"text empty", "TIT2", nil},
		{"text bad encoding", "TIT2", []byte{9, 'a'}},
		{"txxx no terminator", "TXXX", []byte("\x00desc")},
		{"comm too short", "COMM", []byte("\x00en")},
		{"comm no terminator", "COMM", []byte("\x00engdesc")},
		{"priv no terminator", "PRIV", []byte("owner")},
		{"aenc short", "AENC", []byte("o\x00\x01")},
		{"apic no mime terminator", "APIC", []byte("\x00image/png")},
		{"apic truncated", "APIC", []byte("\x00image/png\x00")},
		{"chap short", "CHAP", []byte("c\x00\x00\x00")},
		{"chap sub-frame overrun", "CHAP", append([]byte("c\x00"+string(make([]byte, 16))), []byte("TIT2\x00\x00\x00\x09\x00\x00\x00a")...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(types.RawFrame{ID: tt.id, Payload: tt.payload})
			var pe *types.PayloadError
			if !errors.As(err, &pe) {
				t.Fatalf("Decode() error = %v, want *PayloadError", err)
			}
			if pe.FrameID != tt.id {
				t.Errorf("FrameID = %q, want %q", pe.FrameID, tt.id)
			}
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	latin := NewTextFrame("TIT2", "日本")
	latin.Encoding = text.ISO88591

	_, err := Encode(latin)
	var pe *types.PayloadError
	if !errors.As(err, &pe) {
		t.Errorf("Latin-1 failure: error = %v, want *PayloadError", err)
	}

	_, err = Encode(NewCommentFrame("en", "", "x"))
	if !errors.As(err, &pe) {
		t.Errorf("short language: error = %v, want *PayloadError", err)
	}

	_, err = Encode(NewTextFrame("TI", "x"))
	var ae *types.ArgumentError
	if !errors.As(err, &ae) {
		t.Errorf("bad id: error = %v, want *ArgumentError", err)
	}

	_, err = Encode(nil)
	if !errors.As(err, &ae) {
		t.Errorf("nil frame: error = %v, want *ArgumentError", err)
	}
}

type foreignFrame struct {
	types.FrameDescriptor
}

func (*foreignFrame) Type() types.FrameType { return types.FrameUnknown }

func TestEncode_UnsupportedVariant(t *testing.T) {
	_, err := Encode(&foreignFrame{types.FrameDescriptor{ID: "XXXX"}})
	var ue *types.UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("error = %v, want *UnsupportedError", err)
	}
}

func TestNewTextFrame_Encoding(t *testing.T) {
	if f := NewTextFrame("TIT2", "café"); f.Encoding != text.ISO88591 {
		t.Errorf("café encoding = %v, want ISO-8859-1", f.Encoding)
	}
	if f := NewTextFrame("TIT2", "日本"); f.Encoding != text.UTF16 {
		t.Errorf("日本 encoding = %v, want UTF-16", f.Encoding)
	}
}

func TestTypedRoundTrip(t *testing.T) {
	frames := []types.Frame{
		NewTextFrame("TIT2", "Title", "Alt"),
		NewTextFrame("TPE1", "Sigur Rós 日本"),
		NewUserDefinedTextFrame("MusicBrainz Album Id", "1234"),
		NewURLFrame("WOAR", "http://artist.example"),
		NewUserDefinedURLFrame("shop", "http://shop.example"),
		NewCommentFrame("eng", "", "great record"),
		NewPrivateFrame("com.example", []byte{0, 1}),
		NewMusicCDIdentifierFrame([]byte{1, 2, 3, 4}),
		NewAudioEncryptionFrame("owner", 1, 2, []byte{9}),
		NewPictureFrame("image/jpeg", types.PictureBackCover, "back", []byte{0xFF, 0xD8}),
		NewUnknownFrame("ZZZZ", 0, []byte{1, 2}),
	}
	for _, f := range frames {
		t.Run(f.Descriptor().ID, func(t *testing.T) {
			raw, err := Encode(f)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			got, err := Decode(raw)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(got, f) {
				t.Errorf("round trip mismatch:\n got %#v\nwant %#v", got, f)
			}
		})
	}
}
