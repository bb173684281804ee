package id3tag_test

import (
	"bytes"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"

	"github.com/simonhull/id3tag"
)

// Tags written here must be readable by an independent decoder.

func TestInterop_V2(t *testing.T) {
	v2 := id3tag.NewTag(3, 0)
	v2.Add(id3tag.NewTextFrame("TIT2", "Interop Title"))
	v2.Add(id3tag.NewTextFrame("TPE1", "Interop Artist"))
	v2.Add(id3tag.NewTextFrame("TALB", "Interop Album"))
	data := writeV2(t, v2, audio(512))

	m, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("dhowden/tag could not read output: %v", err)
	}
	if m.Format() != tag.ID3v2_3 {
		t.Errorf("format = %s, want %s", m.Format(), tag.ID3v2_3)
	}
	if m.Title() != "Interop Title" {
		t.Errorf("title = %q", m.Title())
	}
	if m.Artist() != "Interop Artist" {
		t.Errorf("artist = %q", m.Artist())
	}
	if m.Album() != "Interop Album" {
		t.Errorf("album = %q", m.Album())
	}
}

func TestInterop_V1(t *testing.T) {
	v1 := id3tag.NewV1Tag()
	v1.Title = "Old School"
	v1.Artist = "Someone"
	v1.Year = "1997"
	v1.Genre = "Jazz"
	v1.Extended = true
	v1.Track = 4

	original := audio(512)
	var buf bytes.Buffer
	if err := id3tag.WriteV1(&buf, v1, bytes.NewReader(original), int64(len(original))); err != nil {
		t.Fatal(err)
	}

	m, err := tag.ReadID3v1Tags(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("dhowden/tag could not read output: %v", err)
	}
	if m.Title() != "Old School" || m.Artist() != "Someone" {
		t.Errorf("title/artist = %q/%q", m.Title(), m.Artist())
	}
	if m.Year() != 1997 {
		t.Errorf("year = %d, want 1997", m.Year())
	}
	if m.Genre() != "Jazz" {
		t.Errorf("genre = %q, want Jazz", m.Genre())
	}
	if track, _ := m.Track(); track != 4 {
		t.Errorf("track = %d, want 4", track)
	}
}

func TestInterop_V2_ReadByBogem(t *testing.T) {
	v2 := id3tag.NewTag(3, 0)
	v2.Add(id3tag.NewTextFrame("TIT2", "Bogem Title"))
	v2.Add(id3tag.NewTextFrame("TPE1", "Bogem Artist"))
	data := writeV2(t, v2, audio(512))

	bt, err := id3v2.ParseReader(bytes.NewReader(data), id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("bogem/id3v2 could not read output: %v", err)
	}
	if bt.Version() != 3 {
		t.Errorf("version = %d, want 3", bt.Version())
	}
	if bt.Title() != "Bogem Title" || bt.Artist() != "Bogem Artist" {
		t.Errorf("title/artist = %q/%q", bt.Title(), bt.Artist())
	}
}

func TestInterop_V2_WrittenByBogem(t *testing.T) {
	bt := id3v2.NewEmptyTag()
	bt.SetVersion(3)
	bt.SetDefaultEncoding(id3v2.EncodingISO)
	bt.SetTitle("From Bogem")
	bt.SetAlbum("Elsewhere")

	var buf bytes.Buffer
	if _, err := bt.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	buf.Write(audio(256))
	data := buf.Bytes()

	got, err := id3tag.ReadV2(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("ReadV2 failed on bogem/id3v2 output: %v", err)
	}
	if title, ok := got.First("TIT2").(*id3tag.TextFrame); !ok || title.Text() != "From Bogem" {
		t.Errorf("TIT2 = %v", got.First("TIT2"))
	}
	if album, ok := got.First("TALB").(*id3tag.TextFrame); !ok || album.Text() != "Elsewhere" {
		t.Errorf("TALB = %v", got.First("TALB"))
	}
}
