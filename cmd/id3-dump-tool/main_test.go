package main

import (
	"bytes"
	"slices"
	"testing"

	"github.com/simonhull/id3tag"
)

func TestFrameOffsets(t *testing.T) {
	tests := []struct {
		name string
		eh   *id3tag.ExtendedHeader
		want []int64
	}{
		{"plain", nil, []int64{10, 25}},
		{"extended header", &id3tag.ExtendedHeader{}, []int64{20, 35}},
		{"extended header with crc", &id3tag.ExtendedHeader{CRCPresent: true}, []int64{24, 39}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &id3tag.TagInfo{
				MajorVersion:          3,
				ExtendedHeaderPresent: tt.eh != nil,
				ExtendedHeader:        tt.eh,
				Frames: []id3tag.RawFrame{
					{ID: "ZZZA", Payload: []byte("\x00hello")},
					{ID: "ZZZB", Payload: []byte("\x00me")},
				},
			}
			got := frameOffsets(info)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("frameOffsets() = %v, want %v", got, tt.want)
			}

			// Each offset must point at the frame's identifier in the encoded tag.
			tag, err := id3tag.Decode(info)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			var buf bytes.Buffer
			if err := id3tag.WriteV2(&buf, tag, bytes.NewReader(nil), 0); err != nil {
				t.Fatalf("WriteV2() error = %v", err)
			}
			data := buf.Bytes()
			for i, off := range got {
				if id := string(data[off : off+4]); id != info.Frames[i].ID {
					t.Errorf("offset %d points at %q, want %s", off, id, info.Frames[i].ID)
				}
			}
		})
	}
}
