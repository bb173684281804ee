package frames

import (
	"cmp"
	"slices"
	"time"

	"github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/text"
	"github.com/simonhull/id3tag/internal/types"
)

// OffsetUnset marks a CHAP byte offset as not used.
const OffsetUnset uint32 = 0xFFFFFFFF

// ChapterFrame is a CHAP frame. Embedded frames are decoded through the
// same dispatcher as top-level frames.
//
// Layout:
//
//	[null-terminated]     Element ID (ISO-8859-1)
//	[4 bytes]             Start time (ms)
//	[4 bytes]             End time (ms)
//	[4 bytes]             Start offset (bytes, 0xFFFFFFFF if unset)
//	[4 bytes]             End offset (bytes, 0xFFFFFFFF if unset)
//	[remaining]           Embedded frames
type ChapterFrame struct {
	ElementID string
	SubFrames []types.Frame
	types.FrameDescriptor
	StartTime   uint32
	EndTime     uint32
	StartOffset uint32
	EndOffset   uint32
}

// NewChapterFrame creates a CHAP frame with unset byte offsets and, if
// title is not empty, a TIT2 sub-frame.
func NewChapterFrame(elementID string, start, end time.Duration, title string) *ChapterFrame {
	f := &ChapterFrame{
		FrameDescriptor: types.FrameDescriptor{ID: "CHAP"},
		ElementID:       elementID,
		StartTime:       uint32(start.Milliseconds()),
		EndTime:         uint32(end.Milliseconds()),
		StartOffset:     OffsetUnset,
		EndOffset:       OffsetUnset,
	}
	if title != "" {
		f.SubFrames = append(f.SubFrames, NewTextFrame("TIT2", title))
	}
	return f
}

func (*ChapterFrame) Type() types.FrameType { return types.FrameChapter }

// Title returns the first value of the TIT2 sub-frame, or "".
func (f *ChapterFrame) Title() string {
	for _, sub := range f.SubFrames {
		if tf, ok := sub.(*TextFrame); ok && tf.ID == "TIT2" {
			return tf.Text()
		}
	}
	return ""
}

func decodeChapter(raw types.RawFrame) (types.Frame, error) {
	elementID, rest, err := decodeTerminated(raw.ID, "element id", raw.Payload, text.ISO88591)
	if err != nil {
		return nil, err
	}

	cr := payloadReader(raw.ID, rest)
	f := &ChapterFrame{
		FrameDescriptor: descriptor(raw),
		ElementID:       elementID,
		StartTime:       binary.ReadChained[uint32](cr, "start time"),
		EndTime:         binary.ReadChained[uint32](cr, "end time"),
		StartOffset:     binary.ReadChained[uint32](cr, "start offset"),
		EndOffset:       binary.ReadChained[uint32](cr, "end offset"),
	}
	if err := cr.Error(); err != nil {
		return nil, payloadError(raw.ID, "read chapter times", errTooShort)
	}

	subs, err := decodeSubFrames(raw.ID, rest[16:])
	if err != nil {
		return nil, err
	}
	f.SubFrames = subs
	return f, nil
}

// decodeSubFrames walks embedded frames using the top-level frame header
// layout, stopping at padding or when less than a frame header remains.
func decodeSubFrames(parent string, data []byte) ([]types.Frame, error) {
	var subs []types.Frame
	cr := payloadReader(parent, data)
	for cr.Remaining() >= types.FrameHeaderLen {
		id := cr.String(4, "sub-frame id")
		if types.IsPaddingID(id) {
			break
		}
		size := binary.ReadChained[uint32](cr, "sub-frame size")
		flags := binary.ReadChained[uint16](cr, "sub-frame flags")
		payload := cr.Bytes(int64(size), "sub-frame "+id+" payload")
		if cr.Error() != nil {
			return nil, payloadError(parent, "sub-frame "+id+" overruns chapter", errTooShort)
		}

		sub, err := Decode(types.RawFrame{ID: id, Flags: flags, Payload: payload})
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func encodeChapter(f *ChapterFrame) ([]byte, error) {
	buf, err := encodeString(f.ID, "element id", f.ElementID, text.ISO88591, true)
	if err != nil {
		return nil, err
	}
	buf = binary.Append(buf, f.StartTime)
	buf = binary.Append(buf, f.EndTime)
	buf = binary.Append(buf, f.StartOffset)
	buf = binary.Append(buf, f.EndOffset)

	for _, sub := range f.SubFrames {
		raw, err := Encode(sub)
		if err != nil {
			return nil, err
		}
		buf = raw.AppendTo(buf)
	}
	return buf, nil
}

// Chapters returns a flattened chapter list from the CHAP frames of tag,
// ordered by start time. A chapter without a TIT2 sub-frame is titled
// with its element ID.
func Chapters(tag *types.Tag) []types.Chapter {
	var chapters []types.Chapter
	for _, fr := range tag.Frames {
		ch, ok := fr.(*ChapterFrame)
		if !ok {
			continue
		}
		title := ch.Title()
		if title == "" {
			title = ch.ElementID
		}
		chapters = append(chapters, types.Chapter{
			ElementID:   ch.ElementID,
			Title:       title,
			StartTime:   time.Duration(ch.StartTime) * time.Millisecond,
			EndTime:     time.Duration(ch.EndTime) * time.Millisecond,
			StartOffset: offset(ch.StartOffset),
			EndOffset:   offset(ch.EndOffset),
		})
	}

	slices.SortStableFunc(chapters, func(a, b types.Chapter) int {
		return cmp.Compare(a.StartTime, b.StartTime)
	})
	for i := range chapters {
		chapters[i].Index = i + 1
	}
	return chapters
}

func offset(v uint32) int64 {
	if v == OffsetUnset {
		return -1
	}
	return int64(v)
}
