package frames

import (
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/simonhull/id3tag/internal/types"
)

// DecodeOptions controls how a raw tag is turned into a typed tag.
type DecodeOptions struct {
	// Lenient keeps frames that fail to decode as UnknownFrame and records
	// a Warning instead of failing the whole tag.
	Lenient bool
}

// DecodeTag dispatches every raw frame of info and copies its header
// fields into a typed Tag. Frame order is preserved.
//
// The stored CRC is not copied: it covers the frames as read, so the
// typed tag only records that one was present and the writer computes a
// fresh one.
func DecodeTag(info *types.TagInfo, opts DecodeOptions) (*types.Tag, error) {
	if info == nil {
		return nil, &types.ArgumentError{Name: "tag info", Reason: "nil"}
	}

	tag := types.NewTag(info.MajorVersion, info.Revision)
	tag.Unsynchronisation = info.Unsynchronisation
	tag.ExtendedHeader = info.ExtendedHeaderPresent
	tag.Experimental = info.Experimental
	tag.PaddingSize = info.Padding
	if eh := info.ExtendedHeader; eh != nil {
		tag.PaddingSize = eh.PaddingSize
		tag.CRCPresent = eh.CRCPresent
	}

	tag.Frames = make([]types.Frame, 0, len(info.Frames))
	for _, raw := range info.Frames {
		f, err := Decode(raw)
		if err != nil {
			if !opts.Lenient {
				return nil, err
			}
			log.WithFields(log.Fields{"frame": raw.ID, "error": err}).Warn("keeping undecodable frame as unknown")
			tag.Warnings = append(tag.Warnings, types.Warning{
				Stage:   "frame",
				FrameID: raw.ID,
				Message: err.Error(),
			})
			f = NewUnknownFrame(raw.ID, raw.Flags, slices.Clone(raw.Payload))
		}
		log.WithFields(log.Fields{"frame": raw.ID, "type": f.Type()}).Trace("decoded frame")
		tag.Frames = append(tag.Frames, f)
	}
	return tag, nil
}

// EncodeTag converts a typed Tag back into its raw form.
func EncodeTag(tag *types.Tag) (*types.TagInfo, error) {
	if tag == nil {
		return nil, &types.ArgumentError{Name: "tag", Reason: "nil"}
	}

	info := &types.TagInfo{
		MajorVersion:          tag.MajorVersion,
		Revision:              tag.Revision,
		Unsynchronisation:     tag.Unsynchronisation,
		ExtendedHeaderPresent: tag.ExtendedHeader,
		Experimental:          tag.Experimental,
		Padding:               tag.PaddingSize,
		Frames:                make([]types.RawFrame, 0, len(tag.Frames)),
	}
	if tag.ExtendedHeader {
		info.ExtendedHeader = &types.ExtendedHeader{
			PaddingSize: tag.PaddingSize,
			CRCPresent:  tag.CRCPresent,
			CRC:         slices.Clone(tag.CRC),
		}
	}

	for _, f := range tag.Frames {
		raw, err := Encode(f)
		if err != nil {
			return nil, err
		}
		info.Frames = append(info.Frames, raw)
	}
	return info, nil
}
