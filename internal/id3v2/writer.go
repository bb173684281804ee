package id3v2

import (
	"bytes"
	"errors"
	"hash/crc32"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/types"
)

// Marshal serializes info into a complete frame-tag: outer header,
// extended header, frames in order, then info.Padding zero bytes.
//
// The outer size covers everything after the 10-byte header and is
// measured after unsynchronisation when that flag is set. When a CRC is
// flagged but info carries none, a CRC-32 of the frame bytes is computed.
//
// Unsynchronisation escapes 0xFF only where it starts a byte pair, so a
// 0xFF in the second byte of a pair followed by a byte with the high bit
// set is left as is. Output with the flag set is therefore not
// guaranteed to be free of false sync patterns.
func Marshal(info *types.TagInfo) ([]byte, error) {
	if info == nil {
		return nil, &types.ArgumentError{Name: "tag info", Reason: "nil"}
	}

	var frameBytes []byte
	for _, raw := range info.Frames {
		if err := types.ValidateFrameID(raw.ID); err != nil {
			return nil, err
		}
		frameBytes = raw.AppendTo(frameBytes)
	}

	var body bytes.Buffer
	bw := binary.NewSafeWriter(&body)
	var err error
	if info.ExtendedHeaderPresent {
		err = writeExtendedHeader(bw, info, frameBytes)
	}
	err = errors.Join(err, bw.WriteBytes(frameBytes), bw.WriteZeros(int(info.Padding)))
	if err != nil {
		return nil, &types.IOError{Op: "encode ID3v2 tag body", Err: err}
	}

	region := body.Bytes()
	if info.Unsynchronisation {
		region = binary.EncodeUnsync(region)
	}

	size, err := binary.EncodeSynchsafe(uint32(min(len(region), binary.MaxSynchsafe+1)))
	if err != nil {
		return nil, &types.ArgumentError{Name: "tag size", Reason: err.Error()}
	}

	var out bytes.Buffer
	out.Grow(types.V2HeaderLen + len(region))
	hw := binary.NewSafeWriter(&out)
	err = errors.Join(
		hw.WriteString(types.V2Marker),
		binary.Write(hw, info.MajorVersion),
		binary.Write(hw, info.Revision),
		binary.Write(hw, info.FlagByte()),
		hw.WriteBytes(size),
		hw.WriteBytes(region),
	)
	if err != nil {
		return nil, &types.IOError{Op: "encode ID3v2 header", Err: err}
	}
	return out.Bytes(), nil
}

// writeExtendedHeader writes the plain size (6, or 10 with a CRC), the
// two flag bytes, the padding size and the optional CRC.
func writeExtendedHeader(sw *binary.SafeWriter, info *types.TagInfo, frameBytes []byte) error {
	eh := info.ExtendedHeader
	if eh == nil {
		eh = &types.ExtendedHeader{PaddingSize: info.Padding}
	}

	var flags uint16
	if eh.CRCPresent {
		flags = 0x8000
	}
	err := errors.Join(
		binary.Write(sw, uint32(eh.Len()-4)),
		binary.Write(sw, flags),
		binary.Write(sw, eh.PaddingSize),
	)
	if err != nil || !eh.CRCPresent {
		return err
	}
	if len(eh.CRC) == 4 {
		return sw.WriteBytes(eh.CRC)
	}
	return binary.Write(sw, crc32.ChecksumIEEE(frameBytes))
}

// Write writes the frame-tag built from info to w, followed by the audio
// of original with any frame-tag at its start skipped. A trailing ID3v1
// tag in original is kept.
func Write(w io.Writer, info *types.TagInfo, original io.ReaderAt, originalSize int64, path string) error {
	if w == nil {
		return &types.ArgumentError{Name: "writer", Reason: "nil"}
	}
	if original == nil {
		return &types.ArgumentError{Name: "original", Reason: "nil"}
	}

	tag, err := Marshal(info)
	if err != nil {
		return err
	}

	start, err := TagSize(original, originalSize)
	if err != nil {
		return &types.IOError{Path: path, Op: "locate audio", Err: err}
	}
	log.WithFields(log.Fields{
		"path":        path,
		"tag_bytes":   len(tag),
		"frames":      len(info.Frames),
		"audio_start": start,
	}).Debug("writing ID3v2 tag")

	sw := binary.NewSafeWriter(w)
	if err := sw.WriteBytes(tag); err != nil {
		return &types.IOError{Path: path, Op: "write ID3v2 tag", Err: err}
	}
	if _, err := io.Copy(sw, io.NewSectionReader(original, start, originalSize-start)); err != nil {
		return &types.IOError{Path: path, Op: "copy audio", Err: err}
	}
	log.WithFields(log.Fields{"path": path, "bytes": sw.Offset()}).Trace("ID3v2 write complete")
	return nil
}
