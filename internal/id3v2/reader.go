// Package id3v2 reads and writes the ID3v2 frame-tag container: the
// outer header, the optional extended header, the frame stream and its
// padding, with unsynchronisation applied over the whole region.
package id3v2

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/types"
)

// Header is the fixed 10-byte outer header.
type Header struct {
	Version  byte   // Major version
	Revision byte   // Minor version
	Flags    byte   // Unsynchronisation, extended header, experimental
	Size     uint32 // Tag size (excluding header), synchsafe on the wire
}

// ReadOptions bounds what the reader accepts.
type ReadOptions struct {
	// MaxFrameSize rejects frames declaring a larger payload. Zero means
	// no limit beyond the tag region itself.
	MaxFrameSize uint32
}

// ReadHeader reads and validates the outer header at offset 0.
//
// A stream too short to hold the header is an IOError; a stream that
// does not start with "ID3" is a FormatError. Both carry path.
func ReadHeader(sr *binary.SafeReader, path string) (Header, error) {
	buf := make([]byte, types.V2HeaderLen)
	if err := sr.ReadAt(buf, 0, "ID3v2 header"); err != nil {
		return Header{}, &types.IOError{Path: path, Op: "read ID3v2 header", Err: err}
	}
	if !bytes.Equal(buf[:3], []byte(types.V2Marker)) {
		return Header{}, &types.FormatError{
			Path:   path,
			Format: types.FormatID3v2,
			Reason: fmt.Sprintf("marker %q", buf[:3]),
		}
	}
	return Header{
		Version:  buf[3],
		Revision: buf[4],
		Flags:    buf[5],
		Size:     binary.DecodeSynchsafe(buf[6:10]),
	}, nil
}

// Read parses the frame-tag at the start of r into its raw form.
//
// Frames are not interpreted; see the frames package for that.
func Read(r io.ReaderAt, size int64, path string, opts ReadOptions) (*types.TagInfo, error) {
	if r == nil {
		return nil, &types.ArgumentError{Name: "reader", Reason: "nil"}
	}
	// Errors below are wrapped in an IOError that carries the path.
	sr := binary.NewSafeReader(r, size, "")

	header, err := ReadHeader(sr, path)
	if err != nil {
		return nil, err
	}

	info := &types.TagInfo{MajorVersion: header.Version, Revision: header.Revision}
	info.SetFlagByte(header.Flags)

	log.WithFields(log.Fields{
		"path":     path,
		"version":  fmt.Sprintf("2.%d.%d", header.Version, header.Revision),
		"flags":    fmt.Sprintf("%#02x", header.Flags),
		"tag_size": header.Size,
	}).Debug("reading ID3v2 tag")

	if int64(header.Size) > sr.Size()-types.V2HeaderLen {
		return nil, &types.IOError{Path: path, Op: "read ID3v2 tag region", Err: &binary.OutOfBoundsError{
			What:   "ID3v2 tag region",
			Offset: types.V2HeaderLen,
			Length: int64(header.Size),
			Size:   sr.Size(),
		}}
	}
	region := make([]byte, header.Size)
	if err := sr.ReadAt(region, types.V2HeaderLen, "ID3v2 tag region"); err != nil {
		return nil, &types.IOError{Path: path, Op: "read ID3v2 tag region", Err: err}
	}
	if info.Unsynchronisation {
		region = binary.DecodeUnsync(region)
	}

	rr := binary.NewReader(binary.NewSafeReader(bytes.NewReader(region), int64(len(region)), ""), 0)

	if info.ExtendedHeaderPresent {
		eh, err := readExtendedHeader(rr)
		if err != nil {
			return nil, &types.IOError{Path: path, Op: "read extended header", Err: err}
		}
		info.ExtendedHeader = eh
		log.WithFields(log.Fields{
			"padding": eh.PaddingSize,
			"crc":     eh.CRCPresent,
		}).Debug("extended header")
	}

	if err := readFrames(rr, info, path, opts); err != nil {
		return nil, err
	}
	info.Padding = uint32(rr.Remaining())

	return info, nil
}

// readExtendedHeader reads the plain size prefix and that many bytes:
// two flag bytes, the padding size and, if flagged, a 4-byte CRC.
func readExtendedHeader(rr *binary.Reader) (*types.ExtendedHeader, error) {
	n, err := binary.ReadValue[uint32](rr, "extended header size")
	if err != nil {
		return nil, err
	}
	content, err := rr.ReadBytes(int64(n), "extended header")
	if err != nil {
		return nil, err
	}

	cr := binary.NewChainReader(binary.NewReader(
		binary.NewSafeReader(bytes.NewReader(content), int64(len(content)), ""), 0))
	flags := cr.Bytes(2, "extended header flags")
	eh := &types.ExtendedHeader{
		PaddingSize: binary.ReadChained[uint32](cr, "padding size"),
	}
	if cr.Error() == nil && flags[0]&0x80 != 0 {
		eh.CRCPresent = true
		eh.CRC = cr.Bytes(4, "CRC")
	}
	if err := cr.Error(); err != nil {
		return nil, err
	}
	return eh, nil
}

// readFrames loops while a full frame header fits in the region. An
// all-zero identifier marks the start of padding.
func readFrames(rr *binary.Reader, info *types.TagInfo, path string, opts ReadOptions) error {
	for rr.Remaining() >= types.FrameHeaderLen {
		cr := binary.NewChainReader(rr)
		id := cr.String(4, "frame id")
		size := binary.ReadChained[uint32](cr, "frame size")
		flags := binary.ReadChained[uint16](cr, "frame flags")
		if err := cr.Error(); err != nil {
			return &types.IOError{Path: path, Op: "read frame header", Err: err}
		}

		if types.IsPaddingID(id) {
			rr.Skip(-types.FrameHeaderLen)
			log.WithField("offset", rr.Offset()).Trace("padding reached")
			return nil
		}

		if opts.MaxFrameSize > 0 && size > opts.MaxFrameSize {
			return &types.PayloadError{
				FrameID: id,
				Reason:  fmt.Sprintf("declared size %d exceeds limit %d", size, opts.MaxFrameSize),
			}
		}

		payload, err := rr.ReadBytes(int64(size), "frame "+id+" payload")
		if err != nil {
			return &types.IOError{Path: path, Op: "read frame " + id, Err: err}
		}
		info.Frames = append(info.Frames, types.RawFrame{ID: id, Flags: flags, Payload: payload})
		log.WithFields(log.Fields{"frame": id, "size": size}).Trace("raw frame")
	}
	return nil
}

// TagSize returns the total length of the frame-tag at the start of r,
// header included, or 0 if r does not start with one. Streams shorter
// than a header have no tag.
func TagSize(r io.ReaderAt, size int64) (int64, error) {
	if size < types.V2HeaderLen {
		return 0, nil
	}
	header, err := ReadHeader(binary.NewSafeReader(r, size, ""), "")
	if err != nil {
		var fe *types.FormatError
		if errors.As(err, &fe) {
			return 0, nil
		}
		return 0, err
	}
	return min(types.V2HeaderLen+int64(header.Size), size), nil
}
