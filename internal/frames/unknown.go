package frames

import (
	"slices"

	"github.com/simonhull/id3tag/internal/types"
)

// UnknownFrame carries a frame no decoder claims. The identifier, flags
// and payload are kept byte for byte.
type UnknownFrame struct {
	Payload []byte
	types.FrameDescriptor
}

// NewUnknownFrame creates a frame with an uninterpreted payload.
func NewUnknownFrame(id string, flags uint16, payload []byte) *UnknownFrame {
	return &UnknownFrame{FrameDescriptor: types.FrameDescriptor{ID: id, Flags: flags}, Payload: payload}
}

func (*UnknownFrame) Type() types.FrameType { return types.FrameUnknown }

func decodeUnknown(raw types.RawFrame) (types.Frame, error) {
	return &UnknownFrame{FrameDescriptor: descriptor(raw), Payload: slices.Clone(raw.Payload)}, nil
}
