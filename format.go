package id3tag

import "github.com/simonhull/id3tag/internal/types"

// Format identifies a tag format.
type Format = types.Format

// Tag formats.
const (
	FormatID3v1 = types.FormatID3v1
	FormatID3v2 = types.FormatID3v2
)

// FileState records which tag formats a stream carries.
type FileState = types.FileState

// Fixed sizes of the two formats.
const (
	V1Size         = types.V1Size
	V2HeaderLen    = types.V2HeaderLen
	FrameHeaderLen = types.FrameHeaderLen
)
