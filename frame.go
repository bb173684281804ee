package id3tag

import (
	"time"

	"github.com/simonhull/id3tag/internal/frames"
	"github.com/simonhull/id3tag/internal/text"
	"github.com/simonhull/id3tag/internal/types"
)

// Frame is a typed ID3v2 frame.
//
// The concrete type is one of the frame types below. Identifiers with no
// dedicated type decode to *UnknownFrame, which re-encodes byte for byte.
type Frame = types.Frame

// FrameDescriptor holds the identifier and flags common to all frames.
type FrameDescriptor = types.FrameDescriptor

// FrameType identifies the concrete frame type.
type FrameType = types.FrameType

// Frame types.
const (
	FrameUnknown            = types.FrameUnknown
	FrameText               = types.FrameText
	FrameUserDefinedText    = types.FrameUserDefinedText
	FrameURLLink            = types.FrameURLLink
	FrameUserDefinedURLLink = types.FrameUserDefinedURLLink
	FrameComment            = types.FrameComment
	FramePrivate            = types.FramePrivate
	FrameMusicCDIdentifier  = types.FrameMusicCDIdentifier
	FrameAudioEncryption    = types.FrameAudioEncryption
	FramePicture            = types.FramePicture
	FrameChapter            = types.FrameChapter
)

// Frame flags (ID3v2.3 layout).
const (
	FlagTagAlterPreservation  = types.FlagTagAlterPreservation
	FlagFileAlterPreservation = types.FlagFileAlterPreservation
	FlagReadOnly              = types.FlagReadOnly
	FlagCompression           = types.FlagCompression
	FlagEncryption            = types.FlagEncryption
	FlagGroupingIdentity      = types.FlagGroupingIdentity
)

// Encoding is the text encoding selector of a textual frame.
type Encoding = text.Encoding

// Text encodings.
const (
	EncodingISO88591 = text.ISO88591
	EncodingUTF16    = text.UTF16
	EncodingUTF16BE  = text.UTF16BE
	EncodingUTF8     = text.UTF8
)

// Concrete frame types.
type (
	TextFrame              = frames.TextFrame
	UserDefinedTextFrame   = frames.UserDefinedTextFrame
	URLFrame               = frames.URLFrame
	UserDefinedURLFrame    = frames.UserDefinedURLFrame
	CommentFrame           = frames.CommentFrame
	PrivateFrame           = frames.PrivateFrame
	MusicCDIdentifierFrame = frames.MusicCDIdentifierFrame
	AudioEncryptionFrame   = frames.AudioEncryptionFrame
	PictureFrame           = frames.PictureFrame
	ChapterFrame           = frames.ChapterFrame
	UnknownFrame           = frames.UnknownFrame
)

// NewTextFrame creates a T*** frame holding one or more values.
func NewTextFrame(id string, values ...string) *TextFrame {
	return frames.NewTextFrame(id, values...)
}

// NewUserDefinedTextFrame creates a TXXX frame.
func NewUserDefinedTextFrame(description, value string) *UserDefinedTextFrame {
	return frames.NewUserDefinedTextFrame(description, value)
}

// NewURLFrame creates a W*** frame.
func NewURLFrame(id, url string) *URLFrame {
	return frames.NewURLFrame(id, url)
}

// NewUserDefinedURLFrame creates a WXXX frame.
func NewUserDefinedURLFrame(description, url string) *UserDefinedURLFrame {
	return frames.NewUserDefinedURLFrame(description, url)
}

// NewCommentFrame creates a COMM frame.
func NewCommentFrame(language, description, body string) *CommentFrame {
	return frames.NewCommentFrame(language, description, body)
}

// NewPrivateFrame creates a PRIV frame.
func NewPrivateFrame(owner string, data []byte) *PrivateFrame {
	return frames.NewPrivateFrame(owner, data)
}

// NewMusicCDIdentifierFrame creates an MCDI frame.
func NewMusicCDIdentifierFrame(toc []byte) *MusicCDIdentifierFrame {
	return frames.NewMusicCDIdentifierFrame(toc)
}

// NewAudioEncryptionFrame creates an AENC frame.
func NewAudioEncryptionFrame(owner string, previewStart, previewLength uint16, info []byte) *AudioEncryptionFrame {
	return frames.NewAudioEncryptionFrame(owner, previewStart, previewLength, info)
}

// NewPictureFrame creates an APIC frame.
func NewPictureFrame(mime string, pictureType PictureType, description string, data []byte) *PictureFrame {
	return frames.NewPictureFrame(mime, pictureType, description, data)
}

// NewChapterFrame creates a CHAP frame with an optional TIT2 title.
func NewChapterFrame(elementID string, start, end time.Duration, title string) *ChapterFrame {
	return frames.NewChapterFrame(elementID, start, end, title)
}

// NewUnknownFrame creates a frame whose payload is written as given.
func NewUnknownFrame(id string, flags uint16, payload []byte) *UnknownFrame {
	return frames.NewUnknownFrame(id, flags, payload)
}
