// Package frames implements the typed ID3v2 frame variants.
//
// Each variant has a decode function (raw to typed) and an encode
// function (typed to raw). Decoders are registered with the registry in
// init; Encode selects the encoder with a type switch.
package frames

import (
	"errors"
	"fmt"

	"github.com/simonhull/id3tag/internal/registry"
	"github.com/simonhull/id3tag/internal/text"
	"github.com/simonhull/id3tag/internal/types"
)

var (
	errEmptyPayload   = errors.New("empty payload")
	errBadEncoding    = errors.New("invalid text encoding byte")
	errMissingTerm    = errors.New("missing string terminator")
	errTooShort       = errors.New("payload too short")
	errLanguageLength = errors.New("language must be 3 characters")
	errUnknownVariant = errors.New("unknown frame implementation")
	errNilFrame       = errors.New("nil frame")
)

func init() {
	registry.RegisterFamily('T', decodeText)
	registry.Register("TXXX", decodeUserDefinedText)
	registry.RegisterFamily('W', decodeURL)
	registry.Register("WXXX", decodeUserDefinedURL)
	registry.Register("COMM", decodeComment)
	registry.Register("PRIV", decodePrivate)
	registry.Register("MCDI", decodeMusicCDIdentifier)
	registry.Register("AENC", decodeAudioEncryption)
	registry.Register("APIC", decodePicture)
	registry.Register("CHAP", decodeChapter)
	registry.RegisterFallback(decodeUnknown)
}

// Decode dispatches raw to the variant selected by its identifier.
func Decode(raw types.RawFrame) (types.Frame, error) {
	return registry.Dispatch(raw)
}

// Encode converts a typed frame back to its raw form.
func Encode(f types.Frame) (types.RawFrame, error) {
	if f == nil {
		return types.RawFrame{}, &types.ArgumentError{Name: "frame", Reason: errNilFrame.Error()}
	}

	var (
		payload []byte
		err     error
	)
	switch v := f.(type) {
	case *TextFrame:
		payload, err = encodeText(v)
	case *UserDefinedTextFrame:
		payload, err = encodeUserDefinedText(v)
	case *URLFrame:
		payload, err = encodeURL(v)
	case *UserDefinedURLFrame:
		payload, err = encodeUserDefinedURL(v)
	case *CommentFrame:
		payload, err = encodeComment(v)
	case *PrivateFrame:
		payload, err = encodePrivate(v)
	case *MusicCDIdentifierFrame:
		payload = v.TOC
	case *AudioEncryptionFrame:
		payload, err = encodeAudioEncryption(v)
	case *PictureFrame:
		payload, err = encodePicture(v)
	case *ChapterFrame:
		payload, err = encodeChapter(v)
	case *UnknownFrame:
		payload = v.Payload
	default:
		return types.RawFrame{}, &types.UnsupportedError{
			Op:     "encode frame " + f.Descriptor().ID,
			Reason: fmt.Sprintf("%T: %v", f, errUnknownVariant),
		}
	}
	if err != nil {
		return types.RawFrame{}, err
	}

	d := f.Descriptor()
	return types.NewRawFrame(d.ID, d.Flags, payload)
}

func descriptor(raw types.RawFrame) types.FrameDescriptor {
	return types.FrameDescriptor{ID: raw.ID, Flags: raw.Flags}
}

func payloadError(id, reason string, err error) error {
	return &types.PayloadError{FrameID: id, Reason: reason, Err: err}
}

// readEncoding consumes the leading encoding selector byte.
func readEncoding(raw types.RawFrame) (text.Encoding, []byte, error) {
	if len(raw.Payload) == 0 {
		return 0, nil, payloadError(raw.ID, "read encoding", errEmptyPayload)
	}
	enc := text.Encoding(raw.Payload[0])
	if !enc.Valid() {
		return 0, nil, payloadError(raw.ID, fmt.Sprintf("encoding %d", raw.Payload[0]), errBadEncoding)
	}
	return enc, raw.Payload[1:], nil
}

func checkEncoding(id string, enc text.Encoding) error {
	if !enc.Valid() {
		return payloadError(id, fmt.Sprintf("encoding %d", byte(enc)), errBadEncoding)
	}
	return nil
}

// encodeString wraps text encoding failures in a PayloadError.
func encodeString(id, field, s string, enc text.Encoding, terminated bool) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if terminated {
		b, err = text.EncodeTerminated(s, enc)
	} else {
		b, err = text.Encode(s, enc)
	}
	if err != nil {
		return nil, payloadError(id, "encode "+field, err)
	}
	return b, nil
}

// decodeTerminated wraps text decoding failures in a PayloadError.
func decodeTerminated(id, field string, data []byte, enc text.Encoding) (string, []byte, error) {
	s, rest, err := text.DecodeTerminated(data, enc)
	if err != nil {
		return "", nil, payloadError(id, "decode "+field, errMissingTerm)
	}
	return s, rest, nil
}

// PreferredEncoding returns ISO-8859-1 when every value can be
// represented in it and UTF-16 otherwise.
func PreferredEncoding(values ...string) text.Encoding {
	for _, v := range values {
		if _, err := text.Encode(v, text.ISO88591); err != nil {
			return text.UTF16
		}
	}
	return text.ISO88591
}
