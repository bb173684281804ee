// Package text converts frame payload strings to and from the four ID3v2
// text encodings.
package text

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the one-byte text encoding selector at the start of a
// textual frame payload.
type Encoding byte

const (
	ISO88591 Encoding = 0 // ISO-8859-1
	UTF16    Encoding = 1 // UTF-16 with BOM
	UTF16BE  Encoding = 2 // UTF-16BE
	UTF8     Encoding = 3 // UTF-8
)

// Valid reports whether e is one of the four defined selectors.
func (e Encoding) Valid() bool {
	return e <= UTF8
}

func (e Encoding) String() string {
	switch e {
	case ISO88591:
		return "ISO-8859-1"
	case UTF16:
		return "UTF-16"
	case UTF16BE:
		return "UTF-16BE"
	case UTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("Encoding(%d)", byte(e))
	}
}

// TerminatorSize returns the width of the string terminator: 2 for the
// UTF-16 encodings, 1 otherwise.
func (e Encoding) TerminatorSize() int {
	if e == UTF16 || e == UTF16BE {
		return 2
	}
	return 1
}

// Terminator returns the terminator bytes for e.
func (e Encoding) Terminator() []byte {
	return make([]byte, e.TerminatorSize())
}

func (e Encoding) codec() encoding.Encoding {
	switch e {
	case UTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case UTF8:
		return encoding.Nop
	default:
		return charmap.ISO8859_1
	}
}

// Decode converts data in encoding e to a Go string.
//
// A trailing odd byte of UTF-16 data is ignored. UTF-8 data is returned
// unchanged so that invalid sequences survive a round trip.
func Decode(data []byte, e Encoding) (string, error) {
	if !e.Valid() {
		return "", fmt.Errorf("unknown text encoding %d", byte(e))
	}
	if len(data) == 0 {
		return "", nil
	}
	switch e {
	case UTF8:
		return string(data), nil
	case UTF16, UTF16BE:
		if len(data)%2 != 0 {
			data = data[:len(data)-1]
		}
	}
	out, err := e.codec().NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", e, err)
	}
	return string(out), nil
}

// Encode converts s to encoding e without a terminator.
//
// Characters that ISO-8859-1 cannot represent are an error. UTF-16 output
// always starts with a little-endian BOM, even for an empty string.
func Encode(s string, e Encoding) ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("unknown text encoding %d", byte(e))
	}
	switch e {
	case UTF8:
		return []byte(s), nil
	case UTF16:
		if s == "" {
			return []byte{0xFF, 0xFE}, nil
		}
	}
	out, err := e.codec().NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode %q as %s: %w", s, e, err)
	}
	return out, nil
}

// EncodeLatin1Lossy encodes s as ISO-8859-1, replacing characters outside
// the charset with the substitute byte 0x1A.
func EncodeLatin1Lossy(s string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	out, err := enc.Bytes([]byte(strings.ToValidUTF8(s, "\x1a")))
	if err != nil {
		return nil
	}
	return out
}

// DecodeLatin1 decodes ISO-8859-1 bytes. Every byte maps to one rune.
func DecodeLatin1(data []byte) string {
	s, _ := Decode(data, ISO88591)
	return s
}

// IndexTerminator returns the offset of the first terminator for e, or -1.
//
// For the UTF-16 encodings only terminators aligned on a code unit
// boundary count.
func IndexTerminator(data []byte, e Encoding) int {
	if e.TerminatorSize() == 1 {
		return bytes.IndexByte(data, 0)
	}
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			return i
		}
	}
	return -1
}

// Cut splits data at the first terminator for e, returning the bytes
// before it and after it. found is false when no terminator is present,
// in which case before is all of data.
func Cut(data []byte, e Encoding) (before, after []byte, found bool) {
	i := IndexTerminator(data, e)
	if i < 0 {
		return data, nil, false
	}
	return data[:i], data[i+e.TerminatorSize():], true
}

// DecodeTerminated decodes a terminated string at the start of data and
// returns the remaining bytes.
func DecodeTerminated(data []byte, e Encoding) (string, []byte, error) {
	field, rest, found := Cut(data, e)
	if !found {
		return "", nil, fmt.Errorf("missing %s string terminator", e)
	}
	s, err := Decode(field, e)
	if err != nil {
		return "", nil, err
	}
	return s, rest, nil
}

// DecodeString decodes a single value, stopping at the first terminator
// if there is one.
func DecodeString(data []byte, e Encoding) (string, error) {
	field, _, _ := Cut(data, e)
	return Decode(field, e)
}

// EncodeTerminated encodes s followed by the terminator for e.
func EncodeTerminated(s string, e Encoding) ([]byte, error) {
	b, err := Encode(s, e)
	if err != nil {
		return nil, err
	}
	return append(b, e.Terminator()...), nil
}

// DecodeList splits data on terminators and decodes each value.
//
// A single trailing terminator does not produce an empty final value.
func DecodeList(data []byte, e Encoding) ([]string, error) {
	var values []string
	for {
		field, rest, found := Cut(data, e)
		s, err := Decode(field, e)
		if err != nil {
			return nil, err
		}
		if !found {
			if len(field) > 0 || len(values) == 0 {
				values = append(values, s)
			}
			return values, nil
		}
		values = append(values, s)
		data = rest
	}
}

// EncodeList encodes values separated by terminators, without a trailing
// terminator.
func EncodeList(values []string, e Encoding) ([]byte, error) {
	var buf []byte
	for i, v := range values {
		if i > 0 {
			buf = append(buf, e.Terminator()...)
		}
		b, err := Encode(v, e)
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
	}
	return buf, nil
}
