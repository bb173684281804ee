package binary

import (
	"encoding/binary"
	"fmt"
)

// MaxSynchsafe is the largest value a 4-byte synchsafe integer can hold.
const MaxSynchsafe = 1<<28 - 1

// DecodeSynchsafe decodes a synchsafe integer (7 bits per byte).
// byte[0] holds the most significant group; bit 7 of every byte is ignored.
func DecodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// EncodeSynchsafe encodes n as a 4-byte synchsafe integer.
// Values that need more than 28 bits are rejected.
func EncodeSynchsafe(n uint32) ([]byte, error) {
	if n > MaxSynchsafe {
		return nil, fmt.Errorf("synchsafe size %d exceeds maximum %d", n, MaxSynchsafe)
	}
	return []byte{
		byte(n>>21) & 0x7F,
		byte(n>>14) & 0x7F,
		byte(n>>7) & 0x7F,
		byte(n) & 0x7F,
	}, nil
}

// DecodePlain decodes a 4-byte big-endian size using all 8 bits of every byte.
func DecodePlain(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// EncodePlain encodes n as a 4-byte big-endian size.
func EncodePlain(n uint32) []byte {
	return binary.BigEndian.AppendUint32(make([]byte, 0, 4), n)
}
