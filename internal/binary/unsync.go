package binary

// DecodeUnsync removes unsynchronisation bytes from src.
//
// The buffer is consumed two bytes at a time: a (0xFF, 0x00) pair yields
// only the 0xFF, any other pair is copied unchanged. A trailing unpaired
// byte is copied as is.
func DecodeUnsync(src []byte) []byte {
	dst := make([]byte, 0, len(src))
	i := 0
	for ; i+1 < len(src); i += 2 {
		if src[i] == 0xFF && src[i+1] == 0x00 {
			dst = append(dst, 0xFF)
			continue
		}
		dst = append(dst, src[i], src[i+1])
	}
	if i < len(src) {
		dst = append(dst, src[i])
	}
	return dst
}

// EncodeUnsync is the inverse of DecodeUnsync.
//
// A 0x00 is inserted after every 0xFF that starts a pair and is followed by
// 0x00, by a byte with its high bit set, or by the end of the buffer. The
// output is emitted in pairs so DecodeUnsync(EncodeUnsync(x)) == x holds for
// any x. A 0xFF that lands on the second byte of a pair cannot be escaped
// under the pairwise decoding rule and is copied unchanged.
func EncodeUnsync(src []byte) []byte {
	dst := make([]byte, 0, len(src)+len(src)/16+2)
	for i := 0; i < len(src); {
		if src[i] == 0xFF && (i+1 == len(src) || needsStuffing(src[i+1])) {
			dst = append(dst, 0xFF, 0x00)
			i++
			continue
		}
		if i+1 < len(src) {
			dst = append(dst, src[i], src[i+1])
			i += 2
			continue
		}
		dst = append(dst, src[i])
		i++
	}
	return dst
}

func needsStuffing(next byte) bool {
	return next == 0x00 || next&0x80 != 0
}
