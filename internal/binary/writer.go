package binary

import (
	"encoding/binary"
	"io"
)

// SafeWriter wraps io.Writer with position tracking.
type SafeWriter struct {
	w      io.Writer
	offset int64
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	return err
}

// Write implements io.Writer so the audio copy is counted in Offset.
func (sw *SafeWriter) Write(p []byte) (int, error) {
	if err := sw.WriteBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString writes a string as bytes to the underlying writer.
func (sw *SafeWriter) WriteString(s string) error {
	return sw.WriteBytes([]byte(s))
}

// WriteZeros writes n zero bytes.
func (sw *SafeWriter) WriteZeros(n int) error {
	if n <= 0 {
		return nil
	}
	return sw.WriteBytes(make([]byte, n))
}

// Write writes a value of type T in big-endian byte order.
func Write[T Unsigned](sw *SafeWriter, val T) error {
	return sw.WriteBytes(Append(nil, val))
}

// Append appends val to b in big-endian byte order.
func Append[T Unsigned](b []byte, val T) []byte {
	switch sizeOf[T]() {
	case 1:
		return append(b, byte(val))
	case 2:
		return binary.BigEndian.AppendUint16(b, uint16(val))
	case 4:
		return binary.BigEndian.AppendUint32(b, uint32(val))
	default:
		return binary.BigEndian.AppendUint64(b, uint64(val))
	}
}
