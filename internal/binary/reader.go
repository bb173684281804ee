// Package binary provides bounds-checked binary reading and writing primitives
// for tag data, including the two ID3 integer packings and the
// unsynchronisation escape codec.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"
)

// OutOfBoundsError is returned when a read would leave the readable region.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int64
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset < 0 || e.Offset >= e.Size {
		return prefix(e.Path) + fmt.Sprintf("offset %d out of bounds (size: %d) while reading %s",
			e.Offset, e.Size, e.What)
	}
	return prefix(e.Path) + fmt.Sprintf("read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Length, e.Offset, e.Size, e.What)
}

func prefix(path string) string {
	if path == "" {
		return ""
	}
	return path + ": "
}

// Unsigned is the set of fixed-width big-endian integers found in tag
// headers.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Size returns the number of readable bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt reads len(b) bytes at off. A zero-length read at the end of the
// region is allowed so that empty payloads can be read uniformly.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if len(b) == 0 && off >= 0 && off <= sr.size {
		return nil
	}
	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return &OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: int64(len(b)),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%sfailed to read %s at offset %d: %w", prefix(sr.path), what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%sshort read for %s at offset %d: got %d bytes, expected %d: %w",
			prefix(sr.path), what, off, n, len(b), io.ErrUnexpectedEOF)
	}

	return nil
}

// Read reads a big-endian value of type T from the given offset.
func Read[T Unsigned](sr *SafeReader, off int64, what string) (T, error) {
	var buf [8]byte
	n := sizeOf[T]()
	if err := sr.ReadAt(buf[8-n:], off, what); err != nil {
		return 0, err
	}
	return T(binary.BigEndian.Uint64(buf[:])), nil
}

func sizeOf[T Unsigned]() int {
	return int(unsafe.Sizeof(T(0)))
}

// Reader provides sequential reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int64
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int64) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// ReadValue reads a numeric value and advances the offset.
func ReadValue[T Unsigned](r *Reader, what string) (T, error) {
	val, err := Read[T](r.SafeReader, r.offset, what)
	if err != nil {
		return 0, err
	}
	r.offset += int64(sizeOf[T]())
	return val, nil
}

// ReadBytes reads n bytes and advances the offset. The length is checked
// against the region before any memory is allocated.
func (r *Reader) ReadBytes(n int64, what string) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, &OutOfBoundsError{
			Path:   r.path,
			What:   what,
			Offset: r.offset,
			Length: n,
			Size:   r.size,
		}
	}
	buf := make([]byte, n)
	if err := r.SafeReader.ReadAt(buf, r.offset, what); err != nil {
		return nil, err
	}
	r.offset += n
	return buf, nil
}

// ReadString reads a string of the given length and advances the offset.
func (r *Reader) ReadString(length int, what string) (string, error) {
	buf, err := r.ReadBytes(int64(length), what)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Skip advances the offset by n bytes.
func (r *Reader) Skip(n int64) {
	r.offset += n
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Remaining returns the number of bytes between the offset and the end of the region.
func (r *Reader) Remaining() int64 {
	if r.offset >= r.size {
		return 0
	}
	return r.size - r.offset
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	*Reader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// ReadChained reads a value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T Unsigned](cr *ChainReader, what string) T {
	if cr.err != nil {
		return 0
	}
	val, err := ReadValue[T](cr.Reader, what)
	cr.err = err
	return val
}

// Bytes reads n raw bytes, accumulating any error.
func (cr *ChainReader) Bytes(n int64, what string) []byte {
	if cr.err != nil {
		return nil
	}
	val, err := cr.Reader.ReadBytes(n, what)
	cr.err = err
	return val
}

// String reads a string, accumulating any error.
func (cr *ChainReader) String(length int, what string) string {
	if cr.err != nil {
		return ""
	}
	val, err := cr.Reader.ReadString(length, what)
	cr.err = err
	return val
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}
