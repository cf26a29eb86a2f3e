// Package cursor provides positioned big-endian readers and writers over
// byte slices. Both halves of the binary NBT codec are built on it.
package cursor

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrUnexpectedEOF is returned when a read runs past the end of the input.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// Reader consumes big-endian primitives from a byte slice while tracking
// its position. It never copies the underlying slice except for bulk reads,
// which allocate exactly once.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current read position in bytes.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (byte, error) {
	if r.Remaining() < 1 {
		return 0, ErrUnexpectedEOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadUint16 reads a big-endian 16-bit value.
func (r *Reader) ReadUint16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, ErrUnexpectedEOF
	}
	v := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadUint32 reads a big-endian 32-bit value.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, ErrUnexpectedEOF
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadUint64 reads a big-endian 64-bit value.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.Remaining() < 8 {
		return 0, ErrUnexpectedEOF
	}
	v := binary.BigEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadInt32 reads a big-endian signed 32-bit value.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadBytes reads n bytes into a freshly allocated buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, ErrUnexpectedEOF
	}
	buf := make([]byte, n)
	copy(buf, r.data[r.pos:])
	r.pos += n
	return buf, nil
}

// View returns the next n bytes as a subslice of the input without copying
// and advances past them. Readers of packed arrays decode through the view
// and leave the cursor positioned after the bulk region.
func (r *Reader) View(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, ErrUnexpectedEOF
	}
	v := r.data[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}

// Require verifies that count elements of elemSize bytes each are still
// available, guarding the multiplication against overflow.
func (r *Reader) Require(count, elemSize int) error {
	if count < 0 || elemSize <= 0 {
		return ErrUnexpectedEOF
	}
	if count != 0 && count > math.MaxInt/elemSize {
		return ErrUnexpectedEOF
	}
	if r.Remaining() < count*elemSize {
		return ErrUnexpectedEOF
	}
	return nil
}
