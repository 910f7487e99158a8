// Package cursor contains the bounds-checked byte cursor the handshake
// codec reads and writes through.
package cursor

import (
	"encoding/binary"
	"errors"

	"github.com/windofthesky/s2n/pkg/protocol"
)

// Typed errors.
var (
	// ErrBufferExhausted is returned when a read runs past the written
	// region of the buffer.
	ErrBufferExhausted = &protocol.DecodeError{Err: errors.New("read past end of buffer")} //nolint:gochecknoglobals

	// ErrCapacityExceeded is returned when a write runs past the buffer's
	// capacity.
	ErrCapacityExceeded = &protocol.ResourceError{Err: errors.New("write past buffer capacity")} //nolint:gochecknoglobals
)

// Cursor is a view over a fixed-capacity buffer with independent read and
// write offsets. Reads only consume bytes that have been written; both
// directions are bounds-checked and fail instead of growing or truncating.
type Cursor struct {
	buf      []byte
	readOff  int
	writeOff int
}

// New returns an empty Cursor with the given capacity.
func New(capacity int) *Cursor {
	return &Cursor{buf: make([]byte, capacity)}
}

// FromBytes wraps data in a Cursor positioned to read from the start.
// The Cursor borrows data, it does not copy it.
func FromBytes(data []byte) *Cursor {
	return &Cursor{buf: data, writeOff: len(data)}
}

// ReadOffset returns the current read position.
func (c *Cursor) ReadOffset() int {
	return c.readOff
}

// ReadRemaining returns the number of written bytes not yet read.
func (c *Cursor) ReadRemaining() int {
	return c.writeOff - c.readOff
}

// ReadUint8 consumes one byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadUint16 consumes two bytes as a big-endian value.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

// ReadBytes consumes n bytes and returns them as a view into the cursor's
// buffer. The view is only valid as long as the backing buffer is.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > c.writeOff-c.readOff {
		return nil, ErrBufferExhausted
	}
	out := c.buf[c.readOff : c.readOff+n]
	c.readOff += n

	return out, nil
}

// WriteOffset returns the current write position.
func (c *Cursor) WriteOffset() int {
	return c.writeOff
}

// WriteUint8 appends one byte.
func (c *Cursor) WriteUint8(v uint8) error {
	return c.WriteBytes([]byte{v})
}

// WriteUint16 appends two bytes as a big-endian value.
func (c *Cursor) WriteUint16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)

	return c.WriteBytes(b[:])
}

// WriteBytes appends b.
func (c *Cursor) WriteBytes(b []byte) error {
	region, err := c.ReserveBytes(len(b))
	if err != nil {
		return err
	}
	copy(region, b)

	return nil
}

// ReserveBytes appends n zero bytes and returns them as a writable view so
// the caller can fill them in place.
func (c *Cursor) ReserveBytes(n int) ([]byte, error) {
	if n < 0 || n > len(c.buf)-c.writeOff {
		return nil, ErrCapacityExceeded
	}
	region := c.buf[c.writeOff : c.writeOff+n]
	c.writeOff += n

	return region, nil
}

// View returns n bytes of the written region starting at offset without
// moving either cursor. Like ReadBytes the result aliases the backing
// buffer and must not be retained past its lifetime.
func (c *Cursor) View(offset, n int) ([]byte, error) {
	if offset < 0 || n < 0 || offset+n > c.writeOff {
		return nil, ErrBufferExhausted
	}

	return c.buf[offset : offset+n], nil
}

// Bytes returns the full written region.
func (c *Cursor) Bytes() []byte {
	return c.buf[:c.writeOff]
}
