package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorReadWrite(t *testing.T) {
	cur := New(8)

	assert.NoError(t, cur.WriteUint16(0x0102))
	assert.NoError(t, cur.WriteUint8(0x03))
	assert.NoError(t, cur.WriteBytes([]byte{0x04, 0x05}))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05}, cur.Bytes())

	v16, err := cur.ReadUint16()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v16)

	v8, err := cur.ReadUint8()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x03), v8)

	rest, err := cur.ReadBytes(2)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x05}, rest)
	assert.Equal(t, 0, cur.ReadRemaining())
}

func TestCursorReadBounds(t *testing.T) {
	cur := FromBytes([]byte{0x01, 0x02})

	_, err := cur.ReadBytes(3)
	assert.ErrorIs(t, err, ErrBufferExhausted)

	// A failed read must not consume anything.
	b, err := cur.ReadBytes(2)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, b)

	_, err = cur.ReadUint8()
	assert.ErrorIs(t, err, ErrBufferExhausted)
	_, err = cur.ReadUint16()
	assert.ErrorIs(t, err, ErrBufferExhausted)
}

func TestCursorReadOnlyWritten(t *testing.T) {
	cur := New(16)
	assert.NoError(t, cur.WriteUint8(0xAA))

	// Capacity beyond the write offset is not readable.
	_, err := cur.ReadBytes(2)
	assert.ErrorIs(t, err, ErrBufferExhausted)
}

func TestCursorWriteBounds(t *testing.T) {
	cur := New(3)

	assert.NoError(t, cur.WriteUint16(0xBEEF))
	assert.Error(t, cur.WriteUint16(0xBEEF))
	assert.ErrorIs(t, cur.WriteBytes([]byte{0x01, 0x02}), ErrCapacityExceeded)

	// One byte of capacity remains.
	assert.NoError(t, cur.WriteUint8(0x01))
	assert.ErrorIs(t, cur.WriteUint8(0x02), ErrCapacityExceeded)
}

func TestCursorView(t *testing.T) {
	cur := FromBytes([]byte{0x01, 0x02, 0x03, 0x04})

	view, err := cur.View(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x03}, view)

	_, err = cur.View(3, 2)
	assert.ErrorIs(t, err, ErrBufferExhausted)
	_, err = cur.View(-1, 1)
	assert.ErrorIs(t, err, ErrBufferExhausted)
}

func TestCursorReserveBytes(t *testing.T) {
	cur := New(4)

	region, err := cur.ReserveBytes(4)
	assert.NoError(t, err)
	copy(region, []byte{0x0A, 0x0B, 0x0C, 0x0D})
	assert.Equal(t, []byte{0x0A, 0x0B, 0x0C, 0x0D}, cur.Bytes())

	_, err = cur.ReserveBytes(1)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}
