// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

// Package cursor provides a small, allocation-free byte reader specialized
// to Bitcoin's little-endian, compact-size-prefixed wire framing. It never
// copies the bytes it reads: every accessor returns a sub-slice of (or a
// scalar decoded from) the original backing array.
package cursor

import "encoding/binary"

// Cursor is a read-only view over a byte slice that shrinks from the front
// as values are read from it. The zero value is an empty cursor.
type Cursor []byte

// New wraps data in a Cursor positioned at its first byte.
func New(data []byte) Cursor {
	return Cursor(data)
}

// Len reports the number of unread bytes remaining.
func (c *Cursor) Len() int {
	return len(*c)
}

// Remaining returns the not-yet-consumed suffix of the original slice.
func (c *Cursor) Remaining() []byte {
	return []byte(*c)
}

// take advances the cursor by n bytes and returns them, or returns false if
// fewer than n bytes remain. The returned slice aliases the cursor's backing
// array; it is never copied.
func (c *Cursor) take(n int) ([]byte, bool) {
	if n < 0 || len(*c) < n {
		return nil, false
	}
	out := (*c)[:n]
	*c = (*c)[n:]
	return out, true
}

// Skip advances the cursor by n bytes without returning them. It reports
// whether the skip succeeded.
func (c *Cursor) Skip(n int) bool {
	_, ok := c.take(n)
	return ok
}

// ReadBytes reads and returns the next n bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, bool) {
	return c.take(n)
}

// ReadByte reads a single byte.
func (c *Cursor) ReadByte() (byte, bool) {
	b, ok := c.take(1)
	if !ok {
		return 0, false
	}
	return b[0], true
}

// ReadUint16 decodes a little-endian uint16.
func (c *Cursor) ReadUint16() (uint16, bool) {
	b, ok := c.take(2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b), true
}

// ReadUint32 decodes a little-endian uint32.
func (c *Cursor) ReadUint32() (uint32, bool) {
	b, ok := c.take(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

// ReadInt32 decodes a little-endian, signed 32-bit value.
func (c *Cursor) ReadInt32() (int32, bool) {
	v, ok := c.ReadUint32()
	return int32(v), ok
}

// ReadUint64 decodes a little-endian uint64.
func (c *Cursor) ReadUint64() (uint64, bool) {
	b, ok := c.take(8)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b), true
}
