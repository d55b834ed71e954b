// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cursor implements a bounds-checked forward reader over a byte
// slice.
package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortBuffer indicates that a read required more bytes than remain in the
// buffer.
var ErrShortBuffer = errors.New("short buffer")

// Cursor reads little-endian values from a byte slice. The offset only moves
// forward and a read never goes past the end of the slice.
type Cursor struct {
	b   []byte
	off int
}

// New returns a Cursor positioned at the start of b.
func New(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Offset returns the current offset relative to the start of the slice.
func (c *Cursor) Offset() int {
	return c.off
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.b) - c.off
}

// Done returns true when the cursor has reached the end of the slice.
func (c *Cursor) Done() bool {
	return c.off == len(c.b)
}

// Next returns the next n bytes and advances the cursor. The returned slice
// aliases the underlying buffer. If fewer than n bytes remain the cursor does
// not move.
func (c *Cursor) Next(n int) ([]byte, error) {
	if n < 0 || n > c.Len() {
		return nil, fmt.Errorf("%w: reading %d bytes at offset %#x, %d remaining",
			ErrShortBuffer, n, c.off, c.Len())
	}
	b := c.b[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.Next(n)
	return err
}

// Uint16 reads a little-endian uint16.
func (c *Cursor) Uint16() (uint16, error) {
	b, err := c.Next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// PeekUint16 reads a little-endian uint16 without advancing the cursor.
func (c *Cursor) PeekUint16() (uint16, error) {
	if c.Len() < 2 {
		return 0, fmt.Errorf("%w: reading 2 bytes at offset %#x, %d remaining",
			ErrShortBuffer, c.off, c.Len())
	}
	return binary.LittleEndian.Uint16(c.b[c.off:]), nil
}

// Uint32 reads a little-endian uint32.
func (c *Cursor) Uint32() (uint32, error) {
	b, err := c.Next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Slice returns the bytes in [start, end) of b without moving any cursor. It
// is used for fixed-offset fields.
func Slice(b []byte, start, end int) ([]byte, error) {
	if start < 0 || end < start || end > len(b) {
		return nil, fmt.Errorf("%w: range [%#x, %#x) of %#x bytes",
			ErrShortBuffer, start, end, len(b))
	}
	return b[start:end], nil
}
