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

package cursor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestCursor tests sequential reads with Cursor.
func TestCursor(t *testing.T) {
	t.Parallel()

	c := New([]byte{0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 'a', 'b', 'c'})

	u16, err := c.Uint16()
	if err != nil {
		t.Fatalf("Uint16: %v", err)
	}
	if want, got := uint16(0x1234), u16; want != got {
		t.Errorf("Uint16; want: %#x, got: %#x", want, got)
	}

	u32, err := c.Uint32()
	if err != nil {
		t.Fatalf("Uint32: %v", err)
	}
	if want, got := uint32(0x12345678), u32; want != got {
		t.Errorf("Uint32; want: %#x, got: %#x", want, got)
	}

	if err := c.Skip(1); err != nil {
		t.Fatalf("Skip: %v", err)
	}

	b, err := c.Next(2)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if diff := cmp.Diff([]byte("bc"), b); diff != "" {
		t.Errorf("Next (-want, +got):\n%s", diff)
	}

	if !c.Done() {
		t.Errorf("Done; want: true, got: false (offset %d)", c.Offset())
	}
}

// TestCursor_ShortBuffer tests that a read past the end fails without moving
// the cursor.
func TestCursor_ShortBuffer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		read func(*Cursor) error
	}{
		{
			name: "uint16",
			read: func(c *Cursor) error {
				_, err := c.Uint16()
				return err
			},
		},
		{
			name: "uint32",
			read: func(c *Cursor) error {
				_, err := c.Uint32()
				return err
			},
		},
		{
			name: "next",
			read: func(c *Cursor) error {
				_, err := c.Next(3)
				return err
			},
		},
		{
			name: "negative",
			read: func(c *Cursor) error {
				_, err := c.Next(-1)
				return err
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			c := New([]byte{0x01})
			err := test.read(c)
			if !errors.Is(err, ErrShortBuffer) {
				t.Fatalf("unexpected error; want: %v, got: %v", ErrShortBuffer, err)
			}
			if want, got := 0, c.Offset(); want != got {
				t.Errorf("Offset; want: %d, got: %d", want, got)
			}
		})
	}
}

// TestSlice tests Slice.
func TestSlice(t *testing.T) {
	t.Parallel()

	b := []byte{0, 1, 2, 3}

	got, err := Slice(b, 1, 3)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if diff := cmp.Diff([]byte{1, 2}, got); diff != "" {
		t.Errorf("Slice (-want, +got):\n%s", diff)
	}

	if _, err := Slice(b, 2, 5); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Slice past end; want: %v, got: %v", ErrShortBuffer, err)
	}
	if _, err := Slice(b, 3, 2); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Slice reversed; want: %v, got: %v", ErrShortBuffer, err)
	}
}
