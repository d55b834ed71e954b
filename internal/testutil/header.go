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

package testutil

import (
	"encoding/binary"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"github.com/ianlewis/go-scel/header"
)

var (
	// UserMagic is the 12 byte signature of a user built dictionary.
	UserMagic = []byte{0x40, 0x15, 0x00, 0x00, 0xd2, 0x6d, 0x53, 0x01, 0x01, 0x00, 0x00, 0x00}

	// OfficialMagic is the 12 byte signature of an official dictionary.
	OfficialMagic = []byte{0x40, 0x15, 0x00, 0x00, 0x44, 0x43, 0x53, 0x01, 0x01, 0x00, 0x00, 0x00}
)

// Header holds the values written by MakeHeader.
type Header struct {
	Magic       []byte
	ID          string
	Name        string
	Category    string
	Description string
	Sample      string
	Timestamp   uint32
	GroupCount  uint32
	WordCount   uint32
	GroupSize   uint32
	WordSize    uint32
}

// EncodeUTF16 encodes s as little-endian UTF-16 without a byte order mark.
func EncodeUTF16(t *testing.T, s string) []byte {
	t.Helper()

	b, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatalf("encoding %q: %v", s, err)
	}
	return b
}

// MakeHeader creates a header.MinSize byte SCEL header. A nil h produces an
// all zero header.
func MakeHeader(t *testing.T, h *Header) []byte {
	t.Helper()

	b := make([]byte, header.MinSize)
	if h == nil {
		return b
	}

	copy(b, h.Magic)

	fields := []struct {
		start, end int
		s          string
	}{
		{0x1C, 0x11C, h.ID},
		{header.NameStart, header.CategoryStart, h.Name},
		{header.CategoryStart, header.DescriptionStart, h.Category},
		{header.DescriptionStart, header.SampleStart, h.Description},
		{header.SampleStart, header.MinSize, h.Sample},
	}
	for _, f := range fields {
		enc := EncodeUTF16(t, f.s)
		if len(enc) > f.end-f.start {
			t.Fatalf("header field %q too long: %d > %d", f.s, len(enc), f.end-f.start)
		}
		copy(b[f.start:f.end], enc)
	}

	binary.LittleEndian.PutUint32(b[0x11C:], h.Timestamp)
	binary.LittleEndian.PutUint32(b[0x120:], h.GroupCount)
	binary.LittleEndian.PutUint32(b[0x124:], h.WordCount)
	binary.LittleEndian.PutUint32(b[0x128:], h.GroupSize)
	binary.LittleEndian.PutUint32(b[0x12C:], h.WordSize)

	return b
}
