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

package header

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/ianlewis/go-scel/internal/cursor"
	"github.com/ianlewis/go-scel/internal/utf16le"
)

// Fixed offsets of the header fields.
const (
	magicEnd        = 0xC
	idStart         = 0x1C
	idEnd           = 0x11C
	timestampOffset = 0x11C
	groupCountOff   = 0x120
	wordCountOff    = 0x124
	groupSizeOff    = 0x128
	wordSizeOff     = 0x12C

	NameStart        = 0x130
	CategoryStart    = 0x338
	DescriptionStart = 0x540
	SampleStart      = 0xd40

	// MinSize is the size of the header and the smallest valid SCEL file.
	MinSize = 0x1540
)

// ErrTooShort indicates the buffer is smaller than the header.
var ErrTooShort = errors.New("buffer shorter than header")

var (
	userMagic     = []byte{0x40, 0x15, 0x00, 0x00, 0xd2, 0x6d, 0x53, 0x01, 0x01}
	officialMagic = []byte{0x40, 0x15, 0x00, 0x00, 0x44, 0x43, 0x53, 0x01, 0x01}
)

// Kind is the origin of a dictionary as indicated by its magic bytes.
type Kind string

const (
	// UserKind is a dictionary built by a user.
	UserKind Kind = "user"

	// OfficialKind is a dictionary published by the vendor.
	OfficialKind Kind = "official"

	// UnknownKind is reported for unrecognized magic bytes.
	UnknownKind Kind = "unknown"
)

// Header is the fixed-size metadata block at the start of a SCEL file. None of
// the header fields are needed to decode the rest of the file.
type Header struct {
	// Magic is the file signature. It is reported but not validated.
	Magic []byte

	// ID is the dictionary identifier.
	ID string

	// Name is the dictionary name.
	Name string

	// Category is the dictionary category.
	Category string

	// Description is free form text describing the dictionary.
	Description string

	// Sample is a list of sample words.
	Sample string

	// Timestamp is the time the dictionary was built.
	Timestamp time.Time

	// GroupCount is the number of homophone groups the header claims.
	GroupCount uint32

	// WordCount is the number of words the header claims.
	WordCount uint32

	// GroupSize and WordSize are the byte sizes of the pinyin and word data
	// the header claims.
	GroupSize uint32
	WordSize  uint32
}

// textField is a fixed-width UTF-16LE field padded with zero code units.
type textField struct {
	start, end int
	dst        func(*Header) *string
}

var textFields = []textField{
	{idStart, idEnd, func(h *Header) *string { return &h.ID }},
	{NameStart, CategoryStart, func(h *Header) *string { return &h.Name }},
	{CategoryStart, DescriptionStart, func(h *Header) *string { return &h.Category }},
	{DescriptionStart, SampleStart, func(h *Header) *string { return &h.Description }},
	{SampleStart, MinSize, func(h *Header) *string { return &h.Sample }},
}

// New reads the header from the start of b. b must be at least MinSize bytes.
func New(b []byte) (*Header, error) {
	if len(b) < MinSize {
		return nil, fmt.Errorf("%w: %d < %d: %w", ErrTooShort, len(b), MinSize, cursor.ErrShortBuffer)
	}

	h := &Header{
		Magic: bytes.Clone(b[:magicEnd]),
	}
	for _, f := range textFields {
		field, err := cursor.Slice(b, f.start, f.end)
		if err != nil {
			return nil, fmt.Errorf("reading header field at %#x: %w", f.start, err)
		}
		*f.dst(h) = utf16le.Decode(field)
	}

	h.Timestamp = time.Unix(int64(binary.LittleEndian.Uint32(b[timestampOffset:])), 0).UTC()
	h.GroupCount = binary.LittleEndian.Uint32(b[groupCountOff:])
	h.WordCount = binary.LittleEndian.Uint32(b[wordCountOff:])
	h.GroupSize = binary.LittleEndian.Uint32(b[groupSizeOff:])
	h.WordSize = binary.LittleEndian.Uint32(b[wordSizeOff:])

	return h, nil
}

// Kind returns the dictionary origin based on the magic bytes.
func (h *Header) Kind() Kind {
	switch {
	case bytes.HasPrefix(h.Magic, userMagic):
		return UserKind
	case bytes.HasPrefix(h.Magic, officialMagic):
		return OfficialKind
	default:
		return UnknownKind
	}
}
