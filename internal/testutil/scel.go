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
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-scel/pinyin"
)

// Word is a word in a homophone group.
type Word struct {
	Word  string
	Count uint16

	// Ext is extension data written after the count.
	Ext []byte
}

// Group is a homophone group: words sharing one list of syllable indexes.
type Group struct {
	Indexes []uint16
	Words   []*Word
}

// Scel holds the contents of a test SCEL file.
type Scel struct {
	Header    *Header
	Syllables []*pinyin.Syllable
	Groups    []*Group
}

func appendUint16(t *testing.T, b []byte, n int) []byte {
	t.Helper()
	if n < 0 || n > math.MaxUint16 {
		t.Fatalf("value out of range for uint16: %d", n)
	}
	return binary.LittleEndian.AppendUint16(b, uint16(n))
}

// MakePinyinTable creates pinyin table records without any padding.
func MakePinyinTable(t *testing.T, syls []*pinyin.Syllable) []byte {
	t.Helper()

	b := []byte{}
	for _, s := range syls {
		enc := EncodeUTF16(t, s.Pinyin)
		b = binary.LittleEndian.AppendUint16(b, s.Index)
		b = appendUint16(t, b, len(enc))
		b = append(b, enc...)
	}
	return b
}

// MakePinyinRegion creates the fixed size pinyin table region of a SCEL file.
// The last record's syllable is padded with zero code units so that the
// records fill the region exactly. With no syllables the region is all zeros.
func MakePinyinRegion(t *testing.T, syls []*pinyin.Syllable) []byte {
	t.Helper()

	size := pinyin.End - pinyin.Start
	region := make([]byte, size)
	if len(syls) == 0 {
		return region
	}

	head := MakePinyinTable(t, syls[:len(syls)-1])
	last := syls[len(syls)-1]
	enc := EncodeUTF16(t, last.Pinyin)
	padded := size - len(head) - 4
	if padded < len(enc) {
		t.Fatalf("pinyin table too large: %d > %d", len(head)+4+len(enc), size)
	}

	b := append(head, 0, 0, 0, 0)
	binary.LittleEndian.PutUint16(b[len(head):], last.Index)
	binary.LittleEndian.PutUint16(b[len(head)+2:], uint16(padded))
	copy(region, b)
	copy(region[len(b):], enc)
	return region
}

// MakeEntries creates the entry table of a SCEL file.
func MakeEntries(t *testing.T, groups []*Group) []byte {
	t.Helper()

	b := []byte{}
	for _, g := range groups {
		b = appendUint16(t, b, len(g.Words))
		b = appendUint16(t, b, len(g.Indexes)*2)
		for _, i := range g.Indexes {
			b = binary.LittleEndian.AppendUint16(b, i)
		}
		for _, w := range g.Words {
			enc := EncodeUTF16(t, w.Word)
			b = appendUint16(t, b, len(enc))
			b = append(b, enc...)
			b = appendUint16(t, b, 2+len(w.Ext))
			b = binary.LittleEndian.AppendUint16(b, w.Count)
			b = append(b, w.Ext...)
		}
	}
	return b
}

// MakeScel creates the full contents of a SCEL file.
func MakeScel(t *testing.T, s *Scel) []byte {
	t.Helper()

	b := MakeHeader(t, s.Header)
	b = append(b, MakePinyinRegion(t, s.Syllables)...)
	b = append(b, MakeEntries(t, s.Groups)...)
	return b
}

// WriteScel writes a SCEL file named name under dir and returns its path.
func WriteScel(t *testing.T, dir, name string, s *Scel) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, MakeScel(t, s), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
