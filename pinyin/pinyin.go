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

package pinyin

import (
	"encoding/binary"
	"strings"
)

const (
	// Start is the file offset of the pinyin table.
	Start = 0x1540

	// End is the file offset of the end of the pinyin table.
	End = 0x2628
)

// Table maps syllable indexes to pinyin syllables.
type Table map[uint16]string

// ParseTable reads the pinyin table data b. Later records with a duplicate
// index replace earlier ones.
func ParseTable(b []byte) (Table, error) {
	t := Table{}
	s := NewScanner(b)
	for s.Scan() {
		syl := s.Syllable()
		t[syl.Index] = syl.Pinyin
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// Syllables resolves the syllable indexes in b. Each index is a 16 bit
// little-endian value. Indexes missing from the table are skipped. A trailing
// odd byte is ignored.
func (t Table) Syllables(b []byte) []string {
	syls := make([]string, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		if py, ok := t[binary.LittleEndian.Uint16(b[i:])]; ok {
			syls = append(syls, py)
		}
	}
	return syls
}

// Resolve returns the concatenated pinyin for the syllable indexes in b.
func (t Table) Resolve(b []byte) string {
	return strings.Join(t.Syllables(b), "")
}
