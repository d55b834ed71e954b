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

package word

import (
	"strings"

	"github.com/ianlewis/go-scel/pinyin"
)

// Start is the file offset of the word table.
const Start = pinyin.End

// Entry is a single word in the word table.
type Entry struct {
	// Count is the word frequency.
	Count uint16

	// Pinyin is the concatenated pinyin of the word, e.g. "nihao".
	Pinyin string

	// Syllables are the pinyin syllables of the word.
	Syllables []string

	// Word is the word text.
	Word string
}

// String returns the word text.
func (e *Entry) String() string {
	return e.Word
}

// DisplayPinyin returns the word's syllables separated by apostrophes, e.g.
// "ni'hao".
func (e *Entry) DisplayPinyin() string {
	return strings.Join(e.Syllables, "'")
}

// Parse reads all entries from the word table data b in the order they
// appear. If any group is malformed no entries are returned.
func Parse(b []byte, table pinyin.Table) ([]*Entry, error) {
	var entries []*Entry
	s := NewScanner(b, table)
	for s.Scan() {
		entries = append(entries, s.Group().Entries...)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
