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
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ianlewis/go-scel/internal/cursor"
	"github.com/ianlewis/go-scel/internal/utf16le"
	"github.com/ianlewis/go-scel/pinyin"
)

// ErrMalformed indicates that a group runs past the end of the word table.
var ErrMalformed = errors.New("malformed word table")

// Group is a homophone group. All entries in a group share the same pinyin.
type Group struct {
	Pinyin    string
	Syllables []string
	Entries   []*Entry
}

// Scanner scans a word table one homophone group at a time.
type Scanner struct {
	c     *cursor.Cursor
	table pinyin.Table
	group *Group
	err   error
}

// NewScanner returns a new Scanner over the word table data b. Syllable
// indexes are resolved with table.
func NewScanner(b []byte, table pinyin.Table) *Scanner {
	return &Scanner{
		c:     cursor.New(b),
		table: table,
	}
}

// Scan advances the scanner to the next group. It returns false if the scan
// stops either by reaching the end of the table or an error. A group that
// cannot be read in full is never returned.
func (s *Scanner) Scan() bool {
	s.group = nil
	if s.err != nil || s.c.Done() {
		return false
	}

	start := s.c.Offset()
	g, err := s.next()
	if err != nil {
		s.err = fmt.Errorf("%w: group at offset %#x: %w", ErrMalformed, start, err)
		return false
	}
	s.group = g
	return true
}

func (s *Scanner) next() (*Group, error) {
	same, err := s.c.Uint16()
	if err != nil {
		return nil, fmt.Errorf("reading word count: %w", err)
	}
	pyLen, err := s.c.Uint16()
	if err != nil {
		return nil, fmt.Errorf("reading pinyin length: %w", err)
	}
	pyIndexes, err := s.c.Next(int(pyLen))
	if err != nil {
		return nil, fmt.Errorf("reading pinyin: %w", err)
	}

	g := &Group{
		Syllables: s.table.Syllables(pyIndexes),
		Entries:   make([]*Entry, 0, same),
	}
	g.Pinyin = strings.Join(g.Syllables, "")

	for i := 0; i < int(same); i++ {
		e, err := s.entry(g)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		g.Entries = append(g.Entries, e)
	}
	return g, nil
}

func (s *Scanner) entry(g *Group) (*Entry, error) {
	wordLen, err := s.c.Uint16()
	if err != nil {
		return nil, fmt.Errorf("reading word length: %w", err)
	}
	w, err := s.c.Next(int(wordLen))
	if err != nil {
		return nil, fmt.Errorf("reading word: %w", err)
	}
	extLen, err := s.c.Uint16()
	if err != nil {
		return nil, fmt.Errorf("reading extension length: %w", err)
	}
	// The frequency is the first two bytes of the extension block. It is
	// read even when ext_len is smaller than two.
	count, err := s.c.PeekUint16()
	if err != nil {
		return nil, fmt.Errorf("reading frequency: %w", err)
	}
	if err := s.c.Skip(int(extLen)); err != nil {
		return nil, fmt.Errorf("reading extension: %w", err)
	}
	return &Entry{
		Count:     count,
		Pinyin:    g.Pinyin,
		Syllables: slices.Clone(g.Syllables),
		Word:      utf16le.Decode(w),
	}, nil
}

// Group returns the current group.
func (s *Scanner) Group() *Group {
	return s.group
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}
