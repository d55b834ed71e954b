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
	"errors"
	"fmt"

	"github.com/ianlewis/go-scel/internal/cursor"
	"github.com/ianlewis/go-scel/internal/utf16le"
)

// ErrMalformed indicates that a table record runs past the end of the table.
var ErrMalformed = errors.New("malformed pinyin table")

// Syllable is a pinyin table record.
type Syllable struct {
	Index  uint16
	Pinyin string
}

// Scanner scans a pinyin table from start to end.
type Scanner struct {
	c   *cursor.Cursor
	syl *Syllable
	err error
}

// NewScanner returns a new Scanner over the pinyin table data b. b should be
// exactly the table region of the file.
func NewScanner(b []byte) *Scanner {
	return &Scanner{
		c: cursor.New(b),
	}
}

// Scan advances the scanner to the next record. It returns false if the scan
// stops either by reaching the end of the table or an error.
func (s *Scanner) Scan() bool {
	s.syl = nil
	if s.err != nil || s.c.Done() {
		return false
	}

	start := s.c.Offset()
	syl, err := s.next()
	if err != nil {
		s.err = fmt.Errorf("%w: record at offset %#x: %w", ErrMalformed, start, err)
		return false
	}
	s.syl = syl
	return true
}

func (s *Scanner) next() (*Syllable, error) {
	index, err := s.c.Uint16()
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	size, err := s.c.Uint16()
	if err != nil {
		return nil, fmt.Errorf("reading length: %w", err)
	}
	b, err := s.c.Next(int(size))
	if err != nil {
		return nil, fmt.Errorf("reading syllable: %w", err)
	}
	return &Syllable{
		Index:  index,
		Pinyin: utf16le.Decode(b),
	}, nil
}

// Syllable returns the current record.
func (s *Scanner) Syllable() *Syllable {
	return s.syl
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}
