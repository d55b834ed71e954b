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

package scel

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ianlewis/go-scel/header"
	"github.com/ianlewis/go-scel/internal/cursor"
	"github.com/ianlewis/go-scel/internal/folding"
	"github.com/ianlewis/go-scel/internal/index"
	"github.com/ianlewis/go-scel/pinyin"
	"github.com/ianlewis/go-scel/word"
)

var (
	// ErrMalformed indicates that the file contents could not be decoded.
	ErrMalformed = errors.New("malformed scel data")

	// ErrBadExtension indicates the file does not have a .scel extension.
	ErrBadExtension = errors.New("bad extension")
)

// Scel is a decoded SCEL dictionary.
type Scel struct {
	path    string
	header  *header.Header
	table   pinyin.Table
	entries []*word.Entry

	indexOnce sync.Once
	index     *index.Index[*word.Entry]
}

// IsScel returns true if the file name has a SCEL extension.
func IsScel(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".scel" || ext == ".SCEL"
}

// New decodes the full contents of a SCEL file.
func New(b []byte) (*Scel, error) {
	// The header is read first so that short buffers are rejected before
	// either table is parsed.
	h, err := header.New(b)
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrMalformed, err)
	}

	tableData, err := cursor.Slice(b, pinyin.Start, pinyin.End)
	if err != nil {
		return nil, fmt.Errorf("%w: reading pinyin table: %w", ErrMalformed, err)
	}
	table, err := pinyin.ParseTable(tableData)
	if err != nil {
		return nil, fmt.Errorf("%w: reading pinyin table: %w", ErrMalformed, err)
	}

	entries, err := word.Parse(b[word.Start:], table)
	if err != nil {
		return nil, fmt.Errorf("%w: reading words: %w", ErrMalformed, err)
	}

	return &Scel{
		header:  h,
		table:   table,
		entries: entries,
	}, nil
}

// Read reads r to EOF and decodes the contents.
func Read(r io.Reader) (*Scel, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading scel data: %w", err)
	}
	return New(b)
}

// Open reads and decodes the SCEL file at path.
func Open(path string) (*Scel, error) {
	if !IsScel(path) {
		return nil, fmt.Errorf("%w: %q", ErrBadExtension, filepath.Ext(path))
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	s, err := New(b)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	s.path = path
	return s, nil
}

// OpenAll opens all SCEL files directly under a directory in directory
// listing order. Subdirectories are not searched. This function will return
// all successfully opened dictionaries along with any errors that occurred. If
// the directory cannot be read only that error is returned.
func OpenAll(dir string) ([]*Scel, []error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("reading directory %q: %w", dir, err)}
	}

	var dicts []*Scel
	var errs []error
	for _, e := range dirEntries {
		if e.IsDir() || !IsScel(e.Name()) {
			continue
		}
		s, err := Open(filepath.Join(dir, e.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		dicts = append(dicts, s)
	}
	return dicts, errs
}

// Path returns the path the dictionary was opened from. It is empty for
// dictionaries decoded with New or Read.
func (s *Scel) Path() string {
	return s.path
}

// Header returns the dictionary header.
func (s *Scel) Header() *header.Header {
	return s.header
}

// Name returns the dictionary name.
func (s *Scel) Name() string {
	return s.header.Name
}

// Category returns the dictionary category.
func (s *Scel) Category() string {
	return s.header.Category
}

// Description returns the dictionary description.
func (s *Scel) Description() string {
	return s.header.Description
}

// Sample returns the dictionary's sample words.
func (s *Scel) Sample() string {
	return s.header.Sample
}

// PinyinTable returns the dictionary's pinyin table.
func (s *Scel) PinyinTable() pinyin.Table {
	return s.table
}

// Entries returns the dictionary entries in file order.
func (s *Scel) Entries() []*word.Entry {
	return s.entries
}

// Words returns the text of every entry in file order.
func (s *Scel) Words() []string {
	words := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		words = append(words, e.Word)
	}
	return words
}

// Search returns the entries whose pinyin matches query. Syllable separators,
// whitespace and ASCII case are ignored so "ni'hao", "Ni Hao" and "nihao" are
// equivalent. The search index is built on first use.
func (s *Scel) Search(query string) []*word.Entry {
	s.indexOnce.Do(func() {
		s.index = index.New(s.entries, func(e *word.Entry) string {
			return folding.Pinyin(e.Pinyin)
		}, strings.Compare)
	})
	return s.index.Search(folding.Pinyin(query))
}
