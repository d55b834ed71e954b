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

package word_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-scel/internal/cursor"
	"github.com/ianlewis/go-scel/internal/testutil"
	"github.com/ianlewis/go-scel/pinyin"
	"github.com/ianlewis/go-scel/word"
)

var testTable = pinyin.Table{
	0: "ce",
	1: "shi",
	2: "ni",
	3: "hao",
	4: "shu",
}

// TestParse tests Parse.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		groups   []*testutil.Group
		expected []*word.Entry
	}{
		{
			name:     "empty",
			groups:   nil,
			expected: nil,
		},
		{
			name: "single word no pinyin",
			groups: []*testutil.Group{
				{
					Words: []*testutil.Word{
						{Word: "测试", Count: 5},
					},
				},
			},
			expected: []*word.Entry{
				{Count: 5, Pinyin: "", Syllables: []string{}, Word: "测试"},
			},
		},
		{
			name: "homophones share pinyin",
			groups: []*testutil.Group{
				{
					Indexes: []uint16{1, 0},
					Words: []*testutil.Word{
						{Word: "事册", Count: 1},
						{Word: "试策", Count: 2},
						{Word: "视侧", Count: 3},
					},
				},
			},
			expected: []*word.Entry{
				{Count: 1, Pinyin: "shice", Syllables: []string{"shi", "ce"}, Word: "事册"},
				{Count: 2, Pinyin: "shice", Syllables: []string{"shi", "ce"}, Word: "试策"},
				{Count: 3, Pinyin: "shice", Syllables: []string{"shi", "ce"}, Word: "视侧"},
			},
		},
		{
			name: "multiple groups in order",
			groups: []*testutil.Group{
				{
					Indexes: []uint16{2, 3},
					Words: []*testutil.Word{
						{Word: "你好", Count: 100},
					},
				},
				{
					Indexes: []uint16{0, 1},
					Words: []*testutil.Word{
						{Word: "测试", Count: 7},
						{Word: "侧室", Count: 8},
					},
				},
			},
			expected: []*word.Entry{
				{Count: 100, Pinyin: "nihao", Syllables: []string{"ni", "hao"}, Word: "你好"},
				{Count: 7, Pinyin: "ceshi", Syllables: []string{"ce", "shi"}, Word: "测试"},
				{Count: 8, Pinyin: "ceshi", Syllables: []string{"ce", "shi"}, Word: "侧室"},
			},
		},
		{
			name: "extension data skipped",
			groups: []*testutil.Group{
				{
					Indexes: []uint16{4},
					Words: []*testutil.Word{
						{Word: "书", Count: 45, Ext: []byte{0x2d, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
						{Word: "树", Count: 46, Ext: []byte{0xff, 0xff}},
					},
				},
			},
			expected: []*word.Entry{
				{Count: 45, Pinyin: "shu", Syllables: []string{"shu"}, Word: "书"},
				{Count: 46, Pinyin: "shu", Syllables: []string{"shu"}, Word: "树"},
			},
		},
		{
			name: "unknown index skipped",
			groups: []*testutil.Group{
				{
					Indexes: []uint16{2, 999, 3},
					Words: []*testutil.Word{
						{Word: "你好", Count: 1},
					},
				},
			},
			expected: []*word.Entry{
				{Count: 1, Pinyin: "nihao", Syllables: []string{"ni", "hao"}, Word: "你好"},
			},
		},
		{
			name: "empty group",
			groups: []*testutil.Group{
				{Indexes: []uint16{2}},
				{
					Indexes: []uint16{3},
					Words: []*testutil.Word{
						{Word: "好", Count: 9},
					},
				},
			},
			expected: []*word.Entry{
				{Count: 9, Pinyin: "hao", Syllables: []string{"hao"}, Word: "好"},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			entries, err := word.Parse(testutil.MakeEntries(t, test.groups), testTable)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(test.expected, entries); diff != "" {
				t.Errorf("Parse (-want, +got):\n%s", diff)
			}

			total := 0
			for _, g := range test.groups {
				total += len(g.Words)
			}
			if want, got := total, len(entries); want != got {
				t.Errorf("unexpected # of entries; want: %d, got: %d", want, got)
			}
		})
	}
}

// TestParse_ShortExtension tests that the frequency is read from the start of
// the extension block even when ext_len is less than two and that the cursor
// only advances by ext_len.
func TestParse_ShortExtension(t *testing.T) {
	t.Parallel()

	b := []byte{
		0x01, 0x00, // same
		0x00, 0x00, // pinyin_len
		0x02, 0x00, 'A', 0x00, // word
		0x00, 0x00, // ext_len
		// The frequency is peeked from the next group's same field.
		0x01, 0x00, // same
		0x00, 0x00, // pinyin_len
		0x02, 0x00, 'B', 0x00, // word
		0x02, 0x00, 0x03, 0x00, // ext_len, count
	}

	entries, err := word.Parse(b, testTable)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	expected := []*word.Entry{
		{Count: 1, Pinyin: "", Syllables: []string{}, Word: "A"},
		{Count: 3, Pinyin: "", Syllables: []string{}, Word: "B"},
	}
	if diff := cmp.Diff(expected, entries); diff != "" {
		t.Errorf("Parse (-want, +got):\n%s", diff)
	}
}

// TestParse_Malformed tests that truncated groups are rejected without
// returning partial entries.
func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	good := testutil.MakeEntries(t, []*testutil.Group{
		{
			Indexes: []uint16{2, 3},
			Words: []*testutil.Word{
				{Word: "你好", Count: 1},
			},
		},
	})

	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "dangling byte",
			data: bytes.Join([][]byte{good, []byte{0x01}}, nil),
		},
		{
			name: "missing pinyin length",
			data: bytes.Join([][]byte{good, []byte{0x01, 0x00}}, nil),
		},
		{
			name: "pinyin overshoots",
			data: bytes.Join([][]byte{good, []byte{0x01, 0x00, 0x08, 0x00, 0x02, 0x00}}, nil),
		},
		{
			name: "missing word",
			data: bytes.Join([][]byte{good, []byte{0x02, 0x00, 0x00, 0x00, 0x02, 0x00, 'a', 0x00, 0x02, 0x00, 0x01, 0x00}}, nil),
		},
		{
			name: "word overshoots",
			data: bytes.Join([][]byte{good, []byte{0x01, 0x00, 0x00, 0x00, 0x10, 0x00, 'a', 0x00}}, nil),
		},
		{
			name: "missing extension length",
			data: bytes.Join([][]byte{good, []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 'a', 0x00}}, nil),
		},
		{
			name: "missing frequency",
			data: bytes.Join([][]byte{good, []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 'a', 0x00, 0x02, 0x00}}, nil),
		},
		{
			name: "extension overshoots",
			data: bytes.Join([][]byte{good, []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 'a', 0x00, 0x0a, 0x00, 0x01, 0x00}}, nil),
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			entries, err := word.Parse(test.data, testTable)
			if !errors.Is(err, word.ErrMalformed) {
				t.Fatalf("Parse; want: %v, got: %v", word.ErrMalformed, err)
			}
			if !errors.Is(err, cursor.ErrShortBuffer) {
				t.Errorf("Parse; want: %v, got: %v", cursor.ErrShortBuffer, err)
			}
			if entries != nil {
				t.Errorf("Parse; want: no entries, got: %v", entries)
			}
		})
	}
}

// TestScanner tests that Scanner returns complete groups before stopping at a
// malformed group.
func TestScanner(t *testing.T) {
	t.Parallel()

	first := testutil.MakeEntries(t, []*testutil.Group{
		{
			Indexes: []uint16{0, 1},
			Words: []*testutil.Word{
				{Word: "测试", Count: 1},
				{Word: "侧视", Count: 2},
			},
		},
	})
	// A group claiming two words but holding one.
	second := testutil.MakeEntries(t, []*testutil.Group{
		{
			Words: []*testutil.Word{
				{Word: "残", Count: 3},
			},
		},
	})
	second[0] = 0x02
	b := bytes.Join([][]byte{first, second}, nil)

	s := word.NewScanner(b, testTable)
	if !s.Scan() {
		t.Fatalf("Scan: want: true, got: false (%v)", s.Err())
	}
	g := s.Group()
	if want, got := "ceshi", g.Pinyin; want != got {
		t.Errorf("Pinyin; want: %q, got: %q", want, got)
	}
	if want, got := 2, len(g.Entries); want != got {
		t.Errorf("unexpected # of entries; want: %d, got: %d", want, got)
	}

	if s.Scan() {
		t.Fatalf("Scan: want: false, got: true")
	}
	if s.Group() != nil {
		t.Errorf("Group; want: nil, got: %#v", s.Group())
	}
	if !errors.Is(s.Err(), word.ErrMalformed) {
		t.Errorf("Err; want: %v, got: %v", word.ErrMalformed, s.Err())
	}
}

// TestEntry_DisplayPinyin tests Entry.DisplayPinyin.
func TestEntry_DisplayPinyin(t *testing.T) {
	t.Parallel()

	e := &word.Entry{Syllables: []string{"ni", "hao"}, Word: "你好"}
	if want, got := "ni'hao", e.DisplayPinyin(); want != got {
		t.Errorf("DisplayPinyin; want: %q, got: %q", want, got)
	}
	if want, got := "你好", e.String(); want != got {
		t.Errorf("String; want: %q, got: %q", want, got)
	}
}
