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

package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// DisplayFolder folds header text for display on a single line. Runs of
// whitespace and control characters (e.g. the "\r\n" separators in sample
// word lists) become a single ASCII space. Leading and trailing runs are
// removed.
type DisplayFolder struct {
	// started is true after the first printable rune.
	started bool

	// pending is true while inside a separator run.
	pending bool
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

// Transform implements [transform.Transformer.Transform].
func (f *DisplayFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		if isSeparator(r) {
			f.pending = f.started
			nSrc += size
			continue
		}

		need := utf8.RuneLen(r)
		if f.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if f.pending {
			dst[nDst] = ' '
			nDst++
			f.pending = false
		}
		// r may be utf8.RuneError for invalid input in which case size is 1
		// but three bytes are written.
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		f.started = true
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *DisplayFolder) Reset() {
	*f = DisplayFolder{}
}

// Display returns s folded with a DisplayFolder.
func Display(s string) string {
	out, _, err := transform.String(&DisplayFolder{}, s)
	if err != nil {
		return s
	}
	return out
}
