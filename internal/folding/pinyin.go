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

// PinyinFolder folds pinyin so that user queries match dictionary pinyin.
// Syllable separators (apostrophes, hyphens and whitespace) are removed, ASCII
// letters are lower cased and 'ü' is written as 'v' as in SCEL pinyin tables.
type PinyinFolder struct {
	transform.NopResetter
}

func foldPinyinRune(r rune) (rune, bool) {
	switch {
	case r == '\'' || r == '-' || r == '’' || unicode.IsSpace(r):
		return 0, false
	case r == 'ü' || r == 'Ü':
		return 'v', true
	case 'A' <= r && r <= 'Z':
		return r + ('a' - 'A'), true
	default:
		return r, true
	}
}

// Transform implements [transform.Transformer.Transform].
func (PinyinFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		folded, keep := foldPinyinRune(r)
		if keep {
			if nDst+utf8.RuneLen(folded) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], folded)
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}

// Pinyin returns s folded with a PinyinFolder.
func Pinyin(s string) string {
	out, _, err := transform.String(PinyinFolder{}, s)
	if err != nil {
		return s
	}
	return out
}
