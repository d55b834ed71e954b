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

// Package utf16le decodes the little-endian UTF-16 text stored in SCEL files.
//
// Each 2-byte code unit is mapped to a single rune. Zero code units are
// padding and are dropped. Surrogate pairs are NOT combined: every surrogate
// code unit is decoded on its own and therefore becomes [utf8.RuneError].
// SCEL dictionaries do not store supplementary-plane characters so this
// limitation does not affect real files.
package utf16le

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrInvalidCodeUnit is returned by DecodeStrict for code units that are not
// Unicode scalar values.
var ErrInvalidCodeUnit = errors.New("invalid code unit")

// Decode decodes b as little-endian UTF-16. A trailing odd byte is ignored.
func Decode(b []byte) string {
	s, _ := decode(b, false)
	return s
}

// DecodeStrict is like Decode but returns an error instead of substituting
// [utf8.RuneError] for surrogate code units.
func DecodeStrict(b []byte) (string, error) {
	return decode(b, true)
}

func decode(b []byte, strict bool) (string, error) {
	buf := make([]byte, 0, len(b))
	for i := 0; i+1 < len(b); i += 2 {
		u := binary.LittleEndian.Uint16(b[i:])
		if u == 0 {
			continue
		}
		r := rune(u)
		if utf16.IsSurrogate(r) {
			if strict {
				return "", fmt.Errorf("%w: %#04x at offset %d", ErrInvalidCodeUnit, u, i)
			}
			r = utf8.RuneError
		}
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf), nil
}

// Encode encodes s as little-endian UTF-16 using one code unit per rune.
// Runes outside the Basic Multilingual Plane are written as U+FFFD so that
// Decode(Encode(s)) == s holds for all strings Decode can produce.
func Encode(s string) []byte {
	b := make([]byte, 0, len(s)*2)
	for _, r := range s {
		if r > 0xFFFF || utf16.IsSurrogate(r) {
			r = utf8.RuneError
		}
		b = binary.LittleEndian.AppendUint16(b, uint16(r))
	}
	return b
}
