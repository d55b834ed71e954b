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

// Package word implements reading the SCEL word table.
//
// The word table starts at offset 0x2628 and runs to the end of the file. It
// is a list of homophone groups. Each group has the following layout, with
// all integers 16 bit little-endian:
//  1. same: the number of words in the group.
//  2. pinyin_len: the byte length of the syllable index list.
//  3. The syllable index list: pinyin_len/2 pinyin table indexes.
//  4. same words, each made of:
//     a. word_len: the byte length of the word.
//     b. The word: little-endian UTF-16 text.
//     c. ext_len: the byte length of the extension block.
//     d. The extension block. Its first two bytes are the word frequency.
//     The rest of the block is not interpreted.
package word
