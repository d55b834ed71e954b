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

// Package scel implements a library for reading SCEL (Sogou cell dictionary)
// files in pure Go.
//
// A SCEL file is a single binary file with three regions:
//  1. A fixed size header [0x0, 0x1540) holding descriptive metadata. See
//     package header.
//  2. A fixed size pinyin table [0x1540, 0x2628) mapping syllable indexes to
//     pinyin. See package pinyin.
//  3. The word table [0x2628, EOF) holding homophone groups of words. See
//     package word.
//
// All integers are little-endian and all text is little-endian UTF-16. The
// whole file is read into memory before it is decoded.
package scel
