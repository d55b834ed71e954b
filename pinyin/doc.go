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

// Package pinyin implements reading the SCEL pinyin table.
//
// The pinyin table occupies the fixed byte range [0x1540, 0x2628) of a SCEL
// file. Each record in the table comes in three parts:
//  1. The index: a 16 bit little-endian syllable index.
//  2. The length: a 16 bit little-endian byte length of the syllable.
//  3. The syllable: little-endian UTF-16 text.
//
// Words in the entry table refer to their pronunciation as a list of
// syllable indexes which are resolved against the table.
package pinyin
