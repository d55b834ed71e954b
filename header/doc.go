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

// Package header implements reading the SCEL file header.
//
// The header occupies the first 0x1540 bytes of the file. Text fields are
// fixed-width little-endian UTF-16 strings padded with zero code units:
//
//	0x001C - 0x011C  dictionary id
//	0x0130 - 0x0338  name
//	0x0338 - 0x0540  category
//	0x0540 - 0x0D40  description
//	0x0D40 - 0x1540  sample words
//
// Little-endian 32-bit integers are stored at 0x11C (build timestamp), 0x120
// (homophone group count), 0x124 (word count), 0x128 and 0x12C (pinyin and
// word data sizes).
package header
