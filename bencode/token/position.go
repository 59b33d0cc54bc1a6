// Copyright 2026 The Bencodex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import "strconv"

// Pos is a compact encoding of a byte offset in a Bencode stream.
//
// It's 1-based rather than zero-based so that the zero Pos is distinguished
// from a Pos that points at the first byte.
type Pos int

// NoPos is the zero value for Pos; there is no offset associated with it and
// [Pos.IsValid] is false.
const NoPos Pos = 0

// MakePos returns the Pos for the zero-based byte offset. Negative offsets
// yield NoPos.
func MakePos(offset int) Pos {
	if offset < 0 {
		return NoPos
	}
	return Pos(offset + 1)
}

// IsValid reports whether the position points into a stream.
func (p Pos) IsValid() bool { return p != NoPos }

// Offset reports the zero-based byte offset, or -1 for NoPos.
func (p Pos) Offset() int { return int(p) - 1 }

// Add returns the position n bytes after p. Adding to NoPos yields NoPos.
func (p Pos) Add(n int) Pos {
	if p == NoPos {
		return NoPos
	}
	return p + Pos(n)
}

// Position returns the printable position of p within the named stream.
func (p Pos) Position(filename string) Position {
	return Position{Filename: filename, Offset: p.Offset()}
}

// String returns the offset as a decimal number, or "-" for NoPos.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return strconv.Itoa(p.Offset())
}

// Position describes a printable position within a stream.
//
// A Position is valid if the offset is >= 0.
type Position struct {
	Filename string // filename, if any
	Offset   int    // offset, starting at 0
}

// IsValid reports whether the position is valid.
func (pos *Position) IsValid() bool { return pos.Offset >= 0 }

// String returns a human-readable form of a position in one of several forms:
//
//	file:offset    valid position with file name
//	offset         valid position without file name
//	file           invalid position with file name
//	-              invalid position without file name
func (pos Position) String() string {
	s := pos.Filename
	if pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += strconv.Itoa(pos.Offset)
	}
	if s == "" {
		s = "-"
	}
	return s
}
