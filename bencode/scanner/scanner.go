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

// Package scanner implements a scanner for Bencode streams. It takes an
// [io.ByteReader] as source which can then be tokenized through repeated
// calls to the Scan method.
//
// The source is consumed lazily, one byte at a time, and never rewound: the
// scanner keeps a single byte of pushback and a single token of lookahead.
package scanner // import "github.com/bencodex/go/bencode/scanner"

import (
	"io"
	"math"

	"github.com/bencodex/go/bencode/errors"
	"github.com/bencodex/go/bencode/token"
)

// A Scanner holds the Scanner's internal state while processing a given
// stream. It can be allocated as part of another data structure but must be
// initialized via Init before use.
type Scanner struct {
	// immutable state
	filename string        // used for error positions only
	src      io.ByteReader // source

	// scanning state
	offset    int  // offset of the most recently consumed byte
	ch        byte // pushed back byte
	hasCh     bool // whether ch holds a pushed back byte
	lastToken token.Token
	stack     []token.Token // open INT, LIST and DICT markers

	// lookahead
	peeked  bool
	peekPos token.Pos
	peekTok token.Token
	peekLit int64
	peekErr error
}

// Init prepares the scanner s to tokenize src from its current position.
// The filename is only used to annotate error positions.
func (s *Scanner) Init(filename string, src io.ByteReader) {
	// Explicitly initialize all fields since a scanner may be reused.
	s.filename = filename
	s.src = src

	s.offset = -1
	s.ch = 0
	s.hasCh = false
	s.lastToken = token.ILLEGAL
	s.stack = s.stack[:0]

	s.peeked = false
	s.peekPos = token.NoPos
	s.peekTok = token.ILLEGAL
	s.peekLit = 0
	s.peekErr = nil
}

// Offset reports the offset of the most recently consumed byte, or -1 if
// no byte has been consumed yet. A pushed back byte counts as not consumed.
func (s *Scanner) Offset() int { return s.offset }

// Depth reports the number of integers, lists and dictionaries that have
// been opened but not yet closed.
func (s *Scanner) Depth() int { return len(s.stack) }

// Filename returns the name passed to Init.
func (s *Scanner) Filename() string { return s.filename }

// next returns the next byte of the stream, or io.EOF at its end.
func (s *Scanner) next() (byte, error) {
	if s.hasCh {
		s.hasCh = false
		s.offset++
		return s.ch, nil
	}
	b, err := s.src.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, errors.Wrapf(err, errors.ReadError, s.position(s.offset+1), "read error")
	}
	s.offset++
	return b, nil
}

// unread pushes b back so that the next call to next returns it again.
func (s *Scanner) unread(b byte) {
	s.ch = b
	s.hasCh = true
	s.offset--
}

func (s *Scanner) position(offset int) token.Position {
	return token.MakePos(offset).Position(s.filename)
}

func (s *Scanner) errf(kind errors.Kind, offset int, format string, args ...interface{}) errors.Error {
	return errors.Newf(kind, s.position(offset), format, args...)
}

func (s *Scanner) checkNoLookahead(op string) {
	if s.peeked {
		panic("scanner: " + op + " called with a pending lookahead token")
	}
}

// ReadIntegerBefore reads a decimal integer literal, with an optional
// leading '-', up to the byte term. The terminator itself is not consumed:
// it is returned by the next read.
//
// It returns the value and the number of digits read; a literal consisting
// of at most a sign has zero digits and the value 0. Literals with a
// leading zero, such as 03 or -03, and the literal -0 are rejected.
//
// ReadIntegerBefore must not be called while a token is held by Peek.
func (s *Scanner) ReadIntegerBefore(term byte) (value int64, digits int, err error) {
	s.checkNoLookahead("ReadIntegerBefore")

	var (
		neg  bool
		mag  uint64
		read int
	)
	for ; ; read++ {
		b, err := s.next()
		if err == io.EOF {
			return 0, digits, s.errf(errors.UnterminatedNumber, s.offset+1,
				"unterminated number: expected %q", term)
		}
		if err != nil {
			return 0, digits, err
		}

		switch {
		case b == term:
			s.unread(b)
			if neg && digits == 1 && mag == 0 {
				return 0, digits, s.errf(errors.NegativeZero, s.offset,
					"negative zero is not permitted")
			}
			if neg {
				return -int64(mag), digits, nil
			}
			return int64(mag), digits, nil

		case b == '-':
			if read != 0 {
				return 0, digits, s.errf(errors.MisplacedSign, s.offset,
					"'-' can only appear at the start of an integer")
			}
			neg = true

		case '0' <= b && b <= '9':
			if digits == 1 && mag == 0 {
				return 0, digits, s.errf(errors.LeadingZero, s.offset,
					"leading zero is not permitted")
			}
			digits++
			d := uint64(b - '0')
			limit := uint64(math.MaxInt64)
			if neg {
				limit++
			}
			if mag > (limit-d)/10 {
				return 0, digits, s.errf(errors.IntegerOverflow, s.offset,
					"integer overflows a 64-bit signed integer")
			}
			mag = mag*10 + d

		default:
			return 0, digits, s.errf(errors.InvalidInteger, s.offset,
				"invalid byte %q in integer", b)
		}
	}
}

// ReadBytes consumes exactly n bytes of the stream.
//
// ReadBytes must not be called while a token is held by Peek.
func (s *Scanner) ReadBytes(n int) ([]byte, error) {
	s.checkNoLookahead("ReadBytes")

	// Grow on demand: n comes from the input and may be far larger than
	// what the stream holds.
	const maxPrealloc = 64 << 10
	buf := make([]byte, 0, min(n, maxPrealloc))
	for len(buf) < n {
		b, err := s.next()
		if err == io.EOF {
			return nil, s.errf(errors.TruncatedByteString, s.offset+1,
				"byte string length is expected to be %d, but it's %d", n, len(buf))
		}
		if err != nil {
			return nil, err
		}
		buf = append(buf, b)
	}
	s.lastToken = token.ILLEGAL
	return buf, nil
}

// Scan scans the next token and returns the token position, the token, and
// for LENGTH tokens, the declared length. The end of the stream is indicated
// by token.EOF.
//
// If a token was obtained by Peek, Scan returns that token.
func (s *Scanner) Scan() (pos token.Pos, tok token.Token, lit int64, err error) {
	if s.peeked {
		s.peeked = false
		return s.peekPos, s.peekTok, s.peekLit, s.peekErr
	}
	return s.scan()
}

// Peek returns the next token without consuming it. Repeated calls to Peek
// without an intervening Scan return the same token and do not advance the
// stream.
func (s *Scanner) Peek() (pos token.Pos, tok token.Token, lit int64, err error) {
	if !s.peeked {
		s.peekPos, s.peekTok, s.peekLit, s.peekErr = s.scan()
		s.peeked = true
	}
	return s.peekPos, s.peekTok, s.peekLit, s.peekErr
}

func (s *Scanner) scan() (pos token.Pos, tok token.Token, lit int64, err error) {
	b, err := s.next()
	if err == io.EOF {
		return token.MakePos(s.offset + 1), token.EOF, 0, nil
	}
	if err != nil {
		return token.NoPos, token.ILLEGAL, 0, err
	}
	pos = token.MakePos(s.offset)

	switch b {
	case 'i':
		tok = token.INT
		s.stack = append(s.stack, tok)
	case 'l':
		tok = token.LIST
		s.stack = append(s.stack, tok)
	case 'd':
		tok = token.DICT
		s.stack = append(s.stack, tok)
	case 'e':
		n := len(s.stack)
		if n == 0 || !s.stack[n-1].IsBegin() {
			return pos, token.ILLEGAL, 0, s.errf(errors.UnmatchedEnd, s.offset,
				"'e' does not close an integer, list or dictionary")
		}
		tok = s.stack[n-1].End()
		s.stack = s.stack[:n-1]
	case ':':
		if s.lastToken != token.LENGTH {
			return pos, token.ILLEGAL, 0, s.errf(errors.MisplacedColon, s.offset,
				"':' must follow a byte string length")
		}
		tok = token.COLON
	default:
		if b < '0' || '9' < b {
			return pos, token.ILLEGAL, 0, s.errf(errors.UnknownToken, s.offset,
				"unknown token %q", b)
		}
		s.unread(b)
		lit, _, err = s.ReadIntegerBefore(':')
		if err != nil {
			return pos, token.ILLEGAL, 0, err
		}
		tok = token.LENGTH
	}
	s.lastToken = tok
	return pos, tok, lit, nil
}
