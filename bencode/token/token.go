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

// Package token defines constants representing the lexical tokens of the
// Bencode format and basic operations on tokens (printing, predicates).
package token // import "github.com/bencodex/go/bencode/token"

import "strconv"

// Token is the set of lexical tokens of Bencode.
type Token int

// The list of tokens.
const (
	// Special tokens
	ILLEGAL Token = iota
	EOF

	INT    // i
	LIST   // l
	DICT   // d
	LENGTH // 12
	COLON  // :

	END_INT  // e
	END_LIST // e
	END_DICT // e
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	INT:    "i",
	LIST:   "l",
	DICT:   "d",
	LENGTH: "LENGTH",
	COLON:  ":",

	END_INT:  "e",
	END_LIST: "e",
	END_DICT: "e",
}

// String returns the string corresponding to the token tok. For the
// structural tokens it is the byte that introduces them.
func (tok Token) String() string {
	if 0 <= tok && tok < Token(len(tokens)) {
		return tokens[tok]
	}
	return "token(" + strconv.Itoa(int(tok)) + ")"
}

// IsBegin reports whether tok opens an integer, list or dictionary.
func (tok Token) IsBegin() bool { return tok == INT || tok == LIST || tok == DICT }

// IsEnd reports whether tok closes an integer, list or dictionary.
func (tok Token) IsEnd() bool { return tok == END_INT || tok == END_LIST || tok == END_DICT }

// End returns the token that closes tok, or ILLEGAL if tok is not a begin
// token.
func (tok Token) End() Token {
	switch tok {
	case INT:
		return END_INT
	case LIST:
		return END_LIST
	case DICT:
		return END_DICT
	}
	return ILLEGAL
}

// Describe returns a description of tok suitable for error messages.
func (tok Token) Describe() string {
	switch tok {
	case INT:
		return "integer start 'i'"
	case LIST:
		return "list start 'l'"
	case DICT:
		return "dictionary start 'd'"
	case LENGTH:
		return "byte string length"
	case COLON:
		return "':'"
	case END_INT:
		return "integer end 'e'"
	case END_LIST:
		return "list end 'e'"
	case END_DICT:
		return "dictionary end 'e'"
	case EOF:
		return "end of input"
	}
	return tok.String()
}
