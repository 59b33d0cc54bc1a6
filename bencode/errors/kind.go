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

package errors

// Kind classifies a Bencode error. Kind implements error so that it can be
// used as the target of [Is].
type Kind int

const (
	NoKind Kind = iota

	// Lexical errors.
	InvalidInteger      // non-digit byte in a numeric literal
	LeadingZero         // multi-digit literal starting with 0
	NegativeZero        // the literal -0
	MisplacedSign       // '-' anywhere but the first character
	UnterminatedNumber  // stream ended before the terminator
	IntegerOverflow     // literal does not fit in an int64
	TruncatedByteString // fewer bytes available than declared
	UnmatchedEnd        // 'e' with no open structure
	MisplacedColon      // ':' not directly after a length
	UnknownToken        // unrecognized leading byte
	ReadError           // the byte source failed

	// Grammatical errors.
	UnexpectedToken    // token not allowed at this point
	EmptyInteger       // "ie"
	NonStringDictKey   // dictionary key that is not a byte string
	InvalidKeyEncoding // dictionary key that is not valid UTF-8
	TrailingData       // bytes after a complete value

	// Limits and strict decoding.
	DepthExceeded  // nesting deeper than the configured maximum
	LengthExceeded // byte string longer than the configured maximum
	DuplicateKey   // key repeated within one dictionary
	UnsortedKey    // key not in ascending byte order
)

var kindNames = [...]string{
	NoKind:              "no error",
	InvalidInteger:      "invalid integer",
	LeadingZero:         "leading zero",
	NegativeZero:        "negative zero",
	MisplacedSign:       "misplaced sign",
	UnterminatedNumber:  "unterminated number",
	IntegerOverflow:     "integer overflow",
	TruncatedByteString: "truncated byte string",
	UnmatchedEnd:        "unmatched end",
	MisplacedColon:      "misplaced colon",
	UnknownToken:        "unknown token",
	ReadError:           "read error",
	UnexpectedToken:     "unexpected token",
	EmptyInteger:        "empty integer",
	NonStringDictKey:    "non-string dictionary key",
	InvalidKeyEncoding:  "invalid key encoding",
	TrailingData:        "trailing data",
	DepthExceeded:       "depth exceeded",
	LengthExceeded:      "length exceeded",
	DuplicateKey:        "duplicate key",
	UnsortedKey:         "unsorted key",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown error kind"
}

// Error implements the error interface.
func (k Kind) Error() string { return k.String() }
