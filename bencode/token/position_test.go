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

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestPos(t *testing.T) {
	qt.Assert(t, qt.IsFalse(NoPos.IsValid()))
	qt.Assert(t, qt.Equals(NoPos.Offset(), -1))
	qt.Assert(t, qt.Equals(NoPos.String(), "-"))
	qt.Assert(t, qt.Equals(NoPos.Add(3), NoPos))
	qt.Assert(t, qt.Equals(MakePos(-4), NoPos))

	p := MakePos(0)
	qt.Assert(t, qt.IsTrue(p.IsValid()))
	qt.Assert(t, qt.Equals(p.Offset(), 0))
	qt.Assert(t, qt.Equals(p.Add(5).Offset(), 5))
	qt.Assert(t, qt.Equals(p.Add(5).String(), "5"))
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{Position{Filename: "a.torrent", Offset: 12}, "a.torrent:12"},
		{Position{Offset: 0}, "0"},
		{Position{Filename: "a.torrent", Offset: -1}, "a.torrent"},
		{Position{Offset: -1}, "-"},
		{MakePos(7).Position("x"), "x:7"},
		{NoPos.Position(""), "-"},
	}
	for _, tt := range tests {
		qt.Check(t, qt.Equals(tt.pos.String(), tt.want))
	}
}

func TestTokens(t *testing.T) {
	for _, tok := range []Token{INT, LIST, DICT} {
		qt.Check(t, qt.IsTrue(tok.IsBegin()))
		qt.Check(t, qt.IsFalse(tok.IsEnd()))
		qt.Check(t, qt.IsTrue(tok.End().IsEnd()))
	}
	qt.Assert(t, qt.Equals(INT.End(), END_INT))
	qt.Assert(t, qt.Equals(LIST.End(), END_LIST))
	qt.Assert(t, qt.Equals(DICT.End(), END_DICT))
	qt.Assert(t, qt.Equals(COLON.End(), ILLEGAL))
	qt.Assert(t, qt.Equals(END_DICT.String(), "e"))
	qt.Assert(t, qt.Equals(Token(99).String(), "token(99)"))
	qt.Assert(t, qt.Equals(EOF.Describe(), "end of input"))
}
