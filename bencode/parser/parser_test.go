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


package parser_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/go-quicktest/qt"

	"github.com/bencodex/go/bencode/ast"
	"github.com/bencodex/go/bencode/errors"
	"github.com/bencodex/go/bencode/format"
	"github.com/bencodex/go/bencode/parser"
)

const debianTorrent = `d8:announce41:http://bttracker.debian.org:6969/announce7:comment35:"Debian CD from cdimage.debian.org"13:creation datei1573903810e9:httpseedsl145:https://cdimage.debian.org/cdimage/release/10.2.0//srv/cdbuilder.debian.org/dst/deb-cd/weekly-builds/amd64/iso-cd/debian-10.2.0-amd64-netinst.iso145:https://cdimage.debian.org/cdimage/archive/10.2.0//srv/cdbuilder.debian.org/dst/deb-cd/weekly-builds/amd64/iso-cd/debian-10.2.0-amd64-netinst.isoe4:infod6:lengthi351272960e4:name31:debian-10.2.0-amd64-netinst.iso12:piece lengthi262144eee`

func TestParse(t *testing.T) {
	testCases := []struct {
		desc string
		in   string
		want ast.Node
	}{{
		desc: "positive integer",
		in:   "i42e",
		want: ast.NewInt(42),
	}, {
		desc: "negative integer",
		in:   "i-42e",
		want: ast.NewInt(-42),
	}, {
		desc: "zero",
		in:   "i0e",
		want: ast.NewInt(0),
	}, {
		desc: "int64 bounds",
		in:   "li9223372036854775807ei-9223372036854775808ee",
		want: ast.NewList(ast.NewInt(9223372036854775807), ast.NewInt(-9223372036854775808)),
	}, {
		desc: "byte string",
		in:   "5:hello",
		want: ast.NewString("hello"),
	}, {
		desc: "empty byte string",
		in:   "0:",
		want: ast.NewString(""),
	}, {
		desc: "binary byte string",
		in:   "3:\x00\xff\n",
		want: ast.NewBytes([]byte{0, 0xff, '\n'}),
	}, {
		desc: "byte string holding delimiters",
		in:   "6:i1e:le",
		want: ast.NewString("i1e:le"),
	}, {
		desc: "empty list",
		in:   "le",
		want: ast.NewList(),
	}, {
		desc: "nested lists",
		in:   "llelee",
		want: ast.NewList(ast.NewList(), ast.NewList()),
	}, {
		desc: "empty dictionary",
		in:   "de",
		want: ast.NewDict(nil),
	}, {
		desc: "dictionary",
		in:   "d3:inti233e3:lstl7:bencodeee",
		want: ast.NewDict(map[string]ast.Node{
			"int": ast.NewInt(233),
			"lst": ast.NewList(ast.NewString("bencode")),
		}),
	}, {
		desc: "mixed list",
		in:   "li1e1:ad1:bleee",
		want: ast.NewList(
			ast.NewInt(1),
			ast.NewString("a"),
			ast.NewDict(map[string]ast.Node{"b": ast.NewList()}),
		),
	}}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := parser.Parse("", tc.in)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.IsTrue(ast.Equal(got, tc.want)), qt.Commentf("got %s", format.String(got)))

			// Canonical input survives a round trip unchanged.
			qt.Assert(t, qt.Equals(format.String(got), tc.in))
		})
	}
}

func TestParseTorrent(t *testing.T) {
	n, err := parser.Parse("debian.torrent", debianTorrent)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(format.String(n), debianTorrent))

	d, err := ast.AsDict(n)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(d, 5))

	announce, err := ast.AsString(d["announce"])
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(announce, "http://bttracker.debian.org:6969/announce"))

	created, err := ast.AsInt(d["creation date"])
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(created, int64(1573903810)))

	seeds, err := ast.AsList(d["httpseeds"])
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(seeds, 2))

	info, err := ast.AsDict(d["info"])
	qt.Assert(t, qt.IsNil(err))
	length, err := ast.AsInt(info["length"])
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(length, int64(351272960)))
	name, err := ast.AsString(info["name"])
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(name, "debian-10.2.0-amd64-netinst.iso"))
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		in     string
		kind   errors.Kind
		offset int
		err    string
	}{
		{"", errors.UnexpectedToken, 0, "unexpected end of input, expected value"},
		{"i", errors.UnterminatedNumber, 1, `unterminated number: expected 'e'`},
		{"ie", errors.EmptyInteger, 1, "integer cannot be empty"},
		{"i-e", errors.EmptyInteger, 2, "integer cannot be empty"},
		{"i2522", errors.UnterminatedNumber, 5, `unterminated number: expected 'e'`},
		{"i-12-3e", errors.MisplacedSign, 4, ".*"},
		{"i-2-0e", errors.MisplacedSign, 3, ".*"},
		{"i-0e", errors.NegativeZero, 2, "negative zero is not permitted"},
		{"i03e", errors.LeadingZero, 2, ".*"},
		{"i1.5e", errors.InvalidInteger, 2, `invalid byte '.' in integer`},
		{"i9223372036854775808e", errors.IntegerOverflow, 19, ".*"},
		{"i13ee", errors.TrailingData, 4, "invalid trailing data after value: .*"},
		{"i1ei2e", errors.TrailingData, 3, "unexpected integer start 'i' after value"},
		{"5:hello2", errors.TrailingData, 7, "invalid trailing data after value: unterminated number: expected ':'"},
		{"5:halo", errors.TruncatedByteString, 6, "byte string length is expected to be 5, but it's 4"},
		{"521", errors.UnterminatedNumber, 3, `unterminated number: expected ':'`},
		{"03:abc", errors.LeadingZero, 1, ".*"},
		{"l4:halo", errors.UnexpectedToken, 7, "unexpected end of input, expected list element or list end 'e'"},
		{"d4:haloi23e", errors.UnexpectedToken, 11, "unexpected end of input, expected dictionary key or dictionary end 'e'"},
		{"d1:a", errors.UnexpectedToken, 4, "unexpected end of input, expected value"},
		{"d3:fooe", errors.UnexpectedToken, 6, "unexpected dictionary end 'e', expected value"},
		{"di23e4:haloe", errors.NonStringDictKey, 1, "dictionary key must be a byte string, found integer start 'i'"},
		{"dle", errors.NonStringDictKey, 1, "dictionary key must be a byte string, found list start 'l'"},
		{"d3:\xff\xfe\xfdi1ee", errors.InvalidKeyEncoding, 1, `dictionary key "\\xff\\xfe\\xfd" is not valid UTF-8`},
		{"e", errors.UnmatchedEnd, 0, ".*"},
		{"x", errors.UnknownToken, 0, `unknown token 'x'`},
		{":", errors.MisplacedColon, 0, "':' must follow a byte string length"},
		{"l:e", errors.MisplacedColon, 1, ".*"},
		{"le ", errors.TrailingData, 2, ".*unknown token ' '"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			n, err := parser.Parse("", tc.in)
			qt.Assert(t, qt.IsNil(n))
			qt.Assert(t, qt.ErrorIs(err, tc.kind))
			qt.Assert(t, qt.Equals(errors.KindOf(err), tc.kind))
			qt.Assert(t, qt.Equals(errors.Position(err).Offset, tc.offset))
			qt.Assert(t, qt.ErrorMatches(err, tc.err))
		})
	}
}

func TestTrailingDataCause(t *testing.T) {
	_, err := parser.Parse("", "i13ee")
	qt.Assert(t, qt.ErrorIs(err, errors.TrailingData))
	qt.Assert(t, qt.ErrorIs(err, errors.UnmatchedEnd))

	_, err = parser.Parse("", "5:hello2")
	qt.Assert(t, qt.ErrorIs(err, errors.UnterminatedNumber))
	var cause errors.Error
	qt.Assert(t, qt.ErrorAs(errors.Unwrap(err), &cause))
	qt.Assert(t, qt.Equals(cause.Position().Offset, 8))
}

func TestDictionaryKeys(t *testing.T) {
	testCases := []struct {
		desc   string
		in     string
		want   string // canonical output in default mode
		kind   errors.Kind
		offset int
	}{{
		desc:   "unsorted",
		in:     "d3:fooi1e3:bari2ee",
		want:   "d3:bari2e3:fooi1ee",
		kind:   errors.UnsortedKey,
		offset: 9,
	}, {
		desc:   "duplicate",
		in:     "d1:ai1e1:ai2ee",
		want:   "d1:ai2ee",
		kind:   errors.DuplicateKey,
		offset: 7,
	}, {
		desc:   "duplicate after sorted",
		in:     "d1:ai1e1:bi2e1:bi3ee",
		want:   "d1:ai1e1:bi3ee",
		kind:   errors.DuplicateKey,
		offset: 13,
	}}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			n, err := parser.Parse("", tc.in)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(format.String(n), tc.want))

			_, err = parser.Parse("", tc.in, parser.StrictKeys)
			qt.Assert(t, qt.ErrorIs(err, tc.kind))
			qt.Assert(t, qt.Equals(errors.Position(err).Offset, tc.offset))
		})
	}

	// Sorted keys are accepted in strict mode.
	_, err := parser.Parse("", "d1:ai1e1:bi2e2:bbi3ee", parser.StrictKeys)
	qt.Assert(t, qt.IsNil(err))
}

func TestMaxDepth(t *testing.T) {
	nested := func(n int) string {
		return strings.Repeat("l", n) + strings.Repeat("e", n)
	}

	_, err := parser.Parse("", "llleee", parser.MaxDepth(2))
	qt.Assert(t, qt.ErrorIs(err, errors.DepthExceeded))
	qt.Assert(t, qt.Equals(errors.Position(err).Offset, 2))
	qt.Assert(t, qt.ErrorMatches(err, "nesting depth exceeds limit of 2"))

	_, err = parser.Parse("", "ddee", parser.MaxDepth(1))
	qt.Assert(t, qt.ErrorIs(err, errors.NonStringDictKey))
	_, err = parser.Parse("", "d1:ad1:ad1:aleeee", parser.MaxDepth(3))
	qt.Assert(t, qt.ErrorIs(err, errors.DepthExceeded))
	qt.Assert(t, qt.Equals(errors.Position(err).Offset, 12))

	_, err = parser.Parse("", nested(parser.DefaultMaxDepth))
	qt.Assert(t, qt.IsNil(err))

	_, err = parser.Parse("", nested(parser.DefaultMaxDepth+1))
	qt.Assert(t, qt.ErrorIs(err, errors.DepthExceeded))
	qt.Assert(t, qt.Equals(errors.Position(err).Offset, parser.DefaultMaxDepth))

	_, err = parser.Parse("", nested(2000), parser.MaxDepth(0))
	qt.Assert(t, qt.IsNil(err))
}

func TestMaxLength(t *testing.T) {
	_, err := parser.Parse("", "5:hello", parser.MaxLength(4))
	qt.Assert(t, qt.ErrorIs(err, errors.LengthExceeded))
	qt.Assert(t, qt.Equals(errors.Position(err).Offset, 0))

	_, err = parser.Parse("", "l4:spam5:helloe", parser.MaxLength(4))
	qt.Assert(t, qt.ErrorIs(err, errors.LengthExceeded))
	qt.Assert(t, qt.Equals(errors.Position(err).Offset, 7))

	_, err = parser.Parse("", "5:hello", parser.MaxLength(5))
	qt.Assert(t, qt.IsNil(err))

	// A huge declared length fails on the missing data, without
	// allocating the declared size up front.
	_, err = parser.Parse("", "99999999999:abc")
	qt.Assert(t, qt.ErrorIs(err, errors.TruncatedByteString))
}

func TestConfig(t *testing.T) {
	cfg := parser.NewConfig()
	qt.Assert(t, qt.IsTrue(cfg.IsValid()))
	qt.Assert(t, qt.Equals(cfg.MaxDepth, parser.DefaultMaxDepth))
	qt.Assert(t, qt.Equals(cfg.MaxLength, int64(0)))

	cfg = cfg.Apply(parser.StrictKeys, parser.MaxDepth(-3), parser.MaxLength(10))
	qt.Assert(t, qt.Equals(cfg.Mode, parser.StrictKeys))
	qt.Assert(t, qt.Equals(cfg.MaxDepth, 0))
	qt.Assert(t, qt.Equals(cfg.MaxLength, int64(10)))

	// A Config is itself an option.
	_, err := parser.Parse("", "d1:bi1e1:ai2ee", cfg)
	qt.Assert(t, qt.ErrorIs(err, errors.UnsortedKey))

	qt.Assert(t, qt.PanicMatches(func() {
		parser.Parse("", "i1e", parser.Config{})
	}, `zero parser.Config value used; use parser.NewConfig!`))
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	_, err := parser.Parse("", "li1ee", parser.Trace, parser.TraceOutput(&buf))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(buf.String(), ""+
		"     0: File (\n"+
		"     1: . List (\n"+
		"     2: . . Int (\n"+
		"     4: . . )\n"+
		"     5: . )\n"+
		"     5: )\n"))
}

func TestSources(t *testing.T) {
	want := ast.NewList(ast.NewString("spam"), ast.NewInt(7))
	const in = "l4:spami7ee"

	dir := t.TempDir()
	file := filepath.Join(dir, "x.bencode")
	qt.Assert(t, qt.IsNil(os.WriteFile(file, []byte(in), 0o666)))

	testCases := []struct {
		desc     string
		filename string
		src      any
	}{
		{"string", "", in},
		{"bytes", "", []byte(in)},
		{"reader", "", strings.NewReader(in)},
		{"plain reader", "", iotest.OneByteReader(strings.NewReader(in))},
		{"file", file, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			n, err := parser.Parse(tc.filename, tc.src)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.IsTrue(ast.Equal(n, want)))
		})
	}

	n, err := parser.ParseReader(strings.NewReader(in))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(ast.Equal(n, want)))

	_, err = parser.Parse(filepath.Join(dir, "missing.bencode"), nil)
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))

	_, err = parser.Parse("", 42)
	qt.Assert(t, qt.ErrorMatches(err, `invalid source type int`))
}

func TestErrorFilename(t *testing.T) {
	_, err := parser.Parse("bad.torrent", "d3:fooi-0ee")
	pos := errors.Position(err)
	qt.Assert(t, qt.Equals(pos.Filename, "bad.torrent"))
	qt.Assert(t, qt.Equals(pos.Offset, 8))
	qt.Assert(t, qt.Equals(pos.String(), "bad.torrent:8"))
}

func TestNodePositions(t *testing.T) {
	n, err := parser.Parse("", "d3:bar4:spam3:fooi42ee")
	qt.Assert(t, qt.IsNil(err))
	d := n.(*ast.Dict)
	qt.Assert(t, qt.Equals(d.Lbrace.Offset(), 0))
	qt.Assert(t, qt.Equals(d.Rbrace.Offset(), 21))
	qt.Assert(t, qt.Equals(d.Fields["bar"].Pos().Offset(), 6))
	qt.Assert(t, qt.Equals(d.Fields["foo"].Pos().Offset(), 17))

	n, err = parser.Parse("", "li1e2:abe")
	qt.Assert(t, qt.IsNil(err))
	l := n.(*ast.List)
	qt.Assert(t, qt.Equals(l.Lbrack.Offset(), 0))
	qt.Assert(t, qt.Equals(l.Elts[0].Pos().Offset(), 1))
	qt.Assert(t, qt.Equals(l.Elts[1].Pos().Offset(), 4))
	qt.Assert(t, qt.Equals(l.Rbrack.Offset(), 8))
}
