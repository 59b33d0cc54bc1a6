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

// Package parser implements a parser for Bencode streams. Input may be
// provided in a variety of forms (see the various Parse* functions); the
// output is a tree of [ast.Node]s representing the single value the stream
// holds.
package parser // import "github.com/bencodex/go/bencode/parser"

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/bencodex/go/bencode/ast"
	"github.com/bencodex/go/bencode/errors"
	"github.com/bencodex/go/bencode/scanner"
	"github.com/bencodex/go/bencode/token"
)

// The parser structure holds the parser's internal state.
type parser struct {
	cfg     Config
	scanner scanner.Scanner

	depth int // current list and dictionary nesting

	// Tracing/debugging
	trace  bool // == (cfg.Mode & Trace != 0)
	out    io.Writer
	indent int // indentation used for tracing output
}

func (p *parser) init(filename string, src io.ByteReader, opts []Option) {
	p.cfg = NewConfig(opts...)
	p.scanner.Init(filename, src)
	p.trace = p.cfg.Mode&Trace != 0
	if p.trace {
		p.out = p.cfg.traceOutput()
	}
}

// ----------------------------------------------------------------------------
// Parsing support

func (p *parser) printTrace(a ...interface{}) {
	const dots = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . "
	const n = len(dots)
	fmt.Fprintf(p.out, "%6d: ", p.scanner.Offset()+1)
	i := 2 * p.indent
	for i > n {
		fmt.Fprint(p.out, dots)
		i -= n
	}
	// i <= n
	fmt.Fprint(p.out, dots[0:i])
	fmt.Fprintln(p.out, a...)
}

func trace(p *parser, msg string) *parser {
	p.printTrace(msg, "(")
	p.indent++
	return p
}

// Usage pattern: defer un(trace(p, "..."))
func un(p *parser) {
	p.indent--
	p.printTrace(")")
}

func (p *parser) errf(kind errors.Kind, pos token.Pos, format string, args ...interface{}) errors.Error {
	return errors.Newf(kind, pos.Position(p.scanner.Filename()), format, args...)
}

// expect consumes the next token, which must be tok.
func (p *parser) expect(tok token.Token) (token.Pos, int64, error) {
	pos, got, lit, err := p.scanner.Scan()
	if err != nil {
		return pos, 0, err
	}
	if got != tok {
		return pos, 0, p.errf(errors.UnexpectedToken, pos,
			"unexpected %s, expected %s", got.Describe(), tok.Describe())
	}
	return pos, lit, nil
}

func (p *parser) enter(pos token.Pos) error {
	p.depth++
	if limit := p.cfg.MaxDepth; limit > 0 && p.depth > limit {
		return p.errf(errors.DepthExceeded, pos,
			"nesting depth exceeds limit of %d", limit)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// ----------------------------------------------------------------------------
// Productions

func (p *parser) parseFile() (ast.Node, error) {
	if p.trace {
		defer un(trace(p, "File"))
	}

	n, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	offset := p.scanner.Offset() + 1
	pos, tok, _, err := p.scanner.Scan()
	if err != nil {
		return nil, errors.Wrapf(err, errors.TrailingData,
			token.MakePos(offset).Position(p.scanner.Filename()),
			"invalid trailing data after value")
	}
	if tok != token.EOF {
		return nil, p.errf(errors.TrailingData, pos,
			"unexpected %s after value", tok.Describe())
	}
	return n, nil
}

func (p *parser) parseValue() (ast.Node, error) {
	pos, tok, _, err := p.scanner.Peek()
	if err != nil {
		return nil, err
	}
	switch tok {
	case token.INT:
		return p.parseInt()
	case token.LENGTH:
		return p.parseBytes()
	case token.LIST:
		return p.parseList()
	case token.DICT:
		return p.parseDict()
	}
	return nil, p.errf(errors.UnexpectedToken, pos,
		"unexpected %s, expected value", tok.Describe())
}

func (p *parser) parseInt() (*ast.Int, error) {
	if p.trace {
		defer un(trace(p, "Int"))
	}

	pos, _, err := p.expect(token.INT)
	if err != nil {
		return nil, err
	}
	v, digits, err := p.scanner.ReadIntegerBefore('e')
	if err != nil {
		return nil, err
	}
	if digits < 1 {
		return nil, p.errf(errors.EmptyInteger, token.MakePos(p.scanner.Offset()+1),
			"integer cannot be empty")
	}
	if _, _, err := p.expect(token.END_INT); err != nil {
		return nil, err
	}
	return &ast.Int{ValuePos: pos, Value: v}, nil
}

func (p *parser) parseBytes() (*ast.Bytes, error) {
	if p.trace {
		defer un(trace(p, "Bytes"))
	}

	pos, n, err := p.expect(token.LENGTH)
	if err != nil {
		return nil, err
	}
	if limit := p.cfg.MaxLength; limit > 0 && n > limit {
		return nil, p.errf(errors.LengthExceeded, pos,
			"byte string length %d exceeds limit of %d", n, limit)
	}
	if n > math.MaxInt {
		return nil, p.errf(errors.LengthExceeded, pos,
			"byte string length %d exceeds addressable memory", n)
	}
	if _, _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	b, err := p.scanner.ReadBytes(int(n))
	if err != nil {
		return nil, err
	}
	return &ast.Bytes{ValuePos: pos, Value: b}, nil
}

func (p *parser) parseList() (*ast.List, error) {
	if p.trace {
		defer un(trace(p, "List"))
	}

	lbrack, _, err := p.expect(token.LIST)
	if err != nil {
		return nil, err
	}
	if err := p.enter(lbrack); err != nil {
		return nil, err
	}
	defer p.leave()

	list := &ast.List{Lbrack: lbrack, Elts: []ast.Node{}}
	for {
		pos, tok, _, err := p.scanner.Peek()
		if err != nil {
			return nil, err
		}
		switch tok {
		case token.END_LIST:
			p.scanner.Scan()
			list.Rbrack = pos
			return list, nil
		case token.EOF:
			return nil, p.errf(errors.UnexpectedToken, pos,
				"unexpected end of input, expected list element or %s", token.END_LIST.Describe())
		}
		elt, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		list.Elts = append(list.Elts, elt)
	}
}

func (p *parser) parseDict() (*ast.Dict, error) {
	if p.trace {
		defer un(trace(p, "Dict"))
	}

	lbrace, _, err := p.expect(token.DICT)
	if err != nil {
		return nil, err
	}
	if err := p.enter(lbrace); err != nil {
		return nil, err
	}
	defer p.leave()

	dict := &ast.Dict{Lbrace: lbrace, Fields: map[string]ast.Node{}}
	strict := p.cfg.Mode&StrictKeys != 0
	prev := ""
	for {
		pos, tok, _, err := p.scanner.Peek()
		if err != nil {
			return nil, err
		}
		switch tok {
		case token.END_DICT:
			p.scanner.Scan()
			dict.Rbrace = pos
			return dict, nil
		case token.EOF:
			return nil, p.errf(errors.UnexpectedToken, pos,
				"unexpected end of input, expected dictionary key or %s", token.END_DICT.Describe())
		case token.LENGTH:
		default:
			return nil, p.errf(errors.NonStringDictKey, pos,
				"dictionary key must be a byte string, found %s", tok.Describe())
		}

		k, err := p.parseBytes()
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(k.Value) {
			return nil, p.errf(errors.InvalidKeyEncoding, pos,
				"dictionary key %q is not valid UTF-8", k.Value)
		}
		key := string(k.Value)
		if strict {
			if _, dup := dict.Fields[key]; dup {
				return nil, p.errf(errors.DuplicateKey, pos,
					"duplicate dictionary key %q", key)
			}
			if len(dict.Fields) > 0 && key < prev {
				return nil, p.errf(errors.UnsortedKey, pos,
					"dictionary key %q is out of order after %q", key, prev)
			}
		}
		prev = key

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		dict.Fields[key] = v
	}
}
