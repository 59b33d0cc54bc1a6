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

// Package format implements the canonical encoding of Bencode trees.
//
// The encoding is deterministic: integers are printed without leading zeros
// or a redundant sign and dictionary keys are written in ascending order of
// their raw bytes, whatever order the tree was decoded or built in.
package format // import "github.com/bencodex/go/bencode/format"

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/bencodex/go/bencode/ast"
)

// Fprint writes the canonical encoding of n to w and reports the number of
// bytes written. It fails only if w does, or if the tree holds a nil or
// unsupported node or a dictionary key that is not valid UTF-8. Such a key
// would not decode again.
//
// Fprint issues many small writes; callers writing to a file or network
// connection should wrap w in a bufio.Writer.
func Fprint(w io.Writer, n ast.Node) (int, error) {
	p := printer{w: w}
	p.node(n)
	return p.written, p.err
}

// Node returns the canonical encoding of n.
func Node(n ast.Node) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Fprint(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the canonical encoding of n as a string, or the empty
// string if n cannot be encoded.
func String(n ast.Node) string {
	b, err := Node(n)
	if err != nil {
		return ""
	}
	return string(b)
}

type printer struct {
	w       io.Writer
	written int
	err     error
	scratch [24]byte
}

func (p *printer) write(b []byte) {
	if p.err != nil {
		return
	}
	n, err := p.w.Write(b)
	p.written += n
	p.err = err
}

func (p *printer) writeString(s string) {
	if p.err != nil {
		return
	}
	n, err := io.WriteString(p.w, s)
	p.written += n
	p.err = err
}

func (p *printer) writeByte(c byte) {
	p.scratch[0] = c
	p.write(p.scratch[:1])
}

// length writes a byte string length and its colon.
func (p *printer) length(n int) {
	b := strconv.AppendInt(p.scratch[:0], int64(n), 10)
	p.write(append(b, ':'))
}

func (p *printer) unsupported(n ast.Node) {
	if p.err == nil {
		p.err = fmt.Errorf("bencode/format: unsupported node %T", n)
	}
}

func (p *printer) node(n ast.Node) {
	if p.err != nil {
		return
	}
	switch x := n.(type) {
	case *ast.Int:
		if x == nil {
			p.unsupported(n)
			return
		}
		b := append(p.scratch[:0], 'i')
		b = strconv.AppendInt(b, x.Value, 10)
		p.write(append(b, 'e'))

	case *ast.Bytes:
		if x == nil {
			p.unsupported(n)
			return
		}
		p.length(len(x.Value))
		p.write(x.Value)

	case *ast.List:
		if x == nil {
			p.unsupported(n)
			return
		}
		p.writeByte('l')
		for _, e := range x.Elts {
			p.node(e)
		}
		p.writeByte('e')

	case *ast.Dict:
		if x == nil {
			p.unsupported(n)
			return
		}
		p.writeByte('d')
		for _, k := range x.Keys() {
			if !utf8.ValidString(k) {
				if p.err == nil {
					p.err = fmt.Errorf("bencode/format: dictionary key %q is not valid UTF-8", k)
				}
				return
			}
			p.length(len(k))
			p.writeString(k)
			p.node(x.Fields[k])
		}
		p.writeByte('e')

	default:
		p.unsupported(n)
	}
}
