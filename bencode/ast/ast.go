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

// Package ast declares the types used to represent decoded Bencode values.
//
// A value is a tree of [Node]s: integers and byte strings are leaves, lists
// and dictionaries own their elements. Trees never share nodes and contain
// no cycles. Trees built by the parser record the offset of the first byte
// of each node; trees built with the constructors in this package carry
// [token.NoPos].
package ast // import "github.com/bencodex/go/bencode/ast"

import (
	"slices"

	"github.com/bencodex/go/bencode/token"
)

// Kind identifies the variant of a Node.
type Kind int

const (
	BottomKind Kind = iota // invalid or nil node
	IntKind
	BytesKind
	ListKind
	DictKind
)

func (k Kind) String() string {
	switch k {
	case IntKind:
		return "integer"
	case BytesKind:
		return "byte string"
	case ListKind:
		return "list"
	case DictKind:
		return "dictionary"
	}
	return "_|_"
}

// A Node represents any node in the tree.
type Node interface {
	Pos() token.Pos // position of the first byte belonging to the node
	Kind() Kind

	node()
}

func (*Int) node()   {}
func (*Bytes) node() {}
func (*List) node()  {}
func (*Dict) node()  {}

// An Int node represents an integer, encoded as i<decimal>e.
type Int struct {
	ValuePos token.Pos // position of 'i'
	Value    int64
}

// A Bytes node represents a byte string, encoded as <length>:<bytes>. The
// bytes need not be valid UTF-8.
type Bytes struct {
	ValuePos token.Pos // position of the first length digit
	Value    []byte
}

// A List node represents a list, encoded as l<values>e.
type List struct {
	Lbrack token.Pos // position of 'l'
	Elts   []Node
	Rbrack token.Pos // position of 'e'
}

// A Dict node represents a dictionary, encoded as d<key><value>...e.
//
// Keys are byte strings holding valid UTF-8 text. The canonical encoding
// orders them by their raw bytes; see [Dict.Keys].
type Dict struct {
	Lbrace token.Pos // position of 'd'
	Fields map[string]Node
	Rbrace token.Pos // position of 'e'
}

func (x *Int) Pos() token.Pos   { return x.ValuePos }
func (x *Bytes) Pos() token.Pos { return x.ValuePos }
func (x *List) Pos() token.Pos  { return x.Lbrack }
func (x *Dict) Pos() token.Pos  { return x.Lbrace }

func (*Int) Kind() Kind   { return IntKind }
func (*Bytes) Kind() Kind { return BytesKind }
func (*List) Kind() Kind  { return ListKind }
func (*Dict) Kind() Kind  { return DictKind }

// NewInt creates an integer node.
func NewInt(v int64) *Int { return &Int{Value: v} }

// NewBytes creates a byte string node holding b. The node takes ownership
// of b.
func NewBytes(b []byte) *Bytes { return &Bytes{Value: b} }

// NewString creates a byte string node holding the bytes of s.
func NewString(s string) *Bytes { return &Bytes{Value: []byte(s)} }

// NewList creates a list of the given elements.
func NewList(elts ...Node) *List {
	return &List{Elts: elts}
}

// NewDict creates a dictionary holding fields. The node takes ownership of
// the map; a nil map yields an empty dictionary.
//
// Keys must be valid UTF-8 for the dictionary to be encoded.
func NewDict(fields map[string]Node) *Dict {
	if fields == nil {
		fields = map[string]Node{}
	}
	return &Dict{Fields: fields}
}

// Len reports the number of elements.
func (x *List) Len() int { return len(x.Elts) }

// Len reports the number of fields.
func (x *Dict) Len() int { return len(x.Fields) }

// Get returns the value stored under key.
func (x *Dict) Get(key string) (Node, bool) {
	n, ok := x.Fields[key]
	return n, ok
}

// Set stores n under key, replacing any previous value.
func (x *Dict) Set(key string, n Node) {
	if x.Fields == nil {
		x.Fields = map[string]Node{}
	}
	x.Fields[key] = n
}

// Keys returns the keys of x in byte-lexicographic order.
func (x *Dict) Keys() []string {
	keys := make([]string, 0, len(x.Fields))
	for k := range x.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Equal reports whether a and b represent the same value. Positions are
// ignored. A nil node only equals another nil node.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Int:
		y, ok := b.(*Int)
		return ok && x.Value == y.Value
	case *Bytes:
		y, ok := b.(*Bytes)
		return ok && string(x.Value) == string(y.Value)
	case *List:
		y, ok := b.(*List)
		return ok && slices.EqualFunc(x.Elts, y.Elts, Equal)
	case *Dict:
		y, ok := b.(*Dict)
		if !ok || len(x.Fields) != len(y.Fields) {
			return false
		}
		for k, v := range x.Fields {
			w, ok := y.Fields[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	}
	return false
}
