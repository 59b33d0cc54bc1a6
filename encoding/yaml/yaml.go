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


// Package yaml converts YAML encodings to and from Bencode values.
//
// Integers map to !!int scalars and byte strings to !!str scalars. Byte
// strings that are not valid UTF-8 use !!binary. Other YAML types, such as
// floats, booleans and null, have no Bencode counterpart.
package yaml

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/bencodex/go/bencode/ast"
	"github.com/bencodex/go/internal/source"
)

// Extract parses the YAML to a Bencode value. Streams are returned as a list
// of the streamed values.
//
// The src argument may be a string, []byte or io.Reader. If src is nil, the
// file named by filename is read.
func Extract(filename string, src interface{}) (ast.Node, error) {
	b, err := source.ReadAll(filename, src)
	if err != nil {
		return nil, err
	}
	d := yaml.NewDecoder(bytes.NewReader(b))
	var a []ast.Node
	for {
		var doc yaml.Node
		err := d.Decode(&doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		n, err := fromNode(filename, &doc)
		if err != nil {
			return nil, err
		}
		a = append(a, n)
	}
	switch len(a) {
	case 0:
		return nil, fmt.Errorf("%s: yaml: no documents in stream", filename)
	case 1:
		return a[0], nil
	}
	return ast.NewList(a...), nil
}

func fromNode(filename string, n *yaml.Node) (ast.Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, errorf(filename, n, "empty document")
		}
		return fromNode(filename, n.Content[0])

	case yaml.AliasNode:
		return fromNode(filename, n.Alias)

	case yaml.SequenceNode:
		l := &ast.List{Elts: make([]ast.Node, 0, len(n.Content))}
		for _, c := range n.Content {
			e, err := fromNode(filename, c)
			if err != nil {
				return nil, err
			}
			l.Elts = append(l.Elts, e)
		}
		return l, nil

	case yaml.MappingNode:
		d := ast.NewDict(nil)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, errorf(filename, k, "mapping key must be a scalar")
			}
			e, err := fromNode(filename, v)
			if err != nil {
				return nil, err
			}
			d.Set(k.Value, e)
		}
		return d, nil

	case yaml.ScalarNode:
		switch tag := n.ShortTag(); tag {
		case "!!int":
			var i int64
			if err := n.Decode(&i); err != nil {
				return nil, errorf(filename, n, "integer %s does not fit in 64 bits", n.Value)
			}
			return ast.NewInt(i), nil
		case "!!str":
			return ast.NewString(n.Value), nil
		case "!!binary":
			b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(n.Value), ""))
			if err != nil {
				return nil, errorf(filename, n, "invalid !!binary value: %v", err)
			}
			return ast.NewBytes(b), nil
		default:
			return nil, errorf(filename, n, "%s value %q has no Bencode representation", tag, n.Value)
		}
	}
	return nil, errorf(filename, n, "unsupported YAML node")
}

func errorf(filename string, n *yaml.Node, format string, args ...interface{}) error {
	return fmt.Errorf("%s:%d:%d: yaml: %s", filename, n.Line, n.Column, fmt.Sprintf(format, args...))
}

// Encode returns the YAML encoding of n. Mapping keys are sorted.
func Encode(n ast.Node) ([]byte, error) {
	y, err := toNode(n)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(y); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toNode(n ast.Node) (*yaml.Node, error) {
	switch x := n.(type) {
	case *ast.Int:
		return &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatInt(x.Value, 10),
		}, nil

	case *ast.Bytes:
		if !utf8.Valid(x.Value) {
			return &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!binary",
				Value: base64.StdEncoding.EncodeToString(x.Value),
			}, nil
		}
		return str(string(x.Value)), nil

	case *ast.List:
		y := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range x.Elts {
			c, err := toNode(e)
			if err != nil {
				return nil, err
			}
			y.Content = append(y.Content, c)
		}
		return y, nil

	case *ast.Dict:
		y := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range x.Keys() {
			c, err := toNode(x.Fields[k])
			if err != nil {
				return nil, err
			}
			y.Content = append(y.Content, str(k), c)
		}
		return y, nil
	}
	return nil, fmt.Errorf("yaml: unsupported node %T", n)
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
