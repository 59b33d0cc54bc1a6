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


// Package json converts JSON to and from Bencode values.
//
// Only the JSON values that have a Bencode counterpart convert: objects,
// arrays, strings and integral numbers. Byte strings must hold valid UTF-8
// to be represented as JSON strings.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/bencodex/go/bencode/ast"
	"github.com/bencodex/go/bencode/errors"
	"github.com/bencodex/go/bencode/token"
)

// Valid reports whether data is a valid JSON encoding.
func Valid(b []byte) bool {
	return json.Valid(b)
}

// Encode returns the JSON encoding of n, indented by four spaces and
// terminated by a newline. Object members are sorted by key.
func Encode(n ast.Node) ([]byte, error) {
	v, err := toValue(n)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toValue(n ast.Node) (interface{}, error) {
	switch x := n.(type) {
	case *ast.Int:
		return x.Value, nil

	case *ast.Bytes:
		if !utf8.Valid(x.Value) {
			return nil, errors.Newf(errors.NoKind, x.ValuePos.Position(""),
				"json: byte string %q is not valid UTF-8", x.Value)
		}
		return string(x.Value), nil

	case *ast.List:
		a := make([]interface{}, len(x.Elts))
		for i, e := range x.Elts {
			v, err := toValue(e)
			if err != nil {
				return nil, err
			}
			a[i] = v
		}
		return a, nil

	case *ast.Dict:
		m := make(map[string]interface{}, len(x.Fields))
		for k, e := range x.Fields {
			v, err := toValue(e)
			if err != nil {
				return nil, err
			}
			m[k] = v
		}
		return m, nil
	}
	return nil, fmt.Errorf("json: unsupported node %T", n)
}

// Extract parses JSON-encoded data to a Bencode value, using path for
// position information in errors. The data must hold exactly one JSON value.
func Extract(path string, data []byte) (ast.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var x interface{}
	if err := dec.Decode(&x); err != nil {
		return nil, syntaxError(path, err)
	}
	rest := data[dec.InputOffset():]
	if trimmed := bytes.TrimLeft(rest, " \t\r\n"); len(trimmed) > 0 {
		offset := len(data) - len(trimmed)
		return nil, errors.Newf(errors.TrailingData, position(path, offset),
			"invalid JSON for file %q: trailing data after value", path)
	}
	return fromValue(x, "")
}

func syntaxError(path string, err error) error {
	pos := token.Position{Filename: path, Offset: -1}
	if synErr, ok := err.(*json.SyntaxError); ok {
		pos = position(path, int(synErr.Offset-1))
	}
	return errors.Wrapf(err, errors.NoKind, pos, "invalid JSON for file %q", path)
}

func position(path string, offset int) token.Position {
	return token.MakePos(max(offset, 0)).Position(path)
}

// fromValue converts a value decoded with UseNumber. The path names the
// location of x in the document for error messages.
func fromValue(x interface{}, path string) (ast.Node, error) {
	switch x := x.(type) {
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return nil, fmt.Errorf("json: %snumber %s is not a 64-bit integer", at(path), x)
		}
		return ast.NewInt(i), nil

	case string:
		return ast.NewString(x), nil

	case []interface{}:
		l := &ast.List{Elts: make([]ast.Node, len(x))}
		for i, e := range x {
			n, err := fromValue(e, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			l.Elts[i] = n
		}
		return l, nil

	case map[string]interface{}:
		d := ast.NewDict(nil)
		for k, e := range x {
			n, err := fromValue(e, member(path, k))
			if err != nil {
				return nil, err
			}
			d.Fields[k] = n
		}
		return d, nil

	case nil:
		return nil, fmt.Errorf("json: %snull has no Bencode representation", at(path))
	case bool:
		return nil, fmt.Errorf("json: %sboolean has no Bencode representation", at(path))
	}
	return nil, fmt.Errorf("json: %sunsupported value %T", at(path), x)
}

func member(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func at(path string) string {
	if path == "" {
		return ""
	}
	return path + ": "
}
