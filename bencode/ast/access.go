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

package ast

import "fmt"

// A KindError reports a node that is not of the requested kind.
type KindError struct {
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("not a%s %v: got %v", article(e.Want), e.Want, e.Got)
}

func article(k Kind) string {
	if k == IntKind {
		return "n"
	}
	return ""
}

func kindOf(n Node) Kind {
	if n == nil {
		return BottomKind
	}
	return n.Kind()
}

// AsInt returns the value of an integer node.
func AsInt(n Node) (int64, error) {
	x, ok := n.(*Int)
	if !ok || x == nil {
		return 0, &KindError{Want: IntKind, Got: kindOf(n)}
	}
	return x.Value, nil
}

// AsBytes returns the bytes of a byte string node. The result aliases the
// node's storage and must not be modified.
func AsBytes(n Node) ([]byte, error) {
	x, ok := n.(*Bytes)
	if !ok || x == nil {
		return nil, &KindError{Want: BytesKind, Got: kindOf(n)}
	}
	return x.Value, nil
}

// AsString returns the bytes of a byte string node as a string.
func AsString(n Node) (string, error) {
	b, err := AsBytes(n)
	return string(b), err
}

// AsList returns the elements of a list node. The result aliases the
// node's storage and must not be modified.
func AsList(n Node) ([]Node, error) {
	x, ok := n.(*List)
	if !ok || x == nil {
		return nil, &KindError{Want: ListKind, Got: kindOf(n)}
	}
	return x.Elts, nil
}

// AsDict returns the fields of a dictionary node. The result aliases the
// node's storage and must not be modified.
func AsDict(n Node) (map[string]Node, error) {
	x, ok := n.(*Dict)
	if !ok || x == nil {
		return nil, &KindError{Want: DictKind, Got: kindOf(n)}
	}
	return x.Fields, nil
}
