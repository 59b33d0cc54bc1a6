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

import (
	"fmt"
	"math"
)

// From converts a native Go value to a Node.
//
// Supported are all integer types, string and []byte, an existing Node, and
// slices and string-keyed maps of supported values, recursively. Unsigned
// values above math.MaxInt64 cannot be represented and yield an error.
func From(v interface{}) (Node, error) {
	switch x := v.(type) {
	case Node:
		return x, nil
	case int:
		return NewInt(int64(x)), nil
	case int8:
		return NewInt(int64(x)), nil
	case int16:
		return NewInt(int64(x)), nil
	case int32:
		return NewInt(int64(x)), nil
	case int64:
		return NewInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return NewInt(int64(x)), nil
	case uint16:
		return NewInt(int64(x)), nil
	case uint32:
		return NewInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case string:
		return NewString(x), nil
	case []byte:
		return NewBytes(x), nil
	case []Node:
		return NewList(x...), nil
	case []string:
		l := make([]Node, len(x))
		for i, s := range x {
			l[i] = NewString(s)
		}
		return NewList(l...), nil
	case []interface{}:
		l := make([]Node, len(x))
		for i, e := range x {
			n, err := From(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			l[i] = n
		}
		return NewList(l...), nil
	case map[string]Node:
		return NewDict(x), nil
	case map[string]interface{}:
		d := NewDict(make(map[string]Node, len(x)))
		for k, e := range x {
			n, err := From(e)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			d.Fields[k] = n
		}
		return d, nil
	}
	return nil, fmt.Errorf("unsupported type %T", v)
}

func fromUint(x uint64) (Node, error) {
	if x > math.MaxInt64 {
		return nil, fmt.Errorf("value %d overflows int64", x)
	}
	return NewInt(int64(x)), nil
}
