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


// Package encoding contains subpackages to convert Bencode values to and from
// other data formats.
//
// The subpackages adopt the following naming convention:
//
//    Name        Direction        Example
//    Extract     x -> Bencode     Convert a JSON document to an ast.Node
//    Encode      Bencode -> x     Convert an ast.Node to YAML
//
// Only values with a counterpart in both formats convert; anything else is
// an error rather than being silently approximated.
package encoding
