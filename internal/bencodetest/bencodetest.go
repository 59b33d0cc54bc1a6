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


// Package bencodetest is a helper package for test packages in this module.
// As such it should only be imported in _test.go files.
package bencodetest

import (
	"fmt"
	"os"
)

// UpdateGoldenFiles determines whether testscript scripts and golden txtar
// tests should update their archives in the event of cmp failures. It
// corresponds to testscript.Params.UpdateGoldenFiles.
var UpdateGoldenFiles = os.Getenv("BENCODE_UPDATE") != ""

// Long reports whether long running tests were requested.
var Long = os.Getenv("BENCODE_LONG") != ""

// Condition adds support for module-specific testscript conditions within
// testscript scripts. The canonical case being [long], which evaluates to
// true when BENCODE_LONG is set.
func Condition(cond string) (bool, error) {
	switch cond {
	case "long":
		return Long, nil
	}
	return false, fmt.Errorf("unknown condition %v", cond)
}
