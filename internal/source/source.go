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

// Package source contains utility functions that standardize reading
// Bencode input across packages.
package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadAll returns the whole input named by filename and src. A nil src
// reads the file; otherwise src must be a string, a []byte or an
// [io.Reader]. A []byte, or the contents of a [bytes.Buffer], is returned
// without copying.
func ReadAll(filename string, src any) ([]byte, error) {
	switch src := src.(type) {
	case nil:
		return os.ReadFile(filename)
	case string:
		return []byte(src), nil
	case []byte:
		return src, nil
	case *bytes.Buffer:
		return src.Bytes(), nil
	case io.Reader:
		return io.ReadAll(src)
	}
	return nil, invalidSource(src)
}

// ByteReader returns a forward-only byte source for the input named by
// filename and src, accepting the same src values as [ReadAll]. An
// [io.Reader] that is not already an [io.ByteReader] is buffered.
func ByteReader(filename string, src any) (io.ByteReader, error) {
	switch src := src.(type) {
	case string:
		return strings.NewReader(src), nil
	case io.ByteReader:
		return src, nil
	case io.Reader:
		return bufio.NewReader(src), nil
	}
	b, err := ReadAll(filename, src)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

func invalidSource(src any) error {
	return fmt.Errorf("invalid source type %T", src)
}
