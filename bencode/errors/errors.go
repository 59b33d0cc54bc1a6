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

// Package errors defines shared types for handling Bencode errors.
//
// Every error produced while decoding carries the byte offset at which it
// was detected and a [Kind] classifying the failure. A Kind is itself an
// error value, so callers can test for a class of failure with [Is]:
//
//	if errors.Is(err, errors.LeadingZero) { ... }
package errors // import "github.com/bencodex/go/bencode/errors"

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bencodex/go/bencode/token"
)

// New is a convenience wrapper for errors.New in the core library.
// It does not return a Bencode error.
func New(msg string) error {
	return errors.New(msg)
}

// Is reports whether any error in err's chain matches target.
//
// It is a wrapper around errors.Is in the core library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target, and if so,
// sets target to that error value and returns true.
//
// It is a wrapper around errors.As in the core library.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if err's
// type contains an Unwrap method returning error. Otherwise, Unwrap returns
// nil.
//
// It is a wrapper around errors.Unwrap in the core library.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Error is the common error message.
type Error interface {
	// Position returns the position of the offending byte.
	Position() token.Position

	// Kind classifies the error.
	Kind() Kind

	// Error reports the error message without position information.
	Error() string
}

// In a parse error the position, if valid, points at the offending byte
// and the error condition is described by msg.
type posError struct {
	pos  token.Position
	kind Kind
	msg  string

	// The underlying error that triggered this one, if any.
	err error
}

// Newf creates an Error of the given kind at pos with the associated
// formatted message.
func Newf(kind Kind, pos token.Position, format string, args ...interface{}) Error {
	return &posError{
		pos:  pos,
		kind: kind,
		msg:  fmt.Sprintf(format, args...),
	}
}

// Wrapf creates an Error of the given kind at pos with the associated
// formatted message, wrapping err.
func Wrapf(err error, kind Kind, pos token.Position, format string, args ...interface{}) Error {
	return &posError{
		pos:  pos,
		kind: kind,
		msg:  fmt.Sprintf(format, args...),
		err:  err,
	}
}

func (e *posError) Position() token.Position { return e.pos }
func (e *posError) Kind() Kind                { return e.kind }

// Error implements the error interface.
func (e *posError) Error() string {
	if e.err == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.err.Error()
	}
	return e.msg + ": " + e.err.Error()
}

func (e *posError) Unwrap() error { return e.err }

// Is reports whether target is the Kind of e.
func (e *posError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.kind
}

// KindOf returns the Kind of the first Error in err's chain, or NoKind if
// there is none.
func KindOf(err error) Kind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return NoKind
}

// Position returns the position of the first Error in err's chain. The
// result is invalid if there is no such error.
func Position(err error) token.Position {
	var e Error
	if errors.As(err, &e) {
		return e.Position()
	}
	return token.Position{Offset: -1}
}

// Config is used to configure the printing of errors.
type Config struct {
	// Format formats the given string and arguments and writes it to w.
	// It is used for all printing. If nil, fmt.Fprintf is used.
	Format func(w io.Writer, format string, args ...interface{})

	// Cwd, if set, makes file names in positions relative to it.
	Cwd string

	// ToSlash sets whether to use Unix paths. Mostly used for testing.
	ToSlash bool
}

// Print is a utility function that prints err to w followed by the position
// of the offending byte, if known:
//
//	leading zero is not permitted:
//	    file.torrent:3
//
// A nil cfg is treated as the zero Config.
func Print(w io.Writer, err error, cfg *Config) {
	if err == nil {
		return
	}
	if cfg == nil {
		cfg = &Config{}
	}
	printf := cfg.Format
	if printf == nil {
		printf = func(w io.Writer, format string, args ...interface{}) {
			fmt.Fprintf(w, format, args...)
		}
	}
	var e Error
	if !errors.As(err, &e) {
		printf(w, "%v\n", err)
		return
	}
	printf(w, "%v", err)
	pos := e.Position()
	if pos.IsValid() {
		pos.Filename = relPath(pos.Filename, cfg)
		printf(w, ":\n    %v", pos)
	}
	printf(w, "\n")
}

// Details is a convenience wrapper for Print to return the error text as a
// string.
func Details(err error, cfg *Config) string {
	var b strings.Builder
	Print(&b, err, cfg)
	return b.String()
}

func relPath(path string, cfg *Config) string {
	if path == "" {
		return path
	}
	if cfg.Cwd != "" {
		if p, err := filepath.Rel(cfg.Cwd, path); err == nil {
			path = p
			// Some IDEs (e.g. VSCode) only recognize a path if it starts
			// with a dot. This also helps to distinguish between local
			// files and builtin packages.
			if !strings.HasPrefix(path, ".") {
				path = fmt.Sprintf(".%c%s", filepath.Separator, path)
			}
		}
	}
	if cfg.ToSlash {
		path = filepath.ToSlash(path)
	}
	return path
}
