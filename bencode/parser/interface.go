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

// This file contains the exported entry points for invoking the parser.

package parser

import (
	"io"
	"os"

	"github.com/bencodex/go/bencode/ast"
	"github.com/bencodex/go/internal/source"
)

// Option specifies a parse option.
type Option interface {
	apply(cfg *Config)
}

var _ Option = Config{}

// DefaultMaxDepth is the nesting limit used when no [MaxDepth] option is
// given.
const DefaultMaxDepth = 512

// Config represents the end result of applying a set of options.
// The zero value is not OK to use: use [NewConfig] to construct
// a Config value before using it.
//
// Config itself implements [Option] by overwriting the
// entire configuration.
type Config struct {
	// valid is set by NewConfig and is used to check
	// that a Config has been created correctly.
	valid bool

	// Mode holds a bitmask of boolean parser options.
	Mode Mode

	// MaxDepth limits how deeply lists and dictionaries may nest.
	// Zero means no limit.
	MaxDepth int

	// MaxLength limits the declared length of any byte string.
	// Zero means no limit.
	MaxLength int64

	// TraceOutput receives the trace when the Trace mode is set.
	// If nil, the trace is written to os.Stderr.
	TraceOutput io.Writer
}

// apply implements [Option]
func (cfg Config) apply(cfg1 *Config) {
	if !cfg.valid {
		panic("zero parser.Config value used; use parser.NewConfig!")
	}
	*cfg1 = cfg
}

// NewConfig returns the configuration containing all default values
// with the given options applied.
func NewConfig(opts ...Option) Config {
	return Config{
		valid:    true,
		MaxDepth: DefaultMaxDepth,
	}.Apply(opts...)
}

// Apply applies all the given options to cfg and
// returns the resulting configuration.
func (cfg Config) Apply(opts ...Option) Config {
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	return cfg
}

// IsValid reports whether cfg is valid; that
// is, it has been created with [NewConfig].
func (cfg Config) IsValid() bool {
	return cfg.valid
}

// optionFunc implements [Option] for a function.
type optionFunc func(cfg *Config)

func (f optionFunc) apply(cfg *Config) {
	f(cfg)
}

// A Mode value is a set of flags (or 0).
// It controls optional parser functionality.
//
// Mode implements [Option] by or-ing all its bits
// with [Config.Mode].
type Mode uint

const (
	// StrictKeys causes dictionaries with duplicate keys, or with keys
	// not in ascending byte order, to be rejected. Without it, keys may
	// appear in any order and the last of several equal keys wins.
	StrictKeys Mode = 1 << iota

	// Trace causes parsing to print a trace of parsed productions.
	Trace
)

// apply implements [Option].
func (m Mode) apply(c *Config) {
	c.Mode |= m
}

// MaxDepth limits the nesting depth of lists and dictionaries to n.
// A value of zero or less disables the limit.
func MaxDepth(n int) Option {
	return optionFunc(func(c *Config) {
		c.MaxDepth = max(n, 0)
	})
}

// MaxLength limits the declared length of byte strings to n bytes.
// A value of zero or less disables the limit.
func MaxLength(n int64) Option {
	return optionFunc(func(c *Config) {
		c.MaxLength = max(n, 0)
	})
}

// TraceOutput sets the destination of the trace printed in Trace mode.
func TraceOutput(w io.Writer) Option {
	return optionFunc(func(c *Config) {
		c.TraceOutput = w
	})
}

// Parse parses a single Bencode value and returns the corresponding node.
// The source may be provided via the filename of a file, or via the src
// parameter.
//
// If src != nil, Parse parses the source from src and the filename is
// only used when recording position information. The type of the argument
// for the src parameter must be string, []byte, or io.Reader.
// If src == nil, Parse parses the file specified by filename.
//
// The input must hold exactly one value; trailing bytes are an error.
// If the source couldn't be read or is malformed, the returned node is nil
// and the error describes the first failure.
func Parse(filename string, src any, opts ...Option) (ast.Node, error) {
	r, err := source.ByteReader(filename, src)
	if err != nil {
		return nil, err
	}
	var p parser
	p.init(filename, r, opts)
	return p.parseFile()
}

// ParseReader parses a single Bencode value from r. It is like Parse
// without a file name.
func ParseReader(r io.ByteReader, opts ...Option) (ast.Node, error) {
	var p parser
	p.init("", r, opts)
	return p.parseFile()
}

func (cfg *Config) traceOutput() io.Writer {
	if cfg.TraceOutput != nil {
		return cfg.TraceOutput
	}
	return os.Stderr
}
