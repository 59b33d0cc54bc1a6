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


package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bencodex/go/bencode/ast"
	"github.com/bencodex/go/bencode/errors"
	"github.com/bencodex/go/bencode/parser"
	"github.com/bencodex/go/internal/source"
)

// stdin is read for the file argument "-".
var stdin io.Reader = os.Stdin

var inTest = false

func getLang() language.Tag {
	loc := os.Getenv("LC_ALL")
	if loc == "" {
		loc = os.Getenv("LANG")
	}
	loc = strings.Split(loc, ".")[0]
	return language.Make(loc)
}

func exitOnErr(cmd *Command, err error, fatal bool) {
	if err == nil {
		return
	}

	// Link x/text as our localizer.
	p := message.NewPrinter(getLang())
	format := func(w io.Writer, format string, args ...interface{}) {
		p.Fprintf(w, format, args...)
	}

	cwd, _ := os.Getwd()

	w := &bytes.Buffer{}
	errors.Print(w, err, &errors.Config{
		Format:  format,
		Cwd:     cwd,
		ToSlash: inTest,
	})

	b := w.Bytes()
	_, _ = cmd.Stderr().Write(b)
	if fatal {
		exit()
	}
}

// parserOptions returns the parser options selected by the global flags.
func parserOptions(cmd *Command) ([]parser.Option, error) {
	var opts []parser.Option
	if flagStrict.Bool(cmd) {
		opts = append(opts, parser.StrictKeys)
	}
	if flagTrace.Bool(cmd) {
		opts = append(opts, parser.Trace, parser.TraceOutput(cmd.OutOrStderr()))
	}

	depth, err := flagMaxDepth.Int64(cmd, envMaxDepth)
	if err != nil {
		return nil, err
	}
	length, err := flagMaxLength.Int64(cmd, envMaxLength)
	if err != nil {
		return nil, err
	}
	opts = append(opts, parser.MaxDepth(int(depth)), parser.MaxLength(length))
	return opts, nil
}

// readArg returns the contents of the named file, or of stdin for "-".
func readArg(name string) ([]byte, error) {
	if name == "-" {
		return source.ReadAll(name, stdin)
	}
	return source.ReadAll(name, nil)
}

// parseArg reads and parses the named file. It also returns the bytes read.
func parseArg(cmd *Command, name string, opts []parser.Option) (ast.Node, []byte, error) {
	b, err := readArg(name)
	if err != nil {
		return nil, nil, err
	}
	start := time.Now()
	n, err := parser.Parse(name, b, opts...)
	if err != nil {
		cmd.log.Debug("parse failed", zap.String("file", name), zap.Error(err))
		return nil, b, err
	}
	cmd.log.Debug("parsed file",
		zap.String("file", name),
		zap.Int("bytes", len(b)),
		zap.Duration("elapsed", time.Since(start)))
	return n, b, nil
}

// writeOut writes b to the file named by the outfile flag, or to stdout
// if the flag is empty or "-".
func writeOut(cmd *Command, b []byte) error {
	if name := flagOutFile.String(cmd); name != "" && name != "-" {
		cmd.log.Debug("writing file", zap.String("file", name), zap.Int("bytes", len(b)))
		return os.WriteFile(name, b, 0o666)
	}
	_, err := cmd.OutOrStdout().Write(b)
	return err
}
