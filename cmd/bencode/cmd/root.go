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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bencodex/go/bencode/errors"
)

type runFunction func(cmd *Command, args []string) error

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		return f(c, args)
	}
}

// newRootCmd creates the base command when called without any subcommands
func newRootCmd() *Command {
	cmd := &cobra.Command{
		Use:   "bencode",
		Short: "bencode validates, formats and converts Bencode files.",
		Long: `bencode works with files in the Bencode format, the encoding used by
BitTorrent metainfo files and tracker responses.

Bencode knows four kinds of value:

	i42e         an integer
	4:spam       a byte string, prefixed by its length
	l4:spami1ee  a list
	d3:fooi1ee   a dictionary with byte string keys

A file holds exactly one value. The canonical form of a value has its
dictionary keys sorted and contains no redundant bytes; it is what
'bencode fmt' produces.

Use 'bencode vet' to check files, 'bencode export' to view them as JSON or
YAML and 'bencode import' to create them from JSON or YAML.`,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &Command{Command: cmd, root: cmd, log: zap.NewNop()}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		c.log = newLogger(cmd.ErrOrStderr(), flagVerbose.Bool(c))
		return nil
	}

	subCommands := []*cobra.Command{
		newExportCmd(c),
		newFmtCmd(c),
		newImportCmd(c),
		newVersionCmd(c),
		newVetCmd(c),
	}

	addGlobalFlags(cmd.PersistentFlags())

	for _, sub := range subCommands {
		cmd.AddCommand(sub)
	}

	return c
}

// MainTest is like Main, runs the bencode tool and returns the code for
// passing to os.Exit.
func MainTest() int {
	inTest = true
	return Main()
}

// Main runs the bencode tool and returns the code for passing to os.Exit.
func Main() int {
	err := mainErr(context.Background(), os.Args[1:])
	if err != nil {
		if err != ErrPrintedError {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}

func mainErr(ctx context.Context, args []string) error {
	cmd, err := New(args)
	if err != nil {
		return err
	}
	err = cmd.Run(ctx)
	stdin = os.Stdin
	return err
}

type Command struct {
	// The currently active command.
	*cobra.Command

	root *cobra.Command

	log *zap.Logger

	hasErr bool
}

type errWriter Command

func (w *errWriter) Write(b []byte) (int, error) {
	c := (*Command)(w)
	c.hasErr = true
	return c.Command.OutOrStderr().Write(b)
}

// Hint: search for uses of OutOrStderr other than the one here to see
// which output does not trigger a non-zero exit code. os.Stderr may never
// be used directly.

// Stderr returns a writer that should be used for error messages.
func (c *Command) Stderr() io.Writer {
	return (*errWriter)(c)
}

func (c *Command) SetOutput(w io.Writer) {
	c.root.SetOutput(w)
}

// SetInput sets the reader used for the "-" file argument.
func (c *Command) SetInput(r io.Reader) {
	stdin = r
}

// ErrPrintedError indicates error messages have been printed to stderr.
var ErrPrintedError = errors.New("terminating because of errors")

func (c *Command) Run(ctx context.Context) (err error) {
	defer recoverError(&err)
	defer func() { _ = c.log.Sync() }()

	if err := c.root.ExecuteContext(ctx); err != nil {
		return err
	}
	if c.hasErr {
		return ErrPrintedError
	}
	return nil
}

func recoverError(err *error) {
	switch e := recover().(type) {
	case nil:
	case panicError:
		*err = e.Err
	default:
		panic(e)
	}
	// We use panic to escape, instead of os.Exit
}

// New creates the bencode command for the given arguments.
func New(args []string) (*Command, error) {
	cmd := newRootCmd()
	cmd.root.SetArgs(args)
	return cmd, nil
}

type panicError struct {
	Err error
}

func exit() {
	panic(panicError{ErrPrintedError})
}
