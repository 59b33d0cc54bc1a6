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
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newVetCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet [files]",
		Short: "validate Bencode files",
		Long: `vet parses each of the given files and reports any errors.

A file named "-" is read from stdin, which is the default when no files are
given. The exit status is non-zero if any file is invalid.

Errors are reported with the byte offset at which they were detected:

	$ bencode vet bad.torrent
	negative zero is not permitted:
	    bad.torrent:2
`,
		RunE: mkRunE(c, runVet),
	}
	return cmd
}

func runVet(cmd *Command, args []string) error {
	opts, err := parserOptions(cmd)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	g := new(errgroup.Group)
	if flagTrace.Bool(cmd) {
		g.SetLimit(1) // keep traces of different files apart
	} else {
		g.SetLimit(runtime.GOMAXPROCS(0))
	}
	errs := make([]error, len(args))
	for i, name := range args {
		g.Go(func() error {
			_, _, errs[i] = parseArg(cmd, name, opts)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		exitOnErr(cmd, err, false)
	}
	return nil
}
