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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bencodex/go/bencode/format"
)

func newFmtCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [-w] [--check] [files]",
		Short: "rewrite Bencode files in canonical form",
		Long: `fmt parses the given files and prints their canonical form to stdout.

The canonical form sorts dictionary keys by their raw bytes. With -w the
files are rewritten in place instead; files already in canonical form are
left untouched. Without files, or for the file "-", stdin is read.

With --check nothing is written; the names of the files that are not in
canonical form are printed and the exit status is non-zero if there are any.
`,
		RunE: mkRunE(c, runFmt),
	}

	cmd.Flags().BoolP(string(flagWrite), "w", false, "write result to the source file instead of stdout")
	cmd.Flags().Bool(string(flagCheck), false, "exits with non-zero status if any files are not formatted")

	return cmd
}

func runFmt(cmd *Command, args []string) error {
	opts, err := parserOptions(cmd)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	write := flagWrite.Bool(cmd)
	check := flagCheck.Bool(cmd)
	var badlyFormattedFiles []string

	for _, name := range args {
		n, original, err := parseArg(cmd, name, opts)
		if err != nil {
			exitOnErr(cmd, err, false)
			continue
		}
		formatted, err := format.Node(n)
		exitOnErr(cmd, err, true)

		switch {
		case check:
			if !bytes.Equal(formatted, original) {
				badlyFormattedFiles = append(badlyFormattedFiles, name)
			}

		case write && name != "-":
			if bytes.Equal(formatted, original) {
				continue
			}
			info, err := os.Stat(name)
			exitOnErr(cmd, err, true)
			cmd.log.Debug("rewriting file", zap.String("file", name))
			err = os.WriteFile(name, formatted, info.Mode().Perm())
			exitOnErr(cmd, err, true)

		default:
			_, err := cmd.OutOrStdout().Write(formatted)
			exitOnErr(cmd, err, true)
		}
	}

	if check && len(badlyFormattedFiles) > 0 {
		cwd, _ := os.Getwd()
		stdout := cmd.OutOrStdout()
		for _, f := range badlyFormattedFiles {
			if f == "-" {
				continue
			}

			relPath, err := filepath.Rel(cwd, f)
			if err != nil {
				relPath = f
			}
			fmt.Fprintln(stdout, relPath)
		}
		exit()
	}
	return nil
}
