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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bencodex/go/bencode/ast"
	"github.com/bencodex/go/encoding/json"
	"github.com/bencodex/go/encoding/yaml"
)

// newExportCmd creates an export command
func newExportCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [--out json|yaml] [file]",
		Short: "output Bencode data in a standard format",
		Long: `export parses a Bencode file and prints its value as JSON or YAML.

Without a file, or for the file "-", stdin is read.

Integers are output as numbers, lists as arrays and dictionaries as objects
with sorted keys. Byte strings are output as strings; for JSON they must be
valid UTF-8, YAML uses !!binary for byte strings that are not.

Examples:

	# show a torrent file's metadata
	bencode export debian.torrent

	# as YAML
	bencode export --out yaml debian.torrent

Formats
The following formats are recognized:

json    output as JSON
        The default.

yaml    output as YAML
`,
		Args: cobra.MaximumNArgs(1),
		RunE: mkRunE(c, runExport),
	}
	cmd.Flags().String(string(flagOut), "json", "output format (json or yaml)")
	addOutFileFlag(cmd.Flags())

	return cmd
}

func runExport(cmd *Command, args []string) error {
	opts, err := parserOptions(cmd)
	if err != nil {
		return err
	}
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}

	var encode func(ast.Node) ([]byte, error)
	switch out := flagOut.String(cmd); out {
	case "json":
		encode = json.Encode
	case "yaml":
		encode = yaml.Encode
	default:
		return fmt.Errorf("export: unknown format %q", out)
	}

	n, _, err := parseArg(cmd, name, opts)
	exitOnErr(cmd, err, true)

	b, err := encode(n)
	exitOnErr(cmd, err, true)
	return writeOut(cmd, b)
}
