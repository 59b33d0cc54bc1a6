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
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bencodex/go/bencode/ast"
	"github.com/bencodex/go/bencode/format"
	"github.com/bencodex/go/encoding/json"
	"github.com/bencodex/go/encoding/yaml"
)

func newImportCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [--in json|yaml] [-o file] [file]",
		Short: "convert JSON or YAML to Bencode",
		Long: `import converts a JSON or YAML file to canonical Bencode.

The following file formats are currently supported:

  Format       Extensions
	JSON       .json
	YAML       .yaml .yml

The format is derived from the file extension unless --in is given. Without
a file, or for the file "-", stdin is read as JSON.

Only objects, arrays, strings and integers have a Bencode counterpart; other
values, such as floating point numbers, booleans and null, are an error.
A YAML stream of several documents becomes a list.

Examples:

  # Create a Bencode file from JSON:
  $ bencode import -o meta.torrent meta.json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: mkRunE(c, runImport),
	}
	cmd.Flags().String(string(flagIn), "", "input format (json or yaml)")
	addOutFileFlag(cmd.Flags())

	return cmd
}

func runImport(cmd *Command, args []string) error {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}

	in := flagIn.String(cmd)
	if in == "" {
		switch filepath.Ext(name) {
		case ".yaml", ".yml":
			in = "yaml"
		default:
			in = "json"
		}
	}

	var extract func(name string, b []byte) (ast.Node, error)
	switch in {
	case "json":
		extract = json.Extract
	case "yaml":
		extract = func(name string, b []byte) (ast.Node, error) {
			return yaml.Extract(name, b)
		}
	default:
		return fmt.Errorf("import: unknown format %q", in)
	}

	b, err := readArg(name)
	exitOnErr(cmd, err, true)

	n, err := extract(name, b)
	exitOnErr(cmd, err, true)
	cmd.log.Debug("imported file", zap.String("file", name), zap.String("format", in))

	out, err := format.Node(n)
	exitOnErr(cmd, err, true)
	return writeOut(cmd, out)
}
