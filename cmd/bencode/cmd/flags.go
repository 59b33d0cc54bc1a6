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
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bencodex/go/bencode/parser"
)

// Common flags
const (
	flagCheck     flagName = "check"
	flagIn        flagName = "in"
	flagMaxDepth  flagName = "max-depth"
	flagMaxLength flagName = "max-length"
	flagOut       flagName = "out"
	flagOutFile   flagName = "outfile"
	flagStrict    flagName = "strict"
	flagTrace     flagName = "trace"
	flagVerbose   flagName = "verbose"
	flagWrite     flagName = "write"
)

// Environment variables providing defaults for the limit flags.
const (
	envMaxDepth  = "BENCODE_MAX_DEPTH"
	envMaxLength = "BENCODE_MAX_LENGTH"
)

func addGlobalFlags(f *pflag.FlagSet) {
	f.Bool(string(flagStrict), false,
		"reject dictionaries with duplicate or unsorted keys")
	f.Int(string(flagMaxDepth), parser.DefaultMaxDepth,
		"maximum nesting of lists and dictionaries, 0 for no limit (default from $"+envMaxDepth+")")
	f.Int64(string(flagMaxLength), 0,
		"maximum declared byte string length, 0 for no limit (default from $"+envMaxLength+")")
	f.Bool(string(flagTrace), false,
		"trace parsing")
	f.BoolP(string(flagVerbose), "v", false,
		"print information about progress")
}

func addOutFileFlag(f *pflag.FlagSet) {
	f.StringP(string(flagOutFile), "o", "",
		"write the result to the given file instead of stdout")
}

type flagName string

// ensureAdded detects if a flag is being used without it first being
// added to the flagSet. Because flagNames are global, it is quite
// easy to accidentally use a flag in a command without adding it to
// the flagSet.
func (f flagName) ensureAdded(cmd *Command) {
	if cmd.Flags().Lookup(string(f)) == nil {
		panic(fmt.Sprintf("Cmd %q uses flag %q without adding it", cmd.Name(), f))
	}
}

func (f flagName) Bool(cmd *Command) bool {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) String(cmd *Command) string {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetString(string(f))
	return v
}

// Int64 returns the value of an integer flag. If the flag was not set on
// the command line and the environment variable env is not empty, the
// variable provides the value instead of the flag default.
func (f flagName) Int64(cmd *Command, env string) (int64, error) {
	f.ensureAdded(cmd)
	flag := cmd.Flags().Lookup(string(f))
	if !flag.Changed && env != "" {
		if s := os.Getenv(env); s != "" {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid $%s value %q: must be an integer", env, s)
			}
			return v, nil
		}
	}
	return strconv.ParseInt(flag.Value.String(), 10, 64)
}
