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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/mod/module"
)

func newVersionCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print bencode version",
		Long:  ``,
		Args:  cobra.NoArgs,
		RunE:  mkRunE(c, runVersion),
	}
	return cmd
}

const defaultVersion = "(devel)"

// version may be set with
// -ldflags='-X github.com/bencodex/go/cmd/bencode/cmd.version=<version>'.
var version = defaultVersion

func runVersion(cmd *Command, args []string) error {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("cannot read build information")
	}
	if v := os.Getenv("BENCODE_VERSION_TEST_CFG"); v != "" {
		var extra []debug.BuildSetting
		if err := json.Unmarshal([]byte(v), &extra); err != nil {
			return err
		}
		bi.Settings = append(bi.Settings, extra...)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "bencode version %s\n\n", moduleVersion(bi))
	fmt.Fprintf(w, "go version %s\n", runtime.Version())
	for _, s := range bi.Settings {
		if s.Value != "" {
			fmt.Fprintf(w, "%16s %s\n", s.Key, s.Value)
		}
	}
	return nil
}

// moduleVersion reports the version of the main module. A version set at
// link time takes precedence over the one recorded by the go command. If
// neither is known, a pseudo-version is derived from the VCS settings.
func moduleVersion(bi *debug.BuildInfo) string {
	if version != defaultVersion {
		return version
	}
	if v := bi.Main.Version; v != "" && v != defaultVersion {
		return v
	}

	var vcsTime time.Time
	var vcsRevision string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.time":
			// An invalid time leaves the zero timestamp.
			vcsTime, _ = time.Parse(time.RFC3339Nano, s.Value)
		case "vcs.revision":
			vcsRevision = s.Value
			// cmd/go uses a 12 character commit hash prefix.
			if len(vcsRevision) > 12 {
				vcsRevision = vcsRevision[:12]
			}
		}
	}
	if vcsRevision == "" {
		return defaultVersion
	}
	return module.PseudoVersion("", "", vcsTime, vcsRevision)
}
