// Copyright 2026 walteh LLC
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

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// buildVersion describes the running binary
type buildVersion struct {
	Module   string
	Revision string
	Time     string
	Dirty    bool
}

// readBuildVersion extracts the module version and vcs stamps embedded by the go tool
func readBuildVersion(bi *debug.BuildInfo) buildVersion {
	v := buildVersion{Module: "dev"}
	if bi == nil {
		return v
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		v.Module = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			v.Revision = s.Value
		case "vcs.time":
			v.Time = s.Value
		case "vcs.modified":
			v.Dirty = s.Value == "true"
		}
	}
	return v
}

// String renders the version on one line, e.g. "mdfmt v1.2.0 (3f2a9c1, dirty) go1.23.5 linux/amd64"
func (v buildVersion) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mdfmt %s", v.Module)

	var stamps []string
	if v.Revision != "" {
		rev := v.Revision
		if len(rev) > 7 {
			rev = rev[:7]
		}
		stamps = append(stamps, rev)
	}
	if v.Time != "" {
		stamps = append(stamps, v.Time)
	}
	if v.Dirty {
		stamps = append(stamps, "dirty")
	}
	if len(stamps) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(stamps, ", "))
	}

	fmt.Fprintf(&b, " %s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return b.String()
}

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			bi, _ := debug.ReadBuildInfo()
			v := readBuildVersion(bi)
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v.Module)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "print only the version")
	return cmd
}
