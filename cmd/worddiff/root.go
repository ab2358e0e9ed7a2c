// Copyright 2025 Florian Zenker (flo@znkr.io)
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
	"io"

	"github.com/spf13/cobra"
)

// Set by the linker.
var version = "dev"

func newRootCmd(stdin io.Reader) *cobra.Command {
	root := &cobra.Command{
		Use:           "worddiff",
		Short:         "Compare texts word by word",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(
		newDiffCmd(stdin),
		newServeCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("worddiff version %s\n", version)
		},
	}
}
