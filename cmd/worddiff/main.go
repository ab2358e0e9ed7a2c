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

// Command worddiff compares texts word by word, on the command line or as an HTTP service.
//
// Usage:
//
//	worddiff diff [--color=auto|always|never] [--json] [--stat] FILE1 FILE2
//	worddiff serve [--config FILE] [--addr ADDR] [--log-level LEVEL] [--log-format FORMAT]
//	worddiff version
//
// The diff command exits with status 0 if the inputs are identical, 1 if they differ, and 2 if
// an error occurred.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// errDiffer is returned by the diff command if the inputs differ.
var errDiffer = errors.New("inputs differ")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(stdin)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errDiffer):
		return 1
	default:
		fmt.Fprintf(stderr, "worddiff: %v\n", err)
		return 2
	}
}
