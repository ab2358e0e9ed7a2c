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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"znkr.io/worddiff"
	"znkr.io/worddiff/render"
)

type diffFlags struct {
	color colorMode
	json  bool
	stat  bool
}

func newDiffCmd(stdin io.Reader) *cobra.Command {
	flags := diffFlags{color: colorAuto}
	cmd := &cobra.Command{
		Use:   "diff FILE1 FILE2",
		Short: "Compare two files word by word",
		Long: `Compare two files word by word.

Removed text is shown as [-text-] and added text as {+text+}, or in color on a terminal. Use "-"
to read one of the files from standard input.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, stdin, args[0], args[1], flags)
		},
	}
	cmd.Flags().Var(&flags.color, "color", "colorize the output: auto, always or never")
	cmd.Flags().BoolVar(&flags.json, "json", false, "print the diff as JSON")
	cmd.Flags().BoolVar(&flags.stat, "stat", false, "print a summary instead of the diff")
	cmd.MarkFlagsMutuallyExclusive("json", "stat")
	return cmd
}

func runDiff(cmd *cobra.Command, stdin io.Reader, name1, name2 string, flags diffFlags) error {
	if name1 == "-" && name2 == "-" {
		return errors.New("only one file can be read from standard input")
	}

	var text1, text2 string
	var g errgroup.Group
	g.Go(func() (err error) {
		text1, err = readInput(name1, stdin)
		return err
	})
	g.Go(func() (err error) {
		text2, err = readInput(name2, stdin)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	runs := worddiff.Diff(text1, text2)
	st := worddiff.Summarize(runs)
	out := cmd.OutOrStdout()

	var err error
	switch {
	case flags.json:
		if runs == nil {
			runs = []worddiff.Run{}
		}
		err = json.NewEncoder(out).Encode(struct {
			Diff []worddiff.Run `json:"diff"`
		}{runs})
	case flags.stat:
		_, err = fmt.Fprintf(out, "%d tokens added (%d bytes), %d tokens removed (%d bytes), %d tokens unchanged\n",
			st.Added, st.AddedBytes, st.Removed, st.RemovedBytes, st.Unchanged)
	default:
		err = writeRuns(out, runs, flags.color.enabled(out))
	}
	if err != nil {
		return fmt.Errorf("writing diff: %w", err)
	}

	if !st.Identical() {
		return errDiffer
	}
	return nil
}

// writeRuns renders runs to w and terminates the output with a newline if necessary.
func writeRuns(w io.Writer, runs []worddiff.Run, color bool) error {
	var b bytes.Buffer
	if color {
		_ = render.ANSI(&b, runs)
	} else {
		_ = render.Plain(&b, runs)
	}
	if b.Len() > 0 && !bytes.HasSuffix(b.Bytes(), []byte("\n")) {
		b.WriteByte('\n')
	}
	_, err := w.Write(b.Bytes())
	return err
}

func readInput(name string, stdin io.Reader) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
