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

// Package render writes word diffs for humans.
package render

import (
	"bytes"
	"io"
	"strings"

	"znkr.io/worddiff"
	"znkr.io/worddiff/render/color"
)

// Markers used by [Plain]. They are the same as the ones used by GNU wdiff.
const (
	RemovedStart = "[-"
	RemovedEnd   = "-]"
	AddedStart   = "{+"
	AddedEnd     = "+}"
)

const reset = "\033[0m"

// Plain writes runs to w, enclosing removed text in [- -] and added text in {+ +}. Unchanged text
// is written as is.
func Plain(w io.Writer, runs []worddiff.Run) error {
	var b bytes.Buffer
	for _, r := range runs {
		switch r.Tag {
		case worddiff.Unchanged:
			b.WriteString(r.Value)
		case worddiff.Removed:
			b.WriteString(RemovedStart)
			b.WriteString(r.Value)
			b.WriteString(RemovedEnd)
		case worddiff.Added:
			b.WriteString(AddedStart)
			b.WriteString(r.Value)
			b.WriteString(AddedEnd)
		default:
			panic("never reached")
		}
	}
	_, err := w.Write(b.Bytes())
	return err
}

// ANSI writes runs to w using terminal colors. By default, removed text is red and struck through,
// added text is green, and unchanged text is uncolored. Use the options from package color to
// configure other colors.
//
// Colors are reset before every newline so that they don't spill into the next line when the
// output is paged.
func ANSI(w io.Writer, runs []worddiff.Run, opts ...color.Option) error {
	cc := color.FromOptions(opts)
	var b bytes.Buffer
	for _, r := range runs {
		var code string
		switch r.Tag {
		case worddiff.Unchanged:
			code = cc.Unchanged
		case worddiff.Removed:
			code = cc.Removed
		case worddiff.Added:
			code = cc.Added
		default:
			panic("never reached")
		}
		writeColored(&b, r.Value, code)
	}
	_, err := w.Write(b.Bytes())
	return err
}

func writeColored(b *bytes.Buffer, text, code string) {
	if code == "" {
		b.WriteString(text)
		return
	}
	for text != "" {
		line, rest, found := strings.Cut(text, "\n")
		if line != "" {
			b.WriteString(code)
			b.WriteString(line)
			b.WriteString(reset)
		}
		if found {
			b.WriteByte('\n')
		}
		text = rest
	}
}
