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

package tokenize

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "single-word",
			in:   "hello",
			want: []Token{{"hello", Word}},
		},
		{
			name: "only-whitespace",
			in:   " \t\n ",
			want: []Token{{" \t\n ", Separator}},
		},
		{
			name: "words",
			in:   "the quick fox",
			want: []Token{
				{"the", Word},
				{" ", Separator},
				{"quick", Word},
				{" ", Separator},
				{"fox", Word},
			},
		},
		{
			name: "leading-and-trailing-whitespace",
			in:   "  a b\n",
			want: []Token{
				{"  ", Separator},
				{"a", Word},
				{" ", Separator},
				{"b", Word},
				{"\n", Separator},
			},
		},
		{
			name: "punctuation-stays-with-words",
			in:   "Hello, world!",
			want: []Token{
				{"Hello,", Word},
				{" ", Separator},
				{"world!", Word},
			},
		},
		{
			name: "no-case-folding",
			in:   "Go go",
			want: []Token{
				{"Go", Word},
				{" ", Separator},
				{"go", Word},
			},
		},
		{
			name: "unicode-whitespace",
			in:   "a b　c",
			want: []Token{
				{"a", Word},
				{" ", Separator},
				{"b", Word},
				{"　", Separator},
				{"c", Word},
			},
		},
		{
			name: "multi-byte-words",
			in:   "Hello, 世界",
			want: []Token{
				{"Hello,", Word},
				{" ", Separator},
				{"世界", Word},
			},
		},
		{
			name: "invalid-utf8",
			in:   "a\xff b",
			want: []Token{
				{"a\xff", Word},
				{" ", Separator},
				{"b", Word},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) result is different [-want,+got]:\n%s", tt.in, diff)
			}
		})
	}
}

func FuzzTokenize(f *testing.F) {
	f.Add("")
	f.Add("the quick fox")
	f.Add("  leading\tand trailing \n")
	f.Add("a\xffb \xfe")
	f.Fuzz(func(t *testing.T, in string) {
		tokens := Tokenize(in)

		var sb strings.Builder
		for i, tok := range tokens {
			if tok.Text == "" {
				t.Fatalf("token %d is empty", i)
			}
			if i > 0 && tokens[i-1].Kind == tok.Kind {
				t.Fatalf("tokens %d and %d have the same kind %v", i-1, i, tok.Kind)
			}
			if tok.Kind != kindOf(tok.Text) {
				t.Fatalf("token %d has kind %v, want %v", i, tok.Kind, kindOf(tok.Text))
			}
			sb.WriteString(tok.Text)
		}
		if got := sb.String(); got != in {
			t.Errorf("concatenated tokens = %q, want %q", got, in)
		}
	})
}

func BenchmarkTokenize(b *testing.B) {
	text := strings.Repeat("lorem ipsum dolor sit amet,\nconsectetur adipiscing elit ", 1000)
	b.ReportAllocs()
	for b.Loop() {
		_ = Tokenize(text)
	}
}
