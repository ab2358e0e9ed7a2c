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

// Package tokenize splits text into the units compared by the word diff: words and the whitespace
// between them.
package tokenize

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind uint8

const (
	Word      Kind = iota // A maximal run of non-whitespace characters
	Separator             // A maximal run of whitespace characters
)

// Token is a non-empty substring of the tokenized input.
//
// Two tokens are considered equal if their texts are equal. Since Kind is derived from Text, Token
// values can be compared with == directly.
type Token struct {
	Text string
	Kind Kind
}

// Tokenize splits text into alternating words and separators. Concatenating the texts of all
// tokens reproduces text exactly. An empty input results in a nil slice.
//
// Invalid UTF-8 is not whitespace and becomes part of a word.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	// Count first to allocate the output exactly once.
	n := 0
	for range boundaries(text) {
		n++
	}

	out := make([]Token, 0, n)
	for start, end := range boundaries(text) {
		out = append(out, Token{Text: text[start:end], Kind: kindOf(text[start:end])})
	}
	return out
}

// boundaries yields [start, end) byte offsets of all tokens in text.
func boundaries(text string) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		start := 0
		space := isSpaceAt(text, 0)
		for i := 0; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			if s := unicode.IsSpace(r); s != space {
				if !yield(start, i) {
					return
				}
				start, space = i, s
			}
			i += size
		}
		yield(start, len(text))
	}
}

func kindOf(s string) Kind {
	if isSpaceAt(s, 0) {
		return Separator
	}
	return Word
}

func isSpaceAt(s string, i int) bool {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsSpace(r)
}
