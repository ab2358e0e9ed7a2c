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

package worddiff

import (
	"znkr.io/worddiff/internal/config"
	"znkr.io/worddiff/internal/impl"
	"znkr.io/worddiff/internal/rvecs"
	"znkr.io/worddiff/internal/tokenize"
)

// Run is a maximal piece of text with a single [Tag].
type Run struct {
	Value string
	Tag   Tag
}

// Diff compares text1 and text2 word by word and returns the differences as a sequence of runs.
//
// The runs satisfy the following properties:
//
//   - Concatenating the values of all runs with a tag other than [Added] yields text1.
//   - Concatenating the values of all runs with a tag other than [Removed] yields text2.
//   - No two adjacent runs have the same tag and no run has an empty value.
//   - The number of tokens in [Added] and [Removed] runs is minimal.
//
// If both inputs are empty, the result is empty. Identical inputs result in a single [Unchanged]
// run.
//
// The following options are supported: [worddiff.Linear], [worddiff.TableLimit]
func Diff(text1, text2 string, opts ...Option) []Run {
	cfg := config.FromOptions(opts, config.Linear|config.TableLimit)
	x, y := tokenize.Tokenize(text1), tokenize.Tokenize(text2)
	rx, ry := impl.Diff(x, y, cfg)
	return buildRuns(rvecs.Entries(rx, ry), x, y)
}
