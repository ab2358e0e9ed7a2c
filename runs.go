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
	"strings"

	"znkr.io/worddiff/internal/rvecs"
	"znkr.io/worddiff/internal/tokenize"
)

// buildRuns translates an alignment of x and y into runs, merging consecutive entries with the same
// tag.
func buildRuns(entries []rvecs.Entry, x, y []tokenize.Token) []Run {
	// Count the runs first, this is cheap and allows us to preallocate the return value.
	nruns := 0
	for i, e := range entries {
		if i == 0 || tagOf(e.Op()) != tagOf(entries[i-1].Op()) {
			nruns++
		}
	}
	if nruns == 0 {
		return nil
	}

	out := make([]Run, 0, nruns)
	var sb strings.Builder
	tag := tagOf(entries[0].Op())
	for _, e := range entries {
		if t := tagOf(e.Op()); t != tag {
			out = append(out, Run{Value: sb.String(), Tag: tag})
			sb.Reset()
			tag = t
		}
		if tag == Added {
			sb.WriteString(y[e.T].Text)
		} else {
			sb.WriteString(x[e.S].Text)
		}
	}
	return append(out, Run{Value: sb.String(), Tag: tag})
}

func tagOf(op rvecs.Op) Tag {
	switch op {
	case rvecs.Match:
		return Unchanged
	case rvecs.Delete:
		return Removed
	case rvecs.Insert:
		return Added
	default:
		panic("never reached")
	}
}
