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

import "znkr.io/worddiff/internal/tokenize"

// Stats summarizes a diff.
type Stats struct {
	Unchanged, Added, Removed int // Number of tokens per tag
	AddedBytes, RemovedBytes  int // Size of added and removed text in bytes
}

// Summarize computes statistics for runs returned by [Diff].
func Summarize(runs []Run) Stats {
	var st Stats
	for _, r := range runs {
		n := len(tokenize.Tokenize(r.Value))
		switch r.Tag {
		case Unchanged:
			st.Unchanged += n
		case Added:
			st.Added += n
			st.AddedBytes += len(r.Value)
		case Removed:
			st.Removed += n
			st.RemovedBytes += len(r.Value)
		}
	}
	return st
}

// Identical reports whether the diff contains no changes.
func (st Stats) Identical() bool {
	return st.Added == 0 && st.Removed == 0
}
