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

// Package worddiff compares two texts word by word.
//
// Both texts are split into tokens: a word is a maximal run of non-whitespace characters and a
// separator is a maximal run of whitespace. The token sequences are aligned with a longest common
// subsequence search and the result is returned as a list of runs, each tagged [Unchanged],
// [Added] or [Removed]:
//
//	runs := worddiff.Diff("hello world", "hello there world")
//	// [{"hello " Unchanged} {"there " Added} {"world" Unchanged}]
//
// Concatenating the values of all runs that are not [Added] reproduces the first text,
// concatenating the values of all runs that are not [Removed] reproduces the second. The edit
// script is minimal: no alignment of the two token sequences keeps more tokens unchanged. When a
// removal and an addition happen at the same place, the removal comes first.
//
// Performance: By default, the alignment takes O(N*M) time and memory where N and M are the number
// of tokens in each text. Inputs that would need more than 1<<22 table cells are aligned in
// O((N+M)*D) time and O(N+M) memory instead, where D is the number of added and removed tokens.
// Use [Linear] and [TableLimit] to control this.
//
// The package has no state, all functions are safe for concurrent use.
package worddiff
