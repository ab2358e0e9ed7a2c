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

// Package rvecs contains functions to work with the result vectors, the internal representation
// that's used by the aligners and is then translated to alignment entries and runs.
//
// For inputs x and y, the result vectors are rx and ry with rx[s] set if x[s] is removed and ry[t]
// set if y[t] is added. Both vectors have one extra element at the end that is never set, which
// makes it easier to iterate over the results.
package rvecs

// Make allocates result vectors for x and y with a single allocation.
func Make[T any](x, y []T) (rx, ry []bool) {
	r := make([]bool, (len(x) + len(y) + 2))
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]
	return
}

// Op describes the kind of an alignment entry.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // x[S] and y[T] are equal and kept
	Delete           // x[S] is removed
	Insert           // y[T] is added
)

// Entry is a single step of an alignment. S is an index into x or -1, T is an index into y or -1.
// At least one of them is set.
type Entry struct {
	S, T int
}

// Op returns the operation described by e.
func (e Entry) Op() Op {
	switch {
	case e.S >= 0 && e.T >= 0:
		return Match
	case e.S >= 0:
		return Delete
	case e.T >= 0:
		return Insert
	default:
		panic("never reached")
	}
}

// Entries translates the result vectors into an ordered alignment. Within every block of changes
// between two matches, all deletions come first, followed by all insertions.
//
// Every index of x and y appears in exactly one entry.
func Entries(rx, ry []bool) []Entry {
	n, m := len(rx)-1, len(ry)-1

	// Compute the number of entries, this is cheap and allows us to preallocate the return value.
	nentries := 0
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			nentries++
			s++
		}
		for t < m && ry[t] {
			nentries++
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			nentries++
			s++
			t++
		}
	}
	if nentries == 0 {
		return nil
	}

	out := make([]Entry, 0, nentries)
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			out = append(out, Entry{S: s, T: -1})
			s++
		}
		for t < m && ry[t] {
			out = append(out, Entry{S: -1, T: t})
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			out = append(out, Entry{S: s, T: t})
			s++
			t++
		}
	}
	return out
}
