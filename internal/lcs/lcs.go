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

// Package lcs contains the table based longest common subsequence aligner.
//
// The aligner computes the suffix table
//
//	L[i][j] = |LCS(x[i:], y[j:])|
//
// bottom up and then walks it forward from (0, 0) to (len(x), len(y)):
//
//   - If x[i] == y[j], the elements are matched. Matching equal elements is always part of some
//     optimal alignment of the remaining suffixes, so preferring the diagonal never costs
//     optimality and it places matches as early as possible in both inputs.
//   - Otherwise, x[i] is deleted if L[i+1][j] >= L[i][j+1] and y[j] is inserted if not. On ties,
//     the first input is consumed before the second.
//
// The result is a minimal edit script (fewest deletions plus insertions) and, among all minimal
// edit scripts, the one chosen by the rules above. This choice is observable in the output and
// tests lock it in.
//
// A common prefix is matched before the table is built, which is exactly what the walk would do.
// A common suffix is not stripped: Matching the suffix first can move matches later than the walk
// above places them.
//
// Time and memory are O(N*M) where N and M are the lengths of the inputs after removing the common
// prefix. Table cells are int32.
package lcs

import (
	"znkr.io/worddiff/internal/rvecs"
)

// Diff compares the contents of x and y and returns the result vectors of a minimal alignment.
func Diff[T comparable](x, y []T) (rx, ry []bool) {
	rx, ry = rvecs.Make(x, y)

	// Strip common prefix.
	p := 0
	for p < len(x) && p < len(y) && x[p] == y[p] {
		p++
	}

	// Handle trivial cases without building a table.
	n, m := len(x)-p, len(y)-p
	switch {
	case n == 0:
		for t := p; t < len(y); t++ {
			ry[t] = true
		}
		return rx, ry
	case m == 0:
		for s := p; s < len(x); s++ {
			rx[s] = true
		}
		return rx, ry
	}

	xs, ys := intern(x[p:], y[p:])

	// Table in row major order with an extra row n and an extra column m that are always zero.
	w := m + 1
	table := make([]int32, (n+1)*w)
	for i := n - 1; i >= 0; i-- {
		row, next := table[i*w:(i+1)*w], table[(i+1)*w:(i+2)*w]
		for j := m - 1; j >= 0; j-- {
			if xs[i] == ys[j] {
				row[j] = next[j+1] + 1
			} else {
				row[j] = max(next[j], row[j+1])
			}
		}
	}

	i, j := 0, 0
	for i < n && j < m {
		switch {
		case xs[i] == ys[j]:
			i++
			j++
		case table[(i+1)*w+j] >= table[i*w+j+1]:
			rx[p+i] = true
			i++
		default:
			ry[p+j] = true
			j++
		}
	}
	for ; i < n; i++ {
		rx[p+i] = true
	}
	for ; j < m; j++ {
		ry[p+j] = true
	}
	return rx, ry
}

// Cells returns the number of table cells Diff would allocate for inputs of length n and m in the
// worst case (no common prefix).
func Cells(n, m int) int {
	return (n + 1) * (m + 1)
}

// intern maps the elements of x and y to dense integer IDs so that the inner loop compares
// integers instead of Ts. Elements of y that don't appear in x get the ID -1, they can't match
// anything.
func intern[T comparable](x, y []T) (xs, ys []int32) {
	idx := make(map[T]int32, len(x))
	buf := make([]int32, len(x)+len(y))
	xs, ys = buf[:len(x):len(x)], buf[len(x):]
	for i, e := range x {
		id, ok := idx[e]
		if !ok {
			id = int32(len(idx))
			idx[e] = id
		}
		xs[i] = id
	}
	for j, e := range y {
		id, ok := idx[e]
		if !ok {
			id = -1
		}
		ys[j] = id
	}
	return xs, ys
}
