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

// Package myers contains the linear space aligner used for inputs that are too large for the table
// aligner in package lcs.
//
// It's the divide and conquer variant from E. Myers, "An O(ND) Difference Algorithm and Its
// Variations", Algorithmica 1 (1986). The input is searched from both ends at the same time for
// furthest reaching d-paths. Where a forward and a backward path meet, the edit graph is split at
// the middle snake and both halves are compared recursively. Time is O((N+M)·D) and memory is
// O(N+M), where D is the size of the minimal edit script.
//
// Only the exact search is implemented, the result is always minimal. When there is more than one
// minimal edit script, the choice is governed by the search order (deletions are preferred over
// insertions when two paths reach the same point) and may differ from the choice of package lcs.
//
// Terminology used throughout the package:
//
//   - s and t are indices into x and y respectively.
//   - k = s - t identifies a diagonal of the edit graph.
//   - A snake is a, possibly empty, sequence of diagonal edges (matches).
//   - A d-path is a path from a corner of the edit graph with exactly d non-diagonal edges.
package myers

import (
	"math"

	"znkr.io/worddiff/internal/rvecs"
)

// Diff compares the contents of x and y and returns the result vectors of a minimal alignment.
func Diff[T comparable](x, y []T) (rx, ry []bool) {
	var m myers[T]
	smin, smax, tmin, tmax := m.init(x, y)
	m.compare(smin, smax, tmin, tmax)
	return m.rx, m.ry
}

type myers[T comparable] struct {
	// Inputs to compare.
	x, y []T

	// v-arrays for the forward and backward search. v[v0+k] holds the s-coordinate of the endpoint
	// of the furthest reaching path in diagonal k, t follows from t = s - k.
	vf, vb []int
	v0     int

	// Result vectors.
	rx, ry []bool
}

func (m *myers[T]) init(x, y []T) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	diagonals := (smax - smin) + (tmax - tmin)
	vlen := 2*diagonals + 3 // middle diagonal plus one border on each side
	buf := make([]int, 2*vlen)

	m.x, m.y = x, y
	m.vf, m.vb = buf[:vlen], buf[vlen:]
	m.v0 = diagonals + 1
	m.rx, m.ry = rvecs.Make(x, y)
	return
}

// compare marks the deletions and insertions of a minimal path from (smin, tmin) to (smax, tmax).
func (m *myers[T]) compare(smin, smax, tmin, tmax int) {
	x, y := m.x, m.y

	// Matching a common prefix or suffix is always part of a minimal path. The outermost call has
	// them stripped already, but the pieces left and right of a middle snake may still have one.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	switch {
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			m.ry[t] = true
		}
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			m.rx[s] = true
		}
	default:
		s0, s1, t0, t1 := m.split(smin, smax, tmin, tmax)
		m.compare(smin, s0, tmin, t0)
		m.compare(s1, smax, t1, tmax)
	}
}

// split returns the endpoints (s0, t0) and (s1, t1) of the middle snake of a minimal path from
// (smin, tmin) to (smax, tmax).
//
// x[smin:smax] and y[tmin:tmax] must not have a common prefix or a common suffix and they must not
// both be empty.
func (m *myers[T]) split(smin, smax, tmin, tmax int) (s0, s1, t0, t1 int) {
	N, M := smax-smin, tmax-tmin
	x, y := m.x, m.y
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// Valid diagonals inside of the rect.
	kmin, kmax := smin-tmax, smax-tmin

	// Both searches share the same numbering of diagonals but start on different ones.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// The length of a minimal path has the same parity as N-M. Forward and backward paths can only
	// meet in a forward step if it's odd and only in a backward step if it's even.
	odd := (N-M)%2 != 0

	// Without a common prefix or suffix there is no 0-path, the d=0 step reduces to the corners.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax

	// A path of length N+M always exists, so the loop terminates at d <= ⌈(N+M)/2⌉.
	for d := 1; ; d++ {
		// Forward search.
		//
		// Keep k inside of the rect. The extra element on either side is initialized to a value
		// that's never chosen, this removes the special case for the borders from the k-loop.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0

			// Extend the furthest reaching (d-1)-path in diagonal k+1 by a vertical edge or the one
			// in k-1 by a horizontal edge. On ties, the horizontal edge (a deletion) wins.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			// Follow the snake.
			s0, t0 := s, t
			for s < smax && t < tmax && x[s] == y[t] {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return s0, s, t0, t
			}
		}

		// Backward search, mirrors the forward search.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			s0, t0 := s, t
			for s > smin && t > tmin && x[s-1] == y[t-1] {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return s, s0, t, t0
			}
		}
	}
}
