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

package rvecs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEntries(t *testing.T) {
	tests := []struct {
		name   string
		n, m   int
		del    []int // indices set in rx
		ins    []int // indices set in ry
		want   []Entry
		wantOp string
	}{
		{
			name: "empty",
			want: nil,
		},
		{
			name:   "all-matched",
			n:      3,
			m:      3,
			want:   []Entry{{0, 0}, {1, 1}, {2, 2}},
			wantOp: "MMM",
		},
		{
			name:   "all-deleted",
			n:      2,
			del:    []int{0, 1},
			want:   []Entry{{0, -1}, {1, -1}},
			wantOp: "DD",
		},
		{
			name:   "all-inserted",
			m:      2,
			ins:    []int{0, 1},
			want:   []Entry{{-1, 0}, {-1, 1}},
			wantOp: "II",
		},
		{
			name:   "deletions-before-insertions",
			n:      3,
			m:      3,
			del:    []int{1},
			ins:    []int{1},
			want:   []Entry{{0, 0}, {1, -1}, {-1, 1}, {2, 2}},
			wantOp: "MDIM",
		},
		{
			name:   "unbalanced-blocks",
			n:      4,
			m:      3,
			del:    []int{0, 2, 3},
			ins:    []int{0, 2},
			want:   []Entry{{0, -1}, {-1, 0}, {1, 1}, {2, -1}, {3, -1}, {-1, 2}},
			wantOp: "DIMDDI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx, ry := Make(make([]struct{}, tt.n), make([]struct{}, tt.m))
			for _, i := range tt.del {
				rx[i] = true
			}
			for _, i := range tt.ins {
				ry[i] = true
			}
			got := Entries(rx, ry)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Entries(...) result is different [-want,+got]:\n%s", diff)
			}
			var ops []byte
			for _, e := range got {
				ops = append(ops, e.Op().String()[0])
			}
			if diff := cmp.Diff(tt.wantOp, string(ops)); diff != "" {
				t.Errorf("Entries(...) ops are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestMake(t *testing.T) {
	rx, ry := Make([]int{1, 2, 3}, []int{4})
	if len(rx) != 4 || len(ry) != 2 {
		t.Fatalf("Make(...) = len(rx)=%d, len(ry)=%d, want 4, 2", len(rx), len(ry))
	}
	rx = append(rx, true) // must not overwrite ry
	if ry[0] {
		t.Errorf("appending to rx modified ry")
	}
}
