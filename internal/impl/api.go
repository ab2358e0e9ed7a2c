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

// Package impl selects the aligner for a comparison.
package impl

import (
	"fmt"

	"znkr.io/worddiff/internal/config"
	"znkr.io/worddiff/internal/lcs"
	"znkr.io/worddiff/internal/myers"
)

// Algorithm identifies an aligner.
type Algorithm int

const (
	Table Algorithm = iota
	Linear
)

func (a Algorithm) String() string {
	switch a {
	case Table:
		return "table"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Choose returns the aligner used for inputs of length n and m.
func Choose(n, m int, cfg config.Config) Algorithm {
	switch cfg.Mode {
	case config.ModeLinear:
		return Linear
	case config.ModeDefault:
		if cfg.MaxTableCells > 0 && lcs.Cells(n, m) > cfg.MaxTableCells {
			return Linear
		}
		return Table
	default:
		panic(fmt.Sprintf("unknown mode: %v", cfg.Mode))
	}
}

// Diff compares the contents of x and y and returns the result vectors of a minimal alignment.
func Diff[T comparable](x, y []T, cfg config.Config) (rx, ry []bool) {
	switch Choose(len(x), len(y), cfg) {
	case Linear:
		return myers.Diff(x, y)
	default:
		return lcs.Diff(x, y)
	}
}
