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

import "znkr.io/worddiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Linear always uses the linear space aligner. Memory use is O(N+M) and the runtime is O((N+M)*D)
// where N and M are the number of tokens in the inputs and D is the number of added and removed
// tokens.
//
// The result is still minimal, but when several minimal results exist, the one chosen may differ
// from the default.
func Linear() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.ModeLinear
		return config.Linear
	}
}

// TableLimit sets the maximum number of cells of the O(N*M) alignment table. Larger inputs are
// aligned with the linear space aligner (see [Linear]). A limit of zero or less removes the bound.
// The default is 1<<22.
func TableLimit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxTableCells = max(0, n)
		return config.TableLimit
	}
}
