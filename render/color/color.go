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

// Package color configures the terminal colors used by [render.ANSI].
//
// [render.ANSI]: https://pkg.go.dev/znkr.io/worddiff/render#ANSI
package color

import (
	"fmt"
	"strings"

	"znkr.io/worddiff/internal/config"
)

// A Option makes it possible to configure custom colors in [render.ANSI].
//
// Colors are given as SGR parameters, e.g. Added(1, 32) for bold green. Calling an option without
// parameters disables coloring for that kind of run.
//
// [render.ANSI]: https://pkg.go.dev/znkr.io/worddiff/render#ANSI
type Option func(*config.ColorConfig)

// Unchanged colors unchanged runs. They are uncolored by default.
func Unchanged(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Unchanged = code
	}
}

// Added colors added runs. The default is green.
func Added(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Added = code
	}
}

// Removed colors removed runs. The default is red and struck through.
func Removed(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Removed = code
	}
}

// FromOptions applies opts to the default colors.
func FromOptions(opts []Option) config.ColorConfig {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	return cc
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
