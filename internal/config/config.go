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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// worddiff.Option and color.Option.
package config

// Mode describes which alignment algorithm is used.
type Mode int

const (
	// Use the table aligner unless the table would exceed MaxTableCells, then fall back to the
	// linear space aligner.
	ModeDefault Mode = iota

	// Always use the linear space aligner.
	ModeLinear
)

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Alignment algorithm mode.
	Mode Mode

	// Upper bound for the number of cells in the table aligner. A value <= 0 removes the bound.
	MaxTableCells int
}

// Default is the default configuration.
var Default = Config{
	Mode:          ModeDefault,
	MaxTableCells: 1 << 22,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Linear Flag = 1 << iota
	TableLimit
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Linear:
		return "worddiff.Linear"
	case TableLimit:
		return "worddiff.TableLimit"
	default:
		panic("never reached")
	}
}

// ColorConfig holds the SGR escape sequences used to render runs on a terminal. An empty sequence
// leaves the run uncolored.
type ColorConfig struct {
	Unchanged string
	Added     string
	Removed   string
}

// DefaultColors is the default color configuration: red and struck through for removals, green for
// additions.
var DefaultColors = ColorConfig{
	Unchanged: "",
	Added:     "\033[32m",
	Removed:   "\033[31;9m",
}
