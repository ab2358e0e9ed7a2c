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

// Package appconfig contains the configuration of the worddiff service.
//
// A configuration starts out as [NewDefaultConfig], is overlaid with a YAML file and the
// environment by [Load], and is checked with [Validate]. Command line flags are applied by the
// caller between loading and validation.
package appconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default settings.
const (
	DefaultAddr          = ":4000"
	DefaultCORSOrigin    = "*"
	DefaultMaxBodyBytes  = 1 << 20
	DefaultDiffTimeout   = 5 * time.Second
	DefaultRateLimit     = 50
	DefaultRateBurst     = 100
	DefaultReadTimeout   = 10 * time.Second
	DefaultWriteTimeout  = 15 * time.Second
	DefaultIdleTimeout   = 60 * time.Second
	DefaultMaxTableCells = 1 << 22

	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)

// Environment variables.
const (
	EnvConfig   = "WORDDIFF_CONFIG"
	EnvAddr     = "WORDDIFF_ADDR"
	EnvLogLevel = "WORDDIFF_LOG_LEVEL"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "worddiff.yaml"

// Config is the complete service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig configures the HTTP boundary.
type ServerConfig struct {
	Addr       string `yaml:"addr" validate:"required"`
	CORSOrigin string `yaml:"cors_origin" validate:"required"`

	// Requests with larger bodies are rejected with 413.
	MaxBodyBytes int64 `yaml:"max_body_bytes" validate:"min=1"`

	// Upper bound for computing a single diff, 0 disables the bound.
	DiffTimeout time.Duration `yaml:"diff_timeout" validate:"min=0"`

	// Sustained requests per second and burst size accepted on /diff. A rate of 0 disables rate
	// limiting.
	RateLimit float64 `yaml:"rate_limit" validate:"min=0"`
	RateBurst int     `yaml:"rate_burst" validate:"min=0"`

	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"min=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"min=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" validate:"min=0"`

	// Passed to worddiff.TableLimit.
	MaxTableCells int `yaml:"max_table_cells"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level      string `yaml:"level" validate:"loglevel"`
	Format     string `yaml:"format" validate:"logformat"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"min=0"`
	MaxBackups int    `yaml:"max_backups" validate:"min=0"`
}

// NewDefaultConfig returns the default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          DefaultAddr,
			CORSOrigin:    DefaultCORSOrigin,
			MaxBodyBytes:  DefaultMaxBodyBytes,
			DiffTimeout:   DefaultDiffTimeout,
			RateLimit:     DefaultRateLimit,
			RateBurst:     DefaultRateBurst,
			ReadTimeout:   DefaultReadTimeout,
			WriteTimeout:  DefaultWriteTimeout,
			IdleTimeout:   DefaultIdleTimeout,
			MaxTableCells: DefaultMaxTableCells,
		},
		Log: LogConfig{
			Level:      DefaultLogLevel,
			Format:     DefaultLogFormat,
			MaxSizeMB:  DefaultMaxLogSizeMB,
			MaxBackups: DefaultMaxLogBackups,
		},
	}
}

// Locate returns the path of the configuration file. In order of priority, it's the path given on
// the command line, the path in WORDDIFF_CONFIG or worddiff.yaml in the working directory if it
// exists. An empty result means that there is no configuration file.
func Locate(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	if info, err := os.Stat(DefaultFile); err == nil && !info.IsDir() {
		return DefaultFile
	}
	return ""
}

// Load reads the configuration file at path on top of the defaults and applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening config: %w", err)
		}
		defer f.Close()
		if err := decode(f, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}

// Validate checks cfg and reports all invalid fields in a single error.
func Validate(cfg *Config) error {
	validate := validator.New()
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
			return true
		default:
			return false
		}
	})
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "console", "text", "json":
			return true
		default:
			return false
		}
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("configuration validation error: %w", err)
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := fmt.Sprintf("validation failed for '%s': rule '%s'", e.Namespace(), e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		if v := e.Value(); v != nil && v != "" {
			msg += fmt.Sprintf(", actual: '%v'", v)
		}
		msgs = append(msgs, msg)
	}
	return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(msgs, "\n  "))
}
