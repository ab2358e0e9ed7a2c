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

// Package logging creates the zerolog loggers used by the worddiff service.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
	"znkr.io/worddiff/internal/appconfig"
)

// Format is a log output format.
type Format int

const (
	FormatConsole Format = iota // Human readable, colored
	FormatText                  // Human readable, uncolored
	FormatJSON                  // One JSON object per line
)

func (f Format) String() string {
	switch f {
	case FormatConsole:
		return "console"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses the name of a log format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "console":
		return FormatConsole, nil
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unknown log format %q", s)
	}
}

// Logger is a zerolog.Logger that owns its log file.
type Logger struct {
	zerolog.Logger
	file *lumberjack.Logger
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// New creates a logger that writes to stderr and, if cfg.File is set, to a rotated log file.
// Console output to a file is never colored.
func New(cfg appconfig.LogConfig, stderr io.Writer) (*Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	format, err := ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	l := &Logger{}
	writers := []io.Writer{writer(format, stderr, false)}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		l.file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			LocalTime:  true,
		}
		writers = append(writers, writer(format, l.file, true))
	}

	l.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return l, nil
}

func writer(format Format, out io.Writer, isFile bool) io.Writer {
	switch format {
	case FormatJSON:
		return out
	case FormatText:
		return zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.RFC3339}
	default:
		return zerolog.ConsoleWriter{Out: out, NoColor: isFile, TimeFormat: time.RFC3339}
	}
}
