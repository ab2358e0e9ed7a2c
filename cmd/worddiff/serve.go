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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"znkr.io/worddiff/internal/appconfig"
	"znkr.io/worddiff/internal/logging"
	"znkr.io/worddiff/internal/server"
)

const shutdownTimeout = 10 * time.Second

type serveFlags struct {
	config    string
	addr      string
	logLevel  string
	logFormat string
}

func newServeCmd() *cobra.Command {
	var flags serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve word diffs over HTTP",
		Long: `Serve word diffs over HTTP.

Settings are read from the file given by --config, the file named by WORDDIFF_CONFIG or
worddiff.yaml in the working directory, in that order. The environment variables WORDDIFF_ADDR
and WORDDIFF_LOG_LEVEL and the flags below override settings from the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&flags.config, "config", "", "configuration file")
	cmd.Flags().StringVar(&flags.addr, "addr", "", "listen address (default \"" + appconfig.DefaultAddr + "\")")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level: trace, debug, info, warn or error")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "", "log format: console, text or json")
	return cmd
}

// loadConfig loads the configuration and applies the flags that were set on the command line.
func loadConfig(cmd *cobra.Command, flags serveFlags) (*appconfig.Config, error) {
	cfg, err := appconfig.Load(appconfig.Locate(flags.config))
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = flags.addr
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}
	if err := appconfig.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cobra.Command, cfg *appconfig.Config) error {
	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Close()

	srv := server.New(cfg.Server, log.Logger, nil)
	if err := srv.ListenAndServe(ctx, shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("server failed")
		return err
	}
	return nil
}
