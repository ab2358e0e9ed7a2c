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

// Package server exposes word diffs over HTTP.
//
// Endpoints:
//
//	POST /diff    {"text1": "...", "text2": "..."} -> {"diff": [{"value": "...", "added": true}, ...]}
//	GET  /health  {"status": "ok"}
//
// Errors are reported in the same shape as a successful diff, with a single run that holds the
// error message.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"znkr.io/worddiff"
	"znkr.io/worddiff/internal/appconfig"
)

// Error messages returned to clients.
const (
	MsgInvalidInput    = "Error: text1 and text2 must be strings"
	MsgBodyTooLarge    = "Error: request body too large"
	MsgTooManyRequests = "Error: too many requests"
	MsgTimeout         = "Error: diff timed out"
)

// DiffFunc computes a diff, it's [worddiff.Diff] outside of tests.
type DiffFunc func(text1, text2 string, opts ...worddiff.Option) []worddiff.Run

// Server is the HTTP boundary of the word diff.
type Server struct {
	cfg     appconfig.ServerConfig
	log     zerolog.Logger
	limiter *rate.Limiter // nil if rate limiting is disabled
	diff    DiffFunc
	opts    []worddiff.Option
}

// New creates a server. A nil diff uses [worddiff.Diff].
func New(cfg appconfig.ServerConfig, log zerolog.Logger, diff DiffFunc) *Server {
	if diff == nil {
		diff = worddiff.Diff
	}
	s := &Server{
		cfg:  cfg,
		log:  log,
		diff: diff,
		opts: []worddiff.Option{worddiff.TableLimit(cfg.MaxTableCells)},
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(1, cfg.RateBurst))
	}
	return s
}

// Handler returns the handler for all endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /diff", s.handleDiff)
	mux.HandleFunc("GET /health", s.handleHealth)
	return s.logRequests(s.cors(mux))
}

// ListenAndServe serves requests on the configured address until ctx is done. Then it shuts down
// gracefully, waiting for in-flight requests for at most shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve is like [Server.ListenAndServe] but accepts connections on ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("worddiff server listening")
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type diffRequest struct {
	Text1 string
	Text2 string
}

type diffResponse struct {
	Diff []worddiff.Run `json:"diff"`
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	if s.limiter != nil && !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, MsgTooManyRequests)
		return
	}

	req, err := decodeDiffRequest(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
			return
		}
		log.Debug().Err(err).Msg("invalid diff request")
		writeError(w, http.StatusBadRequest, MsgInvalidInput)
		return
	}

	runs, err := s.compute(r.Context(), req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn().Int("len1", len(req.Text1)).Int("len2", len(req.Text2)).Msg("diff timed out")
			writeError(w, http.StatusServiceUnavailable, MsgTimeout)
		}
		// Otherwise, the client is gone.
		return
	}
	if runs == nil {
		runs = []worddiff.Run{}
	}
	log.Debug().Int("runs", len(runs)).Msg("diff computed")
	writeJSON(w, http.StatusOK, diffResponse{Diff: runs})
}

// compute runs the diff in its own goroutine and gives up when the diff timeout expires or the
// request is canceled. An abandoned diff runs to completion in the background and its result is
// dropped.
func (s *Server) compute(ctx context.Context, req diffRequest) ([]worddiff.Run, error) {
	if s.cfg.DiffTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.DiffTimeout)
		defer cancel()
	}

	done := make(chan []worddiff.Run, 1)
	go func() {
		done <- s.diff(req.Text1, req.Text2, s.opts...)
	}()

	select {
	case runs := <-done:
		return runs, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// decodeDiffRequest reads a JSON object with the string fields text1 and text2. Other fields are
// ignored.
func decodeDiffRequest(body io.Reader) (diffRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		return diffRequest{}, err
	}
	if fields == nil {
		return diffRequest{}, errors.New("request is not an object")
	}
	var req diffRequest
	var err error
	if req.Text1, err = stringField(fields, "text1"); err != nil {
		return diffRequest{}, err
	}
	if req.Text2, err = stringField(fields, "text2"); err != nil {
		return diffRequest{}, err
	}
	return req, nil
}

func stringField(fields map[string]json.RawMessage, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", fmt.Errorf("%s is missing", name)
	}
	// Unmarshaling null into a string succeeds, reject everything that isn't a string literal.
	if len(raw) == 0 || raw[0] != '"' {
		return "", fmt.Errorf("%s is not a string", name)
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, diffResponse{Diff: []worddiff.Run{{Value: msg}}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
