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

package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"znkr.io/worddiff"
	"znkr.io/worddiff/internal/appconfig"
)

func testConfig() appconfig.ServerConfig {
	cfg := appconfig.NewDefaultConfig().Server
	cfg.RateLimit = 0
	return cfg
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "insertion",
			body: `{"text1": "hello world", "text2": "hello there world"}`,
			want: `{"diff":[{"value":"hello "},{"value":"there ","added":true},{"value":"world"}]}`,
		},
		{
			name: "deletion",
			body: `{"text1": "a b c", "text2": "a c"}`,
			want: `{"diff":[{"value":"a "},{"value":"b ","removed":true},{"value":"c"}]}`,
		},
		{
			name: "both-empty",
			body: `{"text1": "", "text2": ""}`,
			want: `{"diff":[]}`,
		},
		{
			name: "first-empty",
			body: `{"text1": "", "text2": "new text"}`,
			want: `{"diff":[{"value":"new text","added":true}]}`,
		},
		{
			name: "extra-fields-are-ignored",
			body: `{"text1": "same", "text2": "same", "mode": "words"}`,
			want: `{"diff":[{"value":"same"}]}`,
		},
	}

	h := New(testConfig(), zerolog.Nop(), nil).Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/diff", tt.body)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestDiff_invalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"text1-not-a-string", `{"text1": 42, "text2": "b"}`},
		{"text2-not-a-string", `{"text1": "a", "text2": ["b"]}`},
		{"text1-null", `{"text1": null, "text2": "b"}`},
		{"text2-missing", `{"text1": "a"}`},
		{"not-an-object", `["a", "b"]`},
		{"null", `null`},
		{"malformed", `{"text1": "a", `},
		{"empty-body", ``},
	}

	var calls atomic.Int32
	diff := func(text1, text2 string, opts ...worddiff.Option) []worddiff.Run {
		calls.Add(1)
		return worddiff.Diff(text1, text2, opts...)
	}
	h := New(testConfig(), zerolog.Nop(), diff).Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/diff", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"diff":[{"value":"Error: text1 and text2 must be strings"}]}`, rec.Body.String())
		})
	}
	assert.Zero(t, calls.Load(), "diff must not be computed for invalid input")
}

func TestDiff_bodyTooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.MaxBodyBytes = 32
	h := New(cfg, zerolog.Nop(), nil).Handler()

	body := `{"text1": "` + strings.Repeat("a", 100) + `", "text2": ""}`
	rec := do(t, h, http.MethodPost, "/diff", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"diff":[{"value":"Error: request body too large"}]}`, rec.Body.String())
}

func TestDiff_rateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	h := New(cfg, zerolog.Nop(), nil).Handler()

	body := `{"text1": "a", "text2": "b"}`
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/diff", body).Code)

	rec := do(t, h, http.MethodPost, "/diff", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"diff":[{"value":"Error: too many requests"}]}`, rec.Body.String())

	// Health checks are not rate limited.
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", "").Code)
}

func TestDiff_timeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	slow := func(text1, text2 string, opts ...worddiff.Option) []worddiff.Run {
		<-release
		return nil
	}

	cfg := testConfig()
	cfg.DiffTimeout = 10 * time.Millisecond
	h := New(cfg, zerolog.Nop(), slow).Handler()

	rec := do(t, h, http.MethodPost, "/diff", `{"text1": "a", "text2": "b"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"diff":[{"value":"Error: diff timed out"}]}`, rec.Body.String())
}

func TestDiff_tableLimit(t *testing.T) {
	var got []worddiff.Option
	diff := func(text1, text2 string, opts ...worddiff.Option) []worddiff.Run {
		got = opts
		return worddiff.Diff(text1, text2, opts...)
	}
	cfg := testConfig()
	cfg.MaxTableCells = 16
	h := New(cfg, zerolog.Nop(), diff).Handler()

	rec := do(t, h, http.MethodPost, "/diff", `{"text1": "a b c d e", "text2": "a c d f"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, got, 1)
}

func TestHealth(t *testing.T) {
	h := New(testConfig(), zerolog.Nop(), nil).Handler()
	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	h := New(testConfig(), zerolog.Nop(), nil).Handler()

	rec := do(t, h, http.MethodOptions, "/diff", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))

	rec = do(t, h, http.MethodPost, "/diff", `{"text1": "a", "text2": "a"}`)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	cfg := testConfig()
	cfg.CORSOrigin = "https://example.com"
	rec = do(t, New(cfg, zerolog.Nop(), nil).Handler(), http.MethodGet, "/health", "")
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
}

func TestMethodNotAllowed(t *testing.T) {
	h := New(testConfig(), zerolog.Nop(), nil).Handler()
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodGet, "/diff", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodPost, "/health", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/", "").Code)
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	h := New(testConfig(), zerolog.New(&buf), nil).Handler()

	rec := do(t, h, http.MethodPost, "/diff", `{"text1": "a", "text2": "b"}`)
	id := rec.Header().Get(requestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err, "X-Request-ID %q", id)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"`+id+`"`)
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"path":"/diff"`)
	assert.Contains(t, out, `"status":200`)
}

func TestServe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- New(testConfig(), zerolog.Nop(), nil).Serve(ctx, ln, time.Second)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
