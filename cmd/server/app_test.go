package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/wordguess/internal/api"
	"github.com/phrazzld/wordguess/internal/config"
	"github.com/phrazzld/wordguess/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGemini answers generateContent calls with scripted texts, in order.
type fakeGemini struct {
	mu      sync.Mutex
	replies []string
	status  int
	keys    []string
	prompts []string
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var body struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if len(body.Contents) > 0 && len(body.Contents[0].Parts) > 0 {
		f.prompts = append(f.prompts, body.Contents[0].Parts[0].Text)
	}
	f.keys = append(f.keys, r.Header.Get("x-goog-api-key"))

	if f.status != 0 {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
		return
	}

	text := "null"
	if len(f.replies) > 0 {
		text, f.replies = f.replies[0], f.replies[1:]
	}
	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func testConfig(baseURL, fallbackKey string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 0, LogLevel: "debug", ShutdownTimeoutSeconds: 2},
		LLM: config.LLMConfig{
			GeminiAPIKey:              fallbackKey,
			ModelName:                 "gemini-2.5-flash",
			BaseURL:                   baseURL,
			RequestTimeoutSeconds:     5,
			PairMaxOutputTokens:       256,
			BatchTokensPerItem:        64,
			BatchMinOutputTokens:      1024,
			ValidationMaxOutputTokens: 512,
		},
	}
}

func newTestApp(t *testing.T, gemini *fakeGemini, fallbackKey string) *application {
	t.Helper()
	upstream := httptest.NewServer(gemini)
	t.Cleanup(upstream.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := newApplication(testConfig(upstream.URL, fallbackKey), logger, nil)
	require.NoError(t, err)
	return app
}

func TestNewApplicationValidation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := newApplication(nil, logger, nil)
	assert.Error(t, err)

	_, err = newApplication(testConfig("https://example.com", ""), nil, nil)
	assert.Error(t, err)

	cfg := testConfig("not a url", "")
	_, err = newApplication(cfg, logger, nil)
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t, &fakeGemini{}, "")
	router := app.setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestWordPairEndToEnd(t *testing.T) {
	gemini := &fakeGemini{replies: []string{"```json\n{\"category\":\" Животные \",\"ru\":\"Кот\",\"en\":\"CAT\"}\n```"}}
	app := newTestApp(t, gemini, "")
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/words/pair", strings.NewReader(`{"difficulty":"easy"}`))
	req.Header.Set("X-Goog-Api-Key", "caller-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var pair domain.WordPair
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	assert.Equal(t, domain.WordPair{Category: "животные", RU: "кот", EN: "cat"}, pair)

	require.Len(t, gemini.keys, 1)
	assert.Equal(t, "caller-key", gemini.keys[0])
	assert.Contains(t, gemini.prompts[0], "easy")
}

func TestWordBatchEndToEnd(t *testing.T) {
	gemini := &fakeGemini{replies: []string{
		`[{"category":"kitchen","ru":"ложка","en":"spoon"},
		  {"category":"kitchen","ru":"вилка","en":"fork"},
		  {"category":"kitchen","ru":"fork","en":"вилка"},
		  {"category":"kitchen","ru":"тарелка","en":"spoon"}]`,
		`[true, false]`,
	}}
	app := newTestApp(t, gemini, "fallback-key")
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/words/batch",
		bytes.NewBufferString(`{"category":"kitchen","count":4}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp api.WordBatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []domain.WordPair{{Category: "kitchen", RU: "ложка", EN: "spoon"}}, resp.Items)

	require.Len(t, gemini.prompts, 2, "batch call plus validation call")
	assert.Contains(t, gemini.prompts[1], `"en":"fork"`)
	assert.Equal(t, []string{"fallback-key", "fallback-key"}, gemini.keys)
}

func TestWordBatchRequiresKey(t *testing.T) {
	gemini := &fakeGemini{}
	app := newTestApp(t, gemini, "")
	router := app.setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/words/batch", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, gemini.keys, "no upstream call without a key")
}

func TestWordBatchUpstreamRateLimit(t *testing.T) {
	gemini := &fakeGemini{status: http.StatusTooManyRequests}
	app := newTestApp(t, gemini, "fallback-key")
	router := app.setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/words/batch", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotContains(t, w.Body.String(), "quota exceeded")
	assert.Len(t, gemini.keys, 1, "no retries")
}

func TestStartHTTPServerGracefulShutdown(t *testing.T) {
	app := newTestApp(t, &fakeGemini{}, "")

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.startHTTPServer(ctx, listener, app.setupRouter())
	}()

	url := "http://" + listener.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
