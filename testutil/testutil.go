// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Shreyashh2909/Pocket-Smart-AI/cliparse"
	"github.com/Shreyashh2909/Pocket-Smart-AI/db"
)

// SetupTestStore opens a fresh in-memory SQLite history store
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.Open(context.Background(), "sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           5001,
		GroqAPIKey:     "test-key",
		Model:          "test-model",
		BaseURL:        cliparse.DefaultBaseURL,
		Temperature:    cliparse.DefaultTemperature,
		MaxTokens:      cliparse.DefaultMaxTokens,
		MaxAttempts:    cliparse.DefaultMaxAttempts,
		RetryDelay:     0,
		RequestTimeout: 5 * time.Second,
		DatabaseType:   "sqlite",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// FakeAdvisor returns a canned answer and records the prompts it was given
type FakeAdvisor struct {
	Advice string
	Err    error

	mu      sync.Mutex
	prompts []string
}

func (f *FakeAdvisor) Advise(ctx context.Context, system, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.Err != nil {
		return "", f.Err
	}
	return f.Advice, nil
}

// Prompts returns the user prompts received so far
func (f *FakeAdvisor) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
