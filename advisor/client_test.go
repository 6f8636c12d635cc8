// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGroq serves /chat/completions, answering 429 for the first
// rateLimited calls.
func fakeGroq(t *testing.T, rateLimited int32, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer gsk_test" {
			t.Errorf("unexpected Authorization header %q", got)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if body["model"] != "llama-3.3-70b-versatile" {
			t.Errorf("unexpected model %v", body["model"])
		}
		if body["max_tokens"] != float64(2048) {
			t.Errorf("unexpected max_tokens %v", body["max_tokens"])
		}

		w.Header().Set("Content-Type", "application/json")
		switch {
		case n <= rateLimited:
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"Rate limit reached for model","type":"tokens","code":"rate_limit_exceeded"}}`))
		case status != http.StatusOK:
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error","code":"invalid_api_key"}}`))
		default:
			w.Write([]byte(`{
				"id": "chatcmpl-1",
				"object": "chat.completion",
				"created": 1730000000,
				"model": "llama-3.3-70b-versatile",
				"choices": [{"index": 0, "message": {"role": "assistant", "content": "## 📊 Budget Overview\nLooking good."}, "finish_reason": "stop"}],
				"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
			}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func clientFor(srv *httptest.Server) *Client {
	return New(Config{
		APIKey:      "gsk_test",
		BaseURL:     srv.URL + "/",
		Model:       "llama-3.3-70b-versatile",
		Temperature: 0.7,
		MaxTokens:   2048,
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
		HTTPClient:  srv.Client(),
	}, nil)
}

func TestClient_Success(t *testing.T) {
	srv, calls := fakeGroq(t, 0, http.StatusOK)

	advice, err := clientFor(srv).Advise(context.Background(), "sys", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "## 📊 Budget Overview\nLooking good.", advice)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_RecoversFromRateLimit(t *testing.T) {
	srv, calls := fakeGroq(t, 2, http.StatusOK)

	advice, err := clientFor(srv).Advise(context.Background(), "sys", "prompt")
	require.NoError(t, err)
	assert.Contains(t, advice, "Looking good.")
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_RateLimitExhausted(t *testing.T) {
	srv, calls := fakeGroq(t, 10, http.StatusOK)

	_, err := clientFor(srv).Advise(context.Background(), "sys", "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_InvalidKey(t *testing.T) {
	srv, calls := fakeGroq(t, 0, http.StatusUnauthorized)

	_, err := clientFor(srv).Advise(context.Background(), "sys", "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Model(t *testing.T) {
	srv, _ := fakeGroq(t, 0, http.StatusOK)
	assert.Equal(t, "llama-3.3-70b-versatile", clientFor(srv).Model())
}

func TestClient_ZeroTemperatureIsSent(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"index": 0, "message": {"role": "assistant", "content": "ok"}, "finish_reason": "stop"}]}`))
	}))
	t.Cleanup(srv.Close)

	c := New(Config{
		APIKey:      "gsk_test",
		BaseURL:     srv.URL,
		Model:       "m",
		Temperature: 0,
		MaxTokens:   10,
		MaxAttempts: 1,
		HTTPClient:  srv.Client(),
	}, nil)

	_, err := c.Advise(context.Background(), "sys", "prompt")
	require.NoError(t, err)

	temperature, ok := body["temperature"]
	require.True(t, ok, "temperature missing from request: %v", body)
	assert.InDelta(t, 0, temperature, 1e-6)
}
