// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Shreyashh2909/Pocket-Smart-AI/testutil"
)

func TestIndex(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewPageHandler(cfg)

	w := httptest.NewRecorder()
	handler.Index(w, httptest.NewRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	for _, want := range []string{"<title>PocketSmart AI</title>", "test-model", `fetch("/analyze"`} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
	if strings.Contains(body, `href="/analyses"`) {
		t.Error("History link should be hidden without a database")
	}
}

func TestIndexWithHistory(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.DatabaseURL = ":memory:"

	w := httptest.NewRecorder()
	NewPageHandler(cfg).Index(w, httptest.NewRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `href="/analyses"`) {
		t.Error("Expected history link when a database is configured")
	}
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest("GET", "/health", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}
