// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_MODEL", "llama-3.1-8b-instant")
	t.Setenv("LLM_RETRY_DELAY", "2s")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.Model != "llama-3.1-8b-instant" {
		t.Errorf("expected model from env, got %q", cfg.Model)
	}
	if cfg.RetryDelay != 2*time.Second {
		t.Errorf("expected retry delay 2s, got %s", cfg.RetryDelay)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("expected default model, got %q", cfg.Model)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.MaxAttempts != 3 || cfg.RetryDelay != 10*time.Second {
		t.Errorf("expected 3 attempts with 10s delay, got %d / %s", cfg.MaxAttempts, cfg.RetryDelay)
	}
	if cfg.Temperature != 0.7 || cfg.MaxTokens != 2048 {
		t.Errorf("unexpected sampling defaults: %v / %d", cfg.Temperature, cfg.MaxTokens)
	}
	if cfg.HistoryEnabled() {
		t.Error("history should be disabled without DATABASE_URL")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GROQ_API_KEY", "from-env")

	cfg, err := ParseFlags([]string{"-p", "8080", "-api-key", "from-cli", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.GroqAPIKey != "from-cli" {
		t.Errorf("CLI should override env: got key %q", cfg.GroqAPIKey)
	}
	if !cfg.HistoryEnabled() || cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite history, got %q enabled=%v", cfg.DatabaseType, cfg.HistoryEnabled())
	}
}

func TestParseFlags_MissingAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	_, err := ParseFlags([]string{})
	if err == nil {
		t.Fatal("expected error without API key")
	}
	if !strings.Contains(err.Error(), "GROQ_API_KEY") {
		t.Errorf("error should name GROQ_API_KEY, got %v", err)
	}
}

func TestParseFlags_InvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{"non-numeric port", "PORT", "abc"},
		{"port out of range", "PORT", "70000"},
		{"zero attempts", "LLM_MAX_ATTEMPTS", "0"},
		{"bad delay", "LLM_RETRY_DELAY", "soon"},
		{"bad database type", "DATABASE_TYPE", "mysql"},
		{"bad log level", "LOG_LEVEL", "loud"},
		{"temperature too high", "LLM_TEMPERATURE", "3.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GROQ_API_KEY", "gsk_test")
			t.Setenv(tc.key, tc.val)

			if _, err := ParseFlags([]string{}); err == nil {
				t.Errorf("expected error for %s=%s", tc.key, tc.val)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		if err := LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	})

	t.Run("loads values without overriding", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		content := "POCKETSMART_TEST_A=from-file\nPOCKETSMART_TEST_B=from-file\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv("POCKETSMART_TEST_B", "from-env")
		t.Cleanup(func() { os.Unsetenv("POCKETSMART_TEST_A") })

		if err := LoadEnvFile(path); err != nil {
			t.Fatal(err)
		}
		if got := os.Getenv("POCKETSMART_TEST_A"); got != "from-file" {
			t.Errorf("expected value from file, got %q", got)
		}
		if got := os.Getenv("POCKETSMART_TEST_B"); got != "from-env" {
			t.Errorf("existing env should win, got %q", got)
		}
	})
}
