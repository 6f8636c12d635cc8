// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/Shreyashh2909/Pocket-Smart-AI/metrics"
)

var (
	ErrRateLimited   = errors.New("rate limit exceeded")
	ErrUnauthorized  = errors.New("api key rejected")
	ErrEmptyResponse = errors.New("model returned no choices")
)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int

	// MaxAttempts counts the first call; RetryDelay is the fixed pause
	// between rate-limited attempts.
	MaxAttempts int
	RetryDelay  time.Duration

	// Optional, defaults to http.DefaultClient
	HTTPClient *http.Client
}

// chatCompleter is the slice of *openai.Client the advisor needs
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client struct {
	api     chatCompleter
	cfg     Config
	metrics *metrics.Metrics
	wait    func(ctx context.Context, d time.Duration) error
}

// New creates a client for an OpenAI-compatible chat completions API
// (Groq by default). m may be nil.
func New(cfg Config, m *metrics.Metrics) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.HTTPClient != nil {
		oc.HTTPClient = cfg.HTTPClient
	}
	return newWithAPI(openai.NewClientWithConfig(oc), cfg, m)
}

func newWithAPI(api chatCompleter, cfg Config, m *metrics.Metrics) *Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Client{api: api, cfg: cfg, metrics: m, wait: sleepContext}
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.cfg.Model
}

// Advise sends one system and one user message and returns the first
// choice's content. Rate-limited calls are retried after RetryDelay up to
// MaxAttempts in total; the final failure wraps ErrRateLimited. A rejected
// key wraps ErrUnauthorized. Other errors are returned without retrying.
func (c *Client) Advise(ctx context.Context, system, prompt string) (string, error) {
	// go-openai omits a zero temperature, which makes the provider use its
	// own default instead
	temperature := c.cfg.Temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	req := openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	for attempt := 1; ; attempt++ {
		start := time.Now()
		resp, err := c.api.CreateChatCompletion(ctx, req)
		elapsed := time.Since(start)

		if err == nil {
			c.metrics.ObserveLLMAttempt(metrics.OutcomeSuccess, elapsed)
			if len(resp.Choices) == 0 {
				slog.Warn("LLM returned no choices", "model", c.cfg.Model)
				return "", ErrEmptyResponse
			}
			slog.Debug("Received advice", "model", c.cfg.Model, "attempt", attempt,
				"finish_reason", resp.Choices[0].FinishReason,
				"total_tokens", resp.Usage.TotalTokens)
			return resp.Choices[0].Message.Content, nil
		}

		kind := Classify(err)
		c.metrics.ObserveLLMAttempt(kind.outcome(), elapsed)

		switch kind {
		case KindUnauthorized:
			return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)

		case KindRateLimited:
			if attempt >= c.cfg.MaxAttempts {
				slog.Error("Rate limit exceeded", "attempts", c.cfg.MaxAttempts, "error", err)
				return "", fmt.Errorf("%w after %d attempts: %w", ErrRateLimited, c.cfg.MaxAttempts, err)
			}
			slog.Warn("Rate limited, retrying",
				"attempt", attempt,
				"max_attempts", c.cfg.MaxAttempts,
				"delay", c.cfg.RetryDelay,
			)
			c.metrics.IncLLMRetry()
			if werr := c.wait(ctx, c.cfg.RetryDelay); werr != nil {
				return "", fmt.Errorf("retry wait aborted: %w", werr)
			}

		default:
			return "", fmt.Errorf("chat completion failed: %w", err)
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
