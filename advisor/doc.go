// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package advisor talks to the Groq chat completions API.

Groq speaks the OpenAI wire format, so the client is go-openai pointed at
https://api.groq.com/openai/v1.

	c := advisor.New(advisor.Config{
		APIKey:      cfg.GroqAPIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		MaxAttempts: cfg.MaxAttempts,
		RetryDelay:  cfg.RetryDelay,
	}, m)

	advice, err := c.Advise(ctx, budget.SystemPrompt, prompt)

# Retries

Only rate-limit failures are retried. With the defaults a request makes at
most 3 calls, pausing 10 seconds after each rate-limited one except the last.
The pause ends early if ctx is cancelled.

# Errors

	errors.Is(err, advisor.ErrRateLimited)   // retries exhausted → 429
	errors.Is(err, advisor.ErrUnauthorized)  // key rejected → 401
	anything else                            // → 500

Classify maps a raw API error to a Kind. HTTP 429 or code
rate_limit_exceeded is a rate limit; 401, 403 or code invalid_api_key is an
auth failure. Errors without a status (transport errors, wrapped strings)
are matched on their text.
*/
package advisor
