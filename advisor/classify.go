// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package advisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/Shreyashh2909/Pocket-Smart-AI/metrics"
)

// Kind groups upstream failures by how the API should react to them
type Kind int

const (
	KindOther Kind = iota
	KindRateLimited
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "other"
	}
}

func (k Kind) outcome() string {
	switch k {
	case KindRateLimited:
		return metrics.OutcomeRateLimited
	case KindUnauthorized:
		return metrics.OutcomeUnauthorized
	default:
		return metrics.OutcomeError
	}
}

// Classify inspects an error from the chat completions API.
// Errors that carry an HTTP status are judged by status and error code;
// anything else falls back to matching the error text.
func Classify(err error) Kind {
	if err == nil {
		return KindOther
	}
	if errors.Is(err, ErrRateLimited) {
		return KindRateLimited
	}
	if errors.Is(err, ErrUnauthorized) {
		return KindUnauthorized
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindOther
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return classifyStatus(apiErr.HTTPStatusCode, codeString(apiErr.Code))
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return classifyStatus(reqErr.HTTPStatusCode, "")
	}

	return classifyText(err.Error())
}

func classifyStatus(status int, code string) Kind {
	switch {
	case status == http.StatusTooManyRequests || code == "rate_limit_exceeded":
		return KindRateLimited
	case status == http.StatusUnauthorized || status == http.StatusForbidden || code == "invalid_api_key":
		return KindUnauthorized
	default:
		return KindOther
	}
}

func classifyText(msg string) Kind {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "rate"), strings.Contains(msg, "429"), strings.Contains(msg, "limit"):
		return KindRateLimited
	case strings.Contains(msg, "api_key"), strings.Contains(msg, "api key"), strings.Contains(msg, "authenticat"):
		return KindUnauthorized
	default:
		return KindOther
	}
}

func codeString(code any) string {
	if code == nil {
		return ""
	}
	return fmt.Sprint(code)
}
