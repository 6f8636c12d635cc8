// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the PocketSmart AI server.

PocketSmart AI takes a monthly income and a breakdown of expenses, turns them
into a prompt and asks a Groq-hosted model for budgeting advice.

# Starting the Server

The only required setting is the Groq API key, read from the environment or
a .env file in the working directory:

	GROQ_API_KEY=gsk_... go run .

Or with flags:

	go run . -p 5001 -model llama-3.3-70b-versatile -api-key gsk_...

# Configuration

Required settings:

  - GROQ_API_KEY (-api-key): Groq API key

Optional settings:

  - PORT (-p): Server port (default: 5001)
  - GROQ_MODEL (-model): Chat model (default: llama-3.3-70b-versatile)
  - GROQ_BASE_URL (-base-url): OpenAI-compatible endpoint
  - LLM_TEMPERATURE, LLM_MAX_TOKENS: Sampling settings (0.7, 2048)
  - LLM_MAX_ATTEMPTS, LLM_RETRY_DELAY: Rate limit retries (3 attempts, 10s apart)
  - ANALYZE_TIMEOUT: Upper bound for one analysis (default: 90s)
  - DATABASE_URL (-d), DATABASE_TYPE (-t): Enables analysis history (sqlite or postgres)
  - LOG_LEVEL, LOG_FORMAT: Logging (info, auto)
  - ENV_FILE: dotenv file to load (default: .env)

# Architecture

  - handlers: HTTP request handlers (analyze, history, landing page)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - budget: Input validation and prompt rendering
  - advisor: Groq client with rate limit retries
  - db: Optional analysis history
  - metrics: Prometheus collectors
  - logging: slog setup
  - models: Request/response types
  - cliparse: Configuration parsing
  - web: Embedded landing page

See package documentation for each component.
*/
package main
