/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Call LoadEnvFile first to pull values from a .env file:

	if err := cliparse.LoadEnvFile(os.Getenv("ENV_FILE")); err != nil {
		// malformed file
	}

Values already present in the environment are never overwritten by the file.

# Config Fields

  - Port: Server listen port (default: 5001)
  - GroqAPIKey: Groq API key (required)
  - Model: Chat model (default: llama-3.3-70b-versatile)
  - BaseURL: OpenAI-compatible endpoint (default: https://api.groq.com/openai/v1)
  - Temperature, MaxTokens: Sampling settings (0.7, 2048)
  - MaxAttempts, RetryDelay: Rate-limit retry policy (3 attempts, 10s apart)
  - RequestTimeout: Upper bound for one /analyze call (90s)
  - DatabaseURL, DatabaseType: Optional analysis history (sqlite or postgres)
  - LogLevel, LogFormat: Logging setup (info, auto)

# CLI Flags

	-p         Server port
	-api-key   Groq API key
	-model     Model name
	-base-url  API base URL
	-d         Database URL
	-t         Database type

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	GROQ_API_KEY   → -api-key
	GROQ_MODEL     → -model
	GROQ_BASE_URL  → -base-url
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t

Environment only:

	LLM_TEMPERATURE, LLM_MAX_TOKENS, LLM_MAX_ATTEMPTS,
	LLM_RETRY_DELAY ("10s" or "10"), ANALYZE_TIMEOUT,
	LOG_LEVEL, LOG_FORMAT

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if GROQ_API_KEY is missing or if any value is out
of range. Range checks use go-playground/validator struct tags on Config.
*/
package cliparse
