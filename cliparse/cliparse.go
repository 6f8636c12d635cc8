package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Defaults
const (
	DefaultPort           = 5001
	DefaultModel          = "llama-3.3-70b-versatile"
	DefaultBaseURL        = "https://api.groq.com/openai/v1"
	DefaultTemperature    = 0.7
	DefaultMaxTokens      = 2048
	DefaultMaxAttempts    = 3
	DefaultRetryDelay     = 10 * time.Second
	DefaultRequestTimeout = 90 * time.Second
)

type Config struct {
	Port       int    `validate:"min=1,max=65535"`
	GroqAPIKey string `validate:"required"`
	Model      string `validate:"required"`
	BaseURL    string `validate:"required,url"`

	Temperature    float32       `validate:"gte=0,lte=2"`
	MaxTokens      int           `validate:"gt=0"`
	MaxAttempts    int           `validate:"min=1,max=10"`
	RetryDelay     time.Duration `validate:"gte=0"`
	RequestTimeout time.Duration `validate:"gt=0"`

	// Optional analysis history; empty DatabaseURL disables it
	DatabaseURL  string
	DatabaseType string `validate:"oneof=sqlite postgres"`

	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=auto text json"`
}

// HistoryEnabled reports whether analyses should be persisted
func (c Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}

var validate = validator.New()

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables already set are left alone and a missing file is
// not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pocketsmart", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Model, "model", "", "Groq model name")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "OpenAI-compatible API base URL")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for analysis history (optional)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secret (prefer env variable, but allow CLI for dev)
	fs.StringVar(&cfg.GroqAPIKey, "api-key", "", "Groq API key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", DefaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if cfg.GroqAPIKey == "" {
		cfg.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	}
	if cfg.GroqAPIKey == "" {
		return Config{}, errors.New("GROQ_API_KEY not found, set it in your .env file or pass -api-key")
	}
	if cfg.Model == "" {
		cfg.Model = envString("GROQ_MODEL", DefaultModel)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = envString("GROQ_BASE_URL", DefaultBaseURL)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envString("DATABASE_TYPE", "sqlite")
	}

	temperature, err := envFloat("LLM_TEMPERATURE", DefaultTemperature)
	if err != nil {
		return Config{}, err
	}
	cfg.Temperature = float32(temperature)
	if cfg.MaxTokens, err = envInt("LLM_MAX_TOKENS", DefaultMaxTokens); err != nil {
		return Config{}, err
	}
	if cfg.MaxAttempts, err = envInt("LLM_MAX_ATTEMPTS", DefaultMaxAttempts); err != nil {
		return Config{}, err
	}
	if cfg.RetryDelay, err = envDuration("LLM_RETRY_DELAY", DefaultRetryDelay); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = envDuration("ANALYZE_TIMEOUT", DefaultRequestTimeout); err != nil {
		return Config{}, err
	}

	cfg.LogLevel = strings.ToLower(envString("LOG_LEVEL", "info"))
	cfg.LogFormat = strings.ToLower(envString("LOG_FORMAT", "auto"))

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return v, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return v, nil
}

// envDuration accepts Go durations ("10s") or a bare number of seconds
func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return d, nil
}
