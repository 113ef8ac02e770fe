package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config controls the nudge writer. Generation stays off unless
// PEAK_LLM_ENABLED is set, and even then a plan only uses it when the
// caller asks for generated nudges.
type Config struct {
	Enabled  bool
	LogCalls bool
	Endpoint string
	Model    string

	Temperature float64
	MaxTokens   int
	// AttemptTimeout bounds a single call to the model. The caller's
	// context bounds the whole write, retries included.
	AttemptTimeout time.Duration
	MaxRetries     int
	// MaxNudgeRunes rejects lines that read as commentary rather than an
	// instruction.
	MaxNudgeRunes int
}

func DefaultConfig() Config {
	return Config{
		Endpoint:       "http://localhost:11434",
		Model:          "llama3.2",
		Temperature:    0.7,
		MaxTokens:      300,
		AttemptTimeout: 4 * time.Second,
		MaxRetries:     1,
		MaxNudgeRunes:  160,
	}
}

// LoadConfig overlays PEAK_LLM_* environment variables on the defaults.
// Malformed values are reported instead of silently ignored.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	l := envLoader{}

	cfg.Enabled = l.bool("PEAK_LLM_ENABLED", cfg.Enabled)
	cfg.LogCalls = l.bool("PEAK_LLM_LOG_CALLS", cfg.LogCalls)
	if v := os.Getenv("PEAK_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PEAK_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	cfg.Temperature = l.float("PEAK_LLM_TEMPERATURE", cfg.Temperature)
	cfg.MaxTokens = l.int("PEAK_LLM_MAX_TOKENS", cfg.MaxTokens, 1)
	cfg.AttemptTimeout = time.Duration(l.int("PEAK_LLM_TIMEOUT_MS", int(cfg.AttemptTimeout/time.Millisecond), 1)) * time.Millisecond
	cfg.MaxRetries = l.int("PEAK_LLM_MAX_RETRIES", cfg.MaxRetries, 0)

	if l.err != nil {
		return DefaultConfig(), l.err
	}
	return cfg, nil
}

// envLoader keeps the first parse failure so LoadConfig can read every
// variable before reporting.
type envLoader struct {
	err error
}

func (l *envLoader) fail(key, v, want string) {
	if l.err == nil {
		l.err = fmt.Errorf("%s must be %s, got %q", key, want, v)
	}
}

func (l *envLoader) bool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		l.fail(key, v, "a boolean")
		return fallback
	}
	return b
}

func (l *envLoader) int(key string, fallback, floor int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < floor {
		l.fail(key, v, fmt.Sprintf("an integer >= %d", floor))
		return fallback
	}
	return n
}

func (l *envLoader) float(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		l.fail(key, v, "a non-negative number")
		return fallback
	}
	return f
}
