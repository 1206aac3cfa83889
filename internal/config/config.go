package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration values for the service.
type Config struct {
	ListenAddr      string
	LogLevel        string
	TrendWindowDays int
	Triage          TriageConfig
}

// TriageConfig configures the outbound reasoning service call.
type TriageConfig struct {
	APIURL      string
	APIKey      string
	Model       string
	ModelLabel  string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Load reads an optional .env file from the working directory, then the environment,
// falling back to defaults for anything unset.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is not an error.
func LoadFrom(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Triage: TriageConfig{
			APIURL:     getEnv("TRIAGE_API_URL", "https://api.openai.com/v1/chat/completions"),
			APIKey:     os.Getenv("TRIAGE_API_KEY"),
			Model:      getEnv("TRIAGE_MODEL", "gpt-4"),
			ModelLabel: getEnv("TRIAGE_MODEL_LABEL", "GPT-4"),
		},
	}

	var err error
	if cfg.TrendWindowDays, err = getInt("TREND_WINDOW_DAYS", 7); err != nil {
		return nil, err
	}
	if cfg.Triage.MaxTokens, err = getInt("TRIAGE_MAX_TOKENS", 1500); err != nil {
		return nil, err
	}
	if cfg.Triage.Temperature, err = getFloat("TRIAGE_TEMPERATURE", 0.3); err != nil {
		return nil, err
	}
	if cfg.Triage.Timeout, err = getDuration("TRIAGE_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}

	if cfg.Triage.Temperature < 0 || cfg.Triage.Temperature > 2 {
		return nil, fmt.Errorf("TRIAGE_TEMPERATURE must be between 0 and 2, got %v", cfg.Triage.Temperature)
	}
	if cfg.Triage.MaxTokens <= 0 {
		return nil, fmt.Errorf("TRIAGE_MAX_TOKENS must be positive, got %d", cfg.Triage.MaxTokens)
	}
	if cfg.Triage.Timeout <= 0 {
		return nil, fmt.Errorf("TRIAGE_TIMEOUT must be positive, got %s", cfg.Triage.Timeout)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
