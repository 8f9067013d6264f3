package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the TUI and the CLI subcommands.
type Config struct {
	// AnalysisDelay is the simulated analysis time. Default: 2.2s.
	AnalysisDelay time.Duration

	// ChatMinDelay and ChatMaxDelay bound the counselor's thinking time.
	// The delay is drawn from [ChatMinDelay, ChatMaxDelay).
	ChatMinDelay time.Duration
	ChatMaxDelay time.Duration

	// Seed feeds the random source. Zero means time based.
	Seed uint64

	// CatalogPath overrides the embedded catalogue when set.
	CatalogPath string

	LogFile string
	LogMode string // "dev" or "prod"
}

// DefaultConfig returns a Config with the stock timings.
func DefaultConfig() Config {
	return Config{
		AnalysisDelay: 2200 * time.Millisecond,
		ChatMinDelay:  1200 * time.Millisecond,
		ChatMaxDelay:  2000 * time.Millisecond,
		LogMode:       "dev",
	}
}

// ConfigFromEnv loads an optional .env file and then overlays PATHWISE_*
// variables on the defaults.
func ConfigFromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"PATHWISE_ANALYSIS_DELAY", &cfg.AnalysisDelay},
		{"PATHWISE_CHAT_MIN_DELAY", &cfg.ChatMinDelay},
		{"PATHWISE_CHAT_MAX_DELAY", &cfg.ChatMaxDelay},
	}
	for _, d := range durations {
		v := getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if v := getenv("PATHWISE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("PATHWISE_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := getenv("PATHWISE_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := getenv("PATHWISE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := getenv("PATHWISE_LOG_MODE"); v != "" {
		cfg.LogMode = v
	}

	return cfg, nil
}

// Validate rejects negative delays, an inverted chat window and unknown log
// modes.
func (c Config) Validate() error {
	if c.AnalysisDelay < 0 {
		return fmt.Errorf("analysis delay must not be negative, got %s", c.AnalysisDelay)
	}
	if c.ChatMinDelay < 0 {
		return fmt.Errorf("chat min delay must not be negative, got %s", c.ChatMinDelay)
	}
	if c.ChatMaxDelay < c.ChatMinDelay {
		return fmt.Errorf("chat max delay %s is below min delay %s", c.ChatMaxDelay, c.ChatMinDelay)
	}
	switch c.LogMode {
	case "dev", "prod":
	default:
		return fmt.Errorf("unknown log mode: %q", c.LogMode)
	}
	return nil
}
