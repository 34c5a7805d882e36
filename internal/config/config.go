package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Transcript source. Empty means the embedded sample.
	TranscriptPath string

	// Results paging
	PageSize int

	// API rate limiting (requests per second per server)
	APIRateLimit float64
	APIRateBurst int

	// Terminal front-end preferences database
	PrefsPath string

	// HTTP timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real env vars take precedence.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8090"),

		TranscriptPath: os.Getenv("TRANSCRIPT_PATH"),

		PageSize: envInt("PAGE_SIZE", 10),

		APIRateLimit: envFloat("API_RATE_LIMIT", 20),
		APIRateBurst: envInt("API_RATE_BURST", 40),

		PrefsPath: envOr("PREFS_PATH", defaultPrefsPath()),

		ReadTimeout:     envDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    envDuration("WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.APIRateLimit <= 0 {
		cfg.APIRateLimit = 20
	}
	if cfg.APIRateBurst <= 0 {
		cfg.APIRateBurst = 40
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %q", c.Port)
	}
	if c.TranscriptPath != "" {
		if _, err := os.Stat(c.TranscriptPath); err != nil {
			return fmt.Errorf("TRANSCRIPT_PATH: %w", err)
		}
	}
	return nil
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "wordsearch-prefs.db"
	}
	return filepath.Join(dir, "wordsearch", "prefs.db")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
