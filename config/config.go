// Package config manages application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrAPIKeyMissing indicates no API key was found in the environment or the
// env file.
var ErrAPIKeyMissing = errors.New("config: YT_API_KEY not set")

// Config holds all application configuration.
type Config struct {
	// APIKey is the YouTube Data API v3 key.
	APIKey string

	// EnvFile is the dotenv file consulted for the API key. It may be a
	// regular file or a readable named pipe. Default: ".env"
	EnvFile string

	// RequestTimeout is the timeout for individual API requests.
	RequestTimeout time.Duration

	// MaxVideos limits the number of videos to export (0 = all).
	MaxVideos int
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		EnvFile:        ".env",
		RequestTimeout: 30 * time.Second,
		MaxVideos:      0,
	}
}

// Load loads configuration from the env file and environment variables, and
// applies defaults. Priority: env vars > env file > defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("YTDUMP_ENV_FILE"); v != "" {
		cfg.EnvFile = v
	}

	// The env file is optional.
	if err := cfg.loadFromEnvFile(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromEnvFile reads the dotenv file. os.ReadFile drains named pipes the
// same way it reads regular files, so a key delivered over a FIFO works too.
func (c *Config) loadFromEnvFile() error {
	data, err := os.ReadFile(c.EnvFile)
	if err != nil {
		return err
	}

	vars, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return fmt.Errorf("parse %s: %w", c.EnvFile, err)
	}

	if v := vars["YT_API_KEY"]; v != "" {
		c.APIKey = v
	}
	return nil
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YT_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("YTDUMP_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RequestTimeout = d
		}
	}
	if v := os.Getenv("YTDUMP_MAX_VIDEOS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxVideos = n
		}
	}
}

// Validate checks that configuration values are valid and consistent.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrAPIKeyMissing
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	if c.MaxVideos < 0 {
		return fmt.Errorf("max videos must be non-negative")
	}
	return nil
}
