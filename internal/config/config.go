// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the analyzer service.
type Config struct {
	Port          string
	GitHubToken   string
	CacheTTL      time.Duration
	MaxRepoPages  int
	MaxEventPages int
	Verbose       bool
}

// Load reads configuration from environment variables, applying defaults.
// GITHUB_TOKEN is optional: without it the service runs against GitHub's
// unauthenticated quota.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		GitHubToken:   os.Getenv("GITHUB_TOKEN"),
		CacheTTL:      getEnvDuration("CACHE_TTL", time.Hour),
		MaxRepoPages:  getEnvInt("MAX_REPO_PAGES", 5),
		MaxEventPages: getEnvInt("MAX_EVENT_PAGES", 3),
		Verbose:       getEnvBool("VERBOSE", false),
	}
}

// Validate checks that all fields are consistent.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %s", c.CacheTTL)
	}
	if c.MaxRepoPages < 1 {
		return fmt.Errorf("MAX_REPO_PAGES must be at least 1")
	}
	if c.MaxEventPages < 1 {
		return fmt.Errorf("MAX_EVENT_PAGES must be at least 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
