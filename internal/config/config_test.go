package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("MAX_REPO_PAGES", "2")
	t.Setenv("VERBOSE", "true")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.GitHubToken != "ghp_test" {
		t.Errorf("GitHubToken = %q, want ghp_test", cfg.GitHubToken)
	}
	if cfg.CacheTTL != 30*time.Minute {
		t.Errorf("CacheTTL = %v, want 30m", cfg.CacheTTL)
	}
	if cfg.MaxRepoPages != 2 {
		t.Errorf("MaxRepoPages = %d, want 2", cfg.MaxRepoPages)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("MAX_REPO_PAGES", "")
	t.Setenv("MAX_EVENT_PAGES", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.GitHubToken != "" {
		t.Errorf("GitHubToken = %q, want empty", cfg.GitHubToken)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
	}
	if cfg.MaxRepoPages != 5 {
		t.Errorf("MaxRepoPages = %d, want 5", cfg.MaxRepoPages)
	}
	if cfg.MaxEventPages != 3 {
		t.Errorf("MaxEventPages = %d, want 3", cfg.MaxEventPages)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CACHE_TTL", "not-a-duration")
	t.Setenv("MAX_REPO_PAGES", "many")
	t.Setenv("VERBOSE", "yep")

	cfg := Load()

	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want default 1h", cfg.CacheTTL)
	}
	if cfg.MaxRepoPages != 5 {
		t.Errorf("MaxRepoPages = %d, want default 5", cfg.MaxRepoPages)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want default false")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:          "8080",
			CacheTTL:      time.Hour,
			MaxRepoPages:  5,
			MaxEventPages: 3,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"valid without token", func(c *Config) { c.GitHubToken = "" }, false},
		{"empty port", func(c *Config) { c.Port = "" }, true},
		{"non-numeric port", func(c *Config) { c.Port = "eighty" }, true},
		{"zero ttl", func(c *Config) { c.CacheTTL = 0 }, true},
		{"negative ttl", func(c *Config) { c.CacheTTL = -time.Minute }, true},
		{"zero repo pages", func(c *Config) { c.MaxRepoPages = 0 }, true},
		{"zero event pages", func(c *Config) { c.MaxEventPages = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
