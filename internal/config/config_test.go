package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
instance:
  id: test-coletor
provider:
  base_url: https://query1.finance.yahoo.com
  lookback_days: 5
database:
  host: localhost
  port: 5432
  name: test_db
  user: testuser
  password: testpass
pipeline:
  tickers:
    - PETR4.SA
    - VALE3.SA
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Instance.ID != "test-coletor" {
		t.Errorf("Instance.ID = %q, want %q", cfg.Instance.ID, "test-coletor")
	}
	if cfg.Provider.BaseURL != "https://query1.finance.yahoo.com" {
		t.Errorf("Provider.BaseURL = %q, want %q", cfg.Provider.BaseURL, "https://query1.finance.yahoo.com")
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "localhost")
	}
	if len(cfg.Pipeline.Tickers) != 2 || cfg.Pipeline.Tickers[0] != "PETR4.SA" {
		t.Errorf("Pipeline.Tickers = %v, want [PETR4.SA VALE3.SA]", cfg.Pipeline.Tickers)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
database:
  host: localhost
  name: test_db
  user: testuser
  password: ${TEST_DB_PASSWORD}
pipeline:
  tickers: [PETR4.SA]
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Password != "secret123" {
		t.Errorf("Database.Password = %q, want %q", cfg.Database.Password, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
database:
  host: localhost
  name: test_db
  user: testuser
  password: testpass
pipeline:
  tickers: [PETR4.SA]
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Provider.BaseURL != DefaultProviderBaseURL {
		t.Errorf("Provider.BaseURL = %q, want default %q", cfg.Provider.BaseURL, DefaultProviderBaseURL)
	}
	if cfg.Provider.LookbackDays != DefaultLookbackDays {
		t.Errorf("Provider.LookbackDays = %d, want %d", cfg.Provider.LookbackDays, DefaultLookbackDays)
	}
	if cfg.Provider.Timeout != 30*time.Second {
		t.Errorf("Provider.Timeout = %v, want 30s", cfg.Provider.Timeout)
	}
	if cfg.Database.Port != DefaultDBPort {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, DefaultDBPort)
	}
	if cfg.Database.SSLMode != DefaultDBSSLMode {
		t.Errorf("Database.SSLMode = %q, want %q", cfg.Database.SSLMode, DefaultDBSSLMode)
	}
	if cfg.Pipeline.Interval != DefaultRunInterval {
		t.Errorf("Pipeline.Interval = %v, want %v", cfg.Pipeline.Interval, DefaultRunInterval)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, DefaultLogLevel)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := &Config{
			Database: DBConfig{
				Host:     "localhost",
				Name:     "db",
				User:     "u",
				Password: "p",
			},
			Pipeline: PipelineConfig{
				Tickers: []string{"PETR4.SA"},
			},
		}
		c.applyDefaults()
		return c
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid config failed validation: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing db host", func(c *Config) { c.Database.Host = "" }},
		{"missing db name", func(c *Config) { c.Database.Name = "" }},
		{"missing db user", func(c *Config) { c.Database.User = "" }},
		{"missing db password", func(c *Config) { c.Database.Password = "" }},
		{"min conns above max", func(c *Config) { c.Database.MinConns = 10; c.Database.MaxConns = 2 }},
		{"no tickers", func(c *Config) { c.Pipeline.Tickers = nil }},
		{"empty ticker", func(c *Config) { c.Pipeline.Tickers = []string{"PETR4.SA", ""} }},
		{"negative lookback", func(c *Config) { c.Provider.LookbackDays = -1 }},
		{"missing base url", func(c *Config) { c.Provider.BaseURL = "" }},
		{"zero interval", func(c *Config) { c.Pipeline.Interval = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}
