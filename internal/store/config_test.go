package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultTicker != "NVDA" {
		t.Errorf("Expected default ticker NVDA, got %s", cfg.DefaultTicker)
	}
	if cfg.Market.BaseURL != "https://query1.finance.yahoo.com" {
		t.Errorf("Unexpected market base URL: %s", cfg.Market.BaseURL)
	}
	if cfg.Market.HistoryRange != "1y" {
		t.Errorf("Expected 1y history range, got %s", cfg.Market.HistoryRange)
	}
	if cfg.News.MaxResults != 10 {
		t.Errorf("Expected 10 max news results, got %d", cfg.News.MaxResults)
	}
	if cfg.LLM.Provider != "GEMINI" {
		t.Errorf("Expected GEMINI provider, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gemini-2.0-flash-exp" {
		t.Errorf("Unexpected model: %s", cfg.LLM.Model)
	}
	if cfg.LLM.MaxTokens != 500 {
		t.Errorf("Expected 500 max tokens, got %d", cfg.LLM.MaxTokens)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty ticker", func(c *Config) { c.DefaultTicker = "" }},
		{"bad provider", func(c *Config) { c.LLM.Provider = "OPENAI" }},
		{"negative tokens", func(c *Config) { c.LLM.MaxTokens = -1 }},
		{"zero news results", func(c *Config) { c.News.MaxResults = -5 }},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("Expected validation error for %s", tc.name)
		}
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got %v", err)
	}

	if cfg.DefaultTicker != "NVDA" {
		t.Errorf("Expected default ticker, got %s", cfg.DefaultTicker)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `default_ticker: AAPL
news:
  max_results: 5
llm:
  provider: NONE
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected config to load, got %v", err)
	}

	if cfg.DefaultTicker != "AAPL" {
		t.Errorf("Expected AAPL, got %s", cfg.DefaultTicker)
	}
	if cfg.News.MaxResults != 5 {
		t.Errorf("Expected 5 max results, got %d", cfg.News.MaxResults)
	}
	if cfg.LLM.Provider != "NONE" {
		t.Errorf("Expected NONE provider, got %s", cfg.LLM.Provider)
	}

	// Unset fields still get defaults.
	if cfg.Market.BaseURL != "https://query1.finance.yahoo.com" {
		t.Errorf("Expected default market base URL, got %s", cfg.Market.BaseURL)
	}
	if cfg.LLM.MaxTokens != 500 {
		t.Errorf("Expected default max tokens, got %d", cfg.LLM.MaxTokens)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("llm:\n  provider: OPENAI\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected validation error for unsupported provider")
	}
}
