package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DefaultTicker string `yaml:"default_ticker"`
	Market        struct {
		BaseURL      string `yaml:"base_url"`
		HistoryRange string `yaml:"history_range"`
		APIKeyEnv    string `yaml:"api_key_env"`
	} `yaml:"market"`
	News struct {
		BaseURL    string `yaml:"base_url"`
		MaxResults int    `yaml:"max_results"`
	} `yaml:"news"`
	LLM struct {
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float32 `yaml:"temperature"`
		APIKeyEnv   string  `yaml:"api_key_env"`
	} `yaml:"llm"`
}

func (c *Config) Validate() error {
	if c.DefaultTicker == "" {
		return errors.New("default_ticker cannot be empty")
	}
	if c.LLM.Provider != "GEMINI" && c.LLM.Provider != "NONE" {
		return fmt.Errorf("invalid llm.provider '%s': must be 'GEMINI' or 'NONE'", c.LLM.Provider)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive, got %d", c.LLM.MaxTokens)
	}
	if c.News.MaxResults <= 0 {
		return fmt.Errorf("news.max_results must be positive, got %d", c.News.MaxResults)
	}
	return nil
}

// DefaultConfig returns the configuration used when no config file exists.
// The dashboard must run with zero setup beyond API keys in the environment.
func DefaultConfig() *Config {
	c := &Config{}
	applyDefaults(c)
	return c
}

func applyDefaults(c *Config) {
	if c.DefaultTicker == "" {
		c.DefaultTicker = "NVDA"
	}
	if c.Market.BaseURL == "" {
		c.Market.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.Market.HistoryRange == "" {
		c.Market.HistoryRange = "1y"
	}
	if c.Market.APIKeyEnv == "" {
		c.Market.APIKeyEnv = "MARKET_API_KEY"
	}
	if c.News.BaseURL == "" {
		c.News.BaseURL = "https://html.duckduckgo.com"
	}
	if c.News.MaxResults == 0 {
		c.News.MaxResults = 10
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "GEMINI"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gemini-2.0-flash-exp"
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 500
	}
	if c.LLM.APIKeyEnv == "" {
		c.LLM.APIKeyEnv = "GEMINI_API_KEY"
	}
}

// LoadConfig reads the YAML config at path. A missing file is not an error;
// built-in defaults are returned so the app starts without any setup.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
