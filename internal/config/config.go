// Package config provides configuration for the debate orchestrator.
package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/jkcg-learning/debate/internal/logging"
)

// ModeMock selects the deterministic mock LLM client.
const ModeMock = "MOCK"

// Config holds the orchestrator configuration.
type Config struct {
	// Server settings
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Usage ledger
	DatabaseURL string `env:"DATABASE_URL" envDefault:"file:debate.db?mode=rwc&_busy_timeout=5000&_journal_mode=WAL"`

	// LLM settings
	LLMBaseURL     string  `env:"LLM_BASE_URL" envDefault:"http://localhost:4000"`
	LLMAPIKey      string  `env:"LLM_API_KEY"`
	LLMModel       string  `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	LLMTemperature float64 `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	LLMTimeoutMs   int     `env:"LLM_TIMEOUT_MS" envDefault:"120000"`
	Mode           string  `env:"DEBATE_MODE"`

	// Debate settings
	Rounds       int    `env:"DEBATE_ROUNDS" envDefault:"3"`
	PersonasFile string `env:"PERSONAS_FILE"`
	PolicyFile   string `env:"POLICY_FILE"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that env tags cannot express.
func (c *Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", c.HTTPPort)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("DEBATE_ROUNDS must be at least 1, got %d", c.Rounds)
	}
	if c.LLMTimeoutMs <= 0 {
		return fmt.Errorf("LLM_TIMEOUT_MS must be positive, got %d", c.LLMTimeoutMs)
	}
	if c.LLMTemperature < 0 || c.LLMTemperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be within [0, 2], got %v", c.LLMTemperature)
	}
	if level := strings.ToUpper(strings.TrimSpace(c.LogLevel)); level != "" && !slices.Contains(logging.ValidLevels(), level) {
		return fmt.Errorf("LOG_LEVEL must be one of %s, got %q", strings.Join(logging.ValidLevels(), ", "), c.LogLevel)
	}
	return nil
}

// LLMTimeout returns the per-call timeout of the LLM client.
func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutMs) * time.Millisecond
}

// UseMockLLM reports whether the mock LLM client is selected.
func (c *Config) UseMockLLM() bool {
	return c.Mode == ModeMock
}
