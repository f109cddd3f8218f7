package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/gemchat-dev/gemchat/internal/gemini"
)

// Config holds the flat application configuration.
type Config struct {
	BaseURL        string        `toml:"base_url" mapstructure:"base_url"`
	Model          string        `toml:"model" mapstructure:"model"`
	Token          string        `toml:"token" mapstructure:"token"`
	WelcomeMessage string        `toml:"welcome_message" mapstructure:"welcome_message"`
	ApologyMessage string        `toml:"apology_message" mapstructure:"apology_message"`
	SendDelay      time.Duration `toml:"send_delay" mapstructure:"send_delay"`
	RequestTimeout time.Duration `toml:"request_timeout" mapstructure:"request_timeout"` // 0 = no client-side timeout
	PromptDirs     []string      `toml:"prompt_dirs" mapstructure:"prompt_dirs"`
}

// NewDefaultConfig returns the defaults written by `gemchat init`.
func NewDefaultConfig(promptDir string) *Config {
	return &Config{
		BaseURL:        gemini.DefaultBaseURL,
		Model:          gemini.DefaultModel,
		Token:          "$GEMINI_API_KEY", // Default to env var
		WelcomeMessage: "Hi! How can I help you today?",
		ApologyMessage: "Sorry, something went wrong. Please try again.",
		SendDelay:      0,
		RequestTimeout: 0,
		PromptDirs:     []string{promptDir},
	}
}

// LoadConfig unmarshals the viper state, expands the token, and resolves
// prompt directories to absolute paths.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Token = ExpandEnvVar(cfg.Token)

	for i, dir := range cfg.PromptDirs {
		abs, err := ResolvePath(dir)
		if err != nil {
			return nil, fmt.Errorf("resolving prompt directory %q: %w", dir, err)
		}
		cfg.PromptDirs[i] = abs
	}

	return cfg, nil
}

// ClientConfig maps the app config onto the completion client settings.
func (c *Config) ClientConfig() gemini.Config {
	return gemini.Config{
		BaseURL: c.BaseURL,
		Model:   c.Model,
		Token:   c.Token,
		Timeout: c.RequestTimeout,
	}
}
