package config

import "time"

// Default values for configuration.
const (
	DefaultPositiveThreshold = 0.05
	DefaultNegativeThreshold = -0.05
	DefaultWebhookTimeout    = 10 * time.Second
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Sentiment: SentimentConfig{
			PositiveThreshold: DefaultPositiveThreshold,
			NegativeThreshold: DefaultNegativeThreshold,
		},
	}
}
