// Package config provides configuration loading and validation for chatlens.
package config

import "time"

// Config is the root configuration structure loaded from YAML. All fields
// are optional; a missing config file means pure defaults.
type Config struct {
	// Stopwords is the path to a stopword list file. Empty means the
	// bundled default list. A configured path that cannot be read is a
	// fatal error at load time, never a silent fallback.
	Stopwords string `yaml:"stopwords,omitempty"`

	Sentiment SentimentConfig `yaml:"sentiment,omitempty"`

	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// SentimentConfig holds the compound-score classification cutoffs.
type SentimentConfig struct {
	// PositiveThreshold: compound scores strictly above are Positive.
	PositiveThreshold float64 `yaml:"positive_threshold"`

	// NegativeThreshold: compound scores strictly below are Negative.
	NegativeThreshold float64 `yaml:"negative_threshold"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnMessages fires only when the corpus is non-empty
	// (default).
	WebhookTriggerOnMessages WebhookTrigger = "on_messages"
	// WebhookTriggerAlways fires after every analysis.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint that receives the JSON report.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication. Supports
	// ${VAR} and $VAR environment expansion.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires. Defaults to
	// "on_messages" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout. Defaults to 10s.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
