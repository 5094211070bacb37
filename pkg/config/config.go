package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and normalizes defaults.
func Validate(cfg *Config) error {
	if err := validateSentiment(&cfg.Sentiment); err != nil {
		return fmt.Errorf("sentiment: %w", err)
	}

	if cfg.Stopwords != "" {
		if _, err := os.Stat(cfg.Stopwords); err != nil {
			return fmt.Errorf("stopwords: %w", err)
		}
	}

	// Webhooks are optional, but validate if present
	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateSentiment(s *SentimentConfig) error {
	if s.PositiveThreshold == 0 && s.NegativeThreshold == 0 {
		s.PositiveThreshold = DefaultPositiveThreshold
		s.NegativeThreshold = DefaultNegativeThreshold
	}

	if s.PositiveThreshold < -1 || s.PositiveThreshold > 1 {
		return fmt.Errorf("positive_threshold %v outside [-1, 1]", s.PositiveThreshold)
	}
	if s.NegativeThreshold < -1 || s.NegativeThreshold > 1 {
		return fmt.Errorf("negative_threshold %v outside [-1, 1]", s.NegativeThreshold)
	}
	if s.NegativeThreshold >= s.PositiveThreshold {
		return errors.New("negative_threshold must be below positive_threshold")
	}

	return nil
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("url must have a host")
	}

	wh.Token = expandEnvVar(wh.Token)

	if wh.Trigger != "" {
		switch wh.Trigger {
		case WebhookTriggerOnMessages, WebhookTriggerAlways, WebhookTriggerNever:
			// Valid
		default:
			return fmt.Errorf("invalid trigger %q (must be on_messages, always, or never)", wh.Trigger)
		}
	} else {
		wh.Trigger = WebhookTriggerOnMessages
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}

	if strings.HasPrefix(s, "$") {
		return os.Getenv(s[1:])
	}

	return s
}
