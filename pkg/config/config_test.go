package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chatlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Empty(t, cfg.Stopwords)
	assert.Equal(t, DefaultPositiveThreshold, cfg.Sentiment.PositiveThreshold)
	assert.Equal(t, DefaultNegativeThreshold, cfg.Sentiment.NegativeThreshold)
	assert.Empty(t, cfg.Webhooks)
}

func TestLoad_Full(t *testing.T) {
	stop := filepath.Join(t.TempDir(), "stop.txt")
	require.NoError(t, os.WriteFile(stop, []byte("the\n"), 0644))

	path := writeConfig(t, `
stopwords: `+stop+`
sentiment:
  positive_threshold: 0.1
  negative_threshold: -0.2
webhooks:
  - name: hook
    url: https://example.com/hook
    trigger: always
    timeout: 5s
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, stop, cfg.Stopwords)
	assert.Equal(t, 0.1, cfg.Sentiment.PositiveThreshold)
	assert.Equal(t, -0.2, cfg.Sentiment.NegativeThreshold)
	require.Len(t, cfg.Webhooks, 1)
	assert.Equal(t, WebhookTriggerAlways, cfg.Webhooks[0].Trigger)
	assert.Equal(t, 5*time.Second, cfg.Webhooks[0].Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_StopwordsMustExist(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Stopwords = filepath.Join(t.TempDir(), "missing.txt")

	assert.Error(t, Validate(cfg))
}

func TestValidate_SentimentThresholds(t *testing.T) {
	tests := []struct {
		name    string
		pos     float64
		neg     float64
		wantErr bool
	}{
		{name: "defaults applied when zero", pos: 0, neg: 0, wantErr: false},
		{name: "custom valid", pos: 0.2, neg: -0.3, wantErr: false},
		{name: "positive out of range", pos: 1.5, neg: -0.1, wantErr: true},
		{name: "negative out of range", pos: 0.1, neg: -2, wantErr: true},
		{name: "inverted", pos: -0.5, neg: 0.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Sentiment: SentimentConfig{
				PositiveThreshold: tt.pos,
				NegativeThreshold: tt.neg,
			}}
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Webhook(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Webhooks = []WebhookConfig{{URL: "ftp://example.com"}}
	assert.Error(t, Validate(cfg), "non-http scheme rejected")

	cfg.Webhooks = []WebhookConfig{{URL: "https://example.com/hook"}}
	require.NoError(t, Validate(cfg))
	assert.Equal(t, WebhookTriggerOnMessages, cfg.Webhooks[0].Trigger, "default trigger")
	assert.Equal(t, DefaultWebhookTimeout, cfg.Webhooks[0].Timeout)
}

func TestValidate_WebhookTokenEnvExpansion(t *testing.T) {
	t.Setenv("CHATLENS_TEST_TOKEN", "secret")

	cfg := DefaultConfig()
	cfg.Webhooks = []WebhookConfig{{URL: "https://example.com", Token: "${CHATLENS_TEST_TOKEN}"}}
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "secret", cfg.Webhooks[0].Token)
}
