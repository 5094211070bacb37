package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/logging"
	"github.com/chatlens/chatlens/pkg/config"
	"github.com/chatlens/chatlens/pkg/ingest"
	"github.com/chatlens/chatlens/pkg/output"
	"github.com/chatlens/chatlens/pkg/parser"
	"github.com/chatlens/chatlens/pkg/stats"
	"github.com/chatlens/chatlens/pkg/stopwords"
	"github.com/chatlens/chatlens/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	Config  string
	Sender  string
	Output  string
	Verbose bool
	Quiet   bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <transcript>",
		Short: "Analyze a chat transcript",
		Long: `Analyze an exported chat transcript (.txt, or the .zip export that
contains one) and report message statistics.

Reports:
  - Volume (messages, words, media, links)
  - Busiest senders and their contribution
  - Word and emoji frequency
  - Monthly and daily timelines, weekday/month activity, hourly heatmap
  - Sentiment tally

Exit codes:
  0 - Analysis produced a non-empty report
  1 - Transcript contained no recognizable messages
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.Sender, "sender", "s", stats.Overall, "Limit statistics to one sender")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show full tables, timelines, and the heatmap")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_messages", "When to fire webhook (on_messages|always|never)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	path := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	log := logging.New(cmd.ErrOrStderr(), opts.Verbose)
	start := time.Now()

	// Load configuration
	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Read and decode the transcript
	// #nosec G304 - path is provided by user via CLI
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading transcript: %w", err)
	}

	text, encoding, err := ingest.Load(data)
	if err != nil {
		return fmt.Errorf("decoding transcript: %w", err)
	}
	log.Debug().Str("encoding", encoding).Int("bytes", len(data)).Msg("transcript decoded")

	// Parse into a corpus
	result := parser.Parse(text)
	log.Debug().
		Int("messages", result.Corpus.Len()).
		Int("dropped_leading", result.Stats.DroppedLeading).
		Msg("transcript parsed")

	// Build the statistics engine
	stop, err := loadStopwords(cfg)
	if err != nil {
		return err
	}
	engine := stats.NewEngine(stop, stats.WithSentimentThresholds(
		cfg.Sentiment.PositiveThreshold,
		cfg.Sentiment.NegativeThreshold,
	))

	sender := opts.Sender
	if sender == "" {
		sender = stats.Overall
	}
	if sender != stats.Overall && !knownSender(result.Corpus, sender) {
		log.Warn().Str("sender", sender).Msg("sender not found in transcript")
	}

	// Create report
	report := output.NewReport(engine, result, sender, output.Metadata{
		Source:     path,
		Encoding:   encoding,
		ConfigFile: opts.Config,
		AnalyzedAt: time.Now(),
		Duration:   time.Since(start),
	})

	// Create formatter
	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	// Output report
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Send webhooks (errors logged but don't fail analysis)
	sendWebhooks(ctx, log, cfg, opts, report)

	// Set exit code based on results
	if !report.HasMessages() {
		ExitCode = 1
	}

	return nil
}

// loadConfig loads the config file, or returns validated defaults when no
// path is given.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		cfg := config.DefaultConfig()
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.Load(ctx, path)
}

// loadStopwords resolves the stopword set from config. A configured path
// that cannot be read is fatal.
func loadStopwords(cfg *config.Config) (*stopwords.Set, error) {
	if cfg.Stopwords == "" {
		return stopwords.Default(), nil
	}
	return stopwords.Load(cfg.Stopwords)
}

func knownSender(c *parser.Corpus, sender string) bool {
	for _, s := range c.Senders() {
		if s == sender {
			return true
		}
	}
	return false
}

func createFormatter(opts *AnalyzeOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged but don't fail the analysis.
func sendWebhooks(ctx context.Context, log zerolog.Logger, cfg *config.Config, opts *AnalyzeOptions, report *output.Report) {
	webhooks := collectWebhooks(cfg, opts)

	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, report.HasMessages()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Trigger: string(wh.Trigger),
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			log.Info().
				Str("webhook", name).
				Int("status", resp.StatusCode).
				Dur("duration", resp.Duration).
				Msg("webhook sent")
		} else {
			log.Error().
				Str("webhook", name).
				Err(resp.Error).
				Msg("webhook failed")
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *AnalyzeOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)

	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnMessages
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire for this report.
func shouldFireWebhook(trigger config.WebhookTrigger, hasMessages bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	case config.WebhookTriggerOnMessages:
		return hasMessages
	default:
		// Default to on_messages
		return hasMessages
	}
}
