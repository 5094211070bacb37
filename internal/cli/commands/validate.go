package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/pkg/config"
	"github.com/chatlens/chatlens/pkg/stopwords"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a ChatLens configuration file without running analysis.

Checks:
  - YAML syntax
  - Sentiment threshold ranges
  - Stopword file existence and readability
  - Webhook URL, trigger, and timeout settings`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Sentiment: positive > %v, negative < %v\n",
		cfg.Sentiment.PositiveThreshold, cfg.Sentiment.NegativeThreshold)
	fmt.Fprintf(w, "  Webhooks:  %d\n", len(cfg.Webhooks))

	for i, wh := range cfg.Webhooks {
		name := wh.Name
		if name == "" {
			name = wh.URL
		}
		fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, wh.Trigger, name)
	}

	if cfg.Stopwords != "" {
		stop, err := stopwords.Load(cfg.Stopwords)
		if err != nil {
			return fmt.Errorf("loading stopwords: %w", err)
		}
		fmt.Fprintf(w, "\nStopwords: %s (%d words)\n", cfg.Stopwords, stop.Len())
	} else {
		fmt.Fprintf(w, "\nStopwords: bundled default list (%d words)\n", stopwords.Default().Len())
	}

	return nil
}
