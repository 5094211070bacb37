package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/pkg/config"
	"github.com/chatlens/chatlens/pkg/detector"
	"github.com/chatlens/chatlens/pkg/ingest"
	"github.com/chatlens/chatlens/pkg/parser"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	Config  string
	Verbose bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <transcript>",
		Short: "Diagnose common transcript and configuration issues",
		Long: `Diagnose common transcript and configuration issues.

This command checks a transcript (and optionally a config file) for
common problems:
- Transcript file existence, zip structure, and character encoding
- Line format matching against the actual content
- Parse results (message count, dropped lines)
- Configuration validity (stopwords, thresholds, webhooks)

Example:
  chatlens diagnose chat.txt
  chatlens diagnose -c chatlens.yaml -v export.zip`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Configuration file to check")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")

	return cmd
}

func runDiagnose(cmd *cobra.Command, path string, opts *DiagnoseOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := cmd.OutOrStdout()
	results := []DiagnosticResult{}

	// 1. Check transcript file existence
	result := checkTranscriptExists(path)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(w, results, opts)
		return nil
	}

	// 2. Decode the transcript
	text, decodeResults := checkDecodable(path)
	results = append(results, decodeResults...)
	if text == "" {
		printDiagnostics(w, results, opts)
		return nil
	}

	// 3. Check line format against actual content
	results = append(results, checkLineFormat(text, opts)...)

	// 4. Parse the transcript
	results = append(results, checkParse(text)...)

	// 5. Check configuration if given
	if opts.Config != "" {
		results = append(results, checkConfig(ctx, opts)...)
	}

	printDiagnostics(w, results, opts)
	return nil
}

func checkTranscriptExists(path string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Transcript File",
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.Status = "error"
		result.Message = fmt.Sprintf("Transcript not found: %s", path)
		result.Suggests = []string{
			"Check the file path is correct",
			"Export the chat from your phone and copy the .txt or .zip here",
		}
		return result
	}
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access transcript: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return result
	}
	if info.IsDir() {
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
		return result
	}
	if info.Size() == 0 {
		result.Status = "error"
		result.Message = "Transcript file is empty"
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Found: %s (%d bytes)", path, info.Size())
	return result
}

func checkDecodable(path string) (string, []DiagnosticResult) {
	result := DiagnosticResult{
		Check: "Decoding",
	}

	// #nosec G304 - path is provided by user via CLI
	data, err := os.ReadFile(path)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot read transcript: %v", err)
		return "", []DiagnosticResult{result}
	}

	if ingest.IsZip(data) {
		result.Details = append(result.Details, "Zip archive detected, extracting .txt member")
	}

	text, encoding, err := ingest.Load(data)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot decode transcript: %v", err)
		result.Suggests = []string{
			"If this is a zip export, ensure it contains the chat .txt file",
		}
		return "", []DiagnosticResult{result}
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Decoded as %s", encoding)
	if encoding != "utf-8" {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Decoded as %s (not UTF-8)", encoding)
		result.Suggests = []string{
			"Non-UTF-8 transcripts decode fine but may indicate a re-saved file",
		}
	}
	return text, []DiagnosticResult{result}
}

func checkLineFormat(text string, opts *DiagnoseOptions) []DiagnosticResult {
	result := DiagnosticResult{
		Check: "Line Format",
	}

	d := detector.New()
	detResult := d.DetectFromText(text)

	if !detResult.HasMatch() {
		result.Status = "error"
		result.Message = "No known transcript line format matched"
		result.Suggests = []string{
			"Check the first few lines manually",
			"The file may not be a chat export",
		}
		return []DiagnosticResult{result}
	}

	best := detResult.BestMatch()
	switch {
	case best.Confidence < 0.1:
		result.Status = "error"
		result.Message = fmt.Sprintf("Format %s matches only %d/%d sampled lines",
			best.Format.Name, best.MatchCount, detResult.SampledLines)
		result.Suggests = []string{
			"Most lines are not timestamped; leading lines will be dropped",
		}
	case best.Confidence < 0.5:
		result.Status = "warning"
		result.Message = fmt.Sprintf("Format %s matches %d/%d sampled lines",
			best.Format.Name, best.MatchCount, detResult.SampledLines)
		result.Suggests = []string{
			"A low match rate usually means long multi-line messages, which is fine",
		}
	default:
		result.Status = "ok"
		result.Message = fmt.Sprintf("Format %s matches %d/%d sampled lines",
			best.Format.Name, best.MatchCount, detResult.SampledLines)
	}

	if opts.Verbose && best.SampleLine != "" {
		result.Details = append(result.Details, "Sample match:", truncate(best.SampleLine, 80))
	}
	if detResult.AmbiguityNote != "" {
		result.Details = append(result.Details, detResult.AmbiguityNote)
	}

	return []DiagnosticResult{result}
}

func checkParse(text string) []DiagnosticResult {
	result := DiagnosticResult{
		Check: "Parse",
	}

	parsed := parser.Parse(text)
	c := parsed.Corpus

	if c.Len() == 0 {
		result.Status = "error"
		result.Message = "Transcript parsed to an empty corpus"
		result.Suggests = []string{
			"No line matched a known timestamp format",
		}
		return []DiagnosticResult{result}
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("%d messages from %d senders", c.Len(), len(c.Senders()))
	result.Details = []string{
		fmt.Sprintf("Dropped leading lines: %d", parsed.Stats.DroppedLeading),
		fmt.Sprintf("Continuation lines merged: %d", parsed.Stats.Continuations),
	}

	if parsed.Stats.DroppedLeading > 0 {
		result.Details = append(result.Details,
			"Dropped lines are usually the export's encryption banner")
	}

	return []DiagnosticResult{result}
}

func checkConfig(ctx context.Context, opts *DiagnoseOptions) []DiagnosticResult {
	results := []DiagnosticResult{}

	result := DiagnosticResult{
		Check: "Config File",
	}

	cfg, err := config.Load(ctx, opts.Config)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Failed to load config: %v", err)
		if strings.Contains(err.Error(), "yaml") {
			result.Suggests = []string{
				"Check YAML syntax - ensure proper indentation (use spaces, not tabs)",
			}
		}
		return append(results, result)
	}

	result.Status = "ok"
	result.Message = "Config file loaded and validated"
	result.Details = []string{
		fmt.Sprintf("Sentiment thresholds: positive > %v, negative < %v",
			cfg.Sentiment.PositiveThreshold, cfg.Sentiment.NegativeThreshold),
		fmt.Sprintf("Webhooks: %d", len(cfg.Webhooks)),
	}
	if cfg.Stopwords != "" {
		result.Details = append(result.Details, fmt.Sprintf("Stopwords: %s", cfg.Stopwords))
	} else {
		result.Details = append(result.Details, "Stopwords: bundled default list")
	}
	results = append(results, result)

	results = append(results, checkWebhooks(cfg, opts)...)

	return results
}

func checkWebhooks(cfg *config.Config, opts *DiagnoseOptions) []DiagnosticResult {
	results := []DiagnosticResult{}

	if len(cfg.Webhooks) == 0 {
		if opts.Verbose {
			results = append(results, DiagnosticResult{
				Check:   "Webhooks",
				Status:  "ok",
				Message: "No webhooks configured (optional)",
			})
		}
		return results
	}

	for _, wh := range cfg.Webhooks {
		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		result := DiagnosticResult{
			Check: fmt.Sprintf("Webhook: %s", name),
		}

		issues := []string{}
		warnings := []string{}

		if wh.URL == "" {
			issues = append(issues, "Missing url")
		} else {
			u, err := url.Parse(wh.URL)
			if err != nil {
				issues = append(issues, fmt.Sprintf("Invalid URL: %v", err))
			} else if u.Scheme != "http" && u.Scheme != "https" {
				issues = append(issues, fmt.Sprintf("URL scheme must be http or https, got %q", u.Scheme))
			} else if u.Host == "" {
				issues = append(issues, "URL must have a host")
			}
		}

		if wh.Trigger != "" {
			switch wh.Trigger {
			case config.WebhookTriggerOnMessages, config.WebhookTriggerAlways, config.WebhookTriggerNever:
				// Valid
			default:
				issues = append(issues, fmt.Sprintf("Invalid trigger %q (use on_messages, always, or never)", wh.Trigger))
			}
		}

		// An unexpanded env var means the variable was unset at load time
		if strings.HasPrefix(wh.Token, "${") || strings.HasPrefix(wh.Token, "$") {
			warnings = append(warnings, fmt.Sprintf("Token appears to be an unresolved env var: %s", wh.Token))
		}

		if len(issues) > 0 {
			result.Status = "error"
			result.Message = fmt.Sprintf("%d configuration issue(s)", len(issues))
			result.Details = issues
		} else if len(warnings) > 0 {
			result.Status = "warning"
			result.Message = fmt.Sprintf("%d warning(s)", len(warnings))
			result.Details = warnings
		} else {
			result.Status = "ok"
			result.Message = fmt.Sprintf("Trigger: %s", wh.Trigger)
			if opts.Verbose {
				result.Details = []string{
					fmt.Sprintf("URL: %s", wh.URL),
					fmt.Sprintf("Timeout: %s", wh.Timeout),
				}
				if wh.Token != "" {
					result.Details = append(result.Details, "Token: configured")
				}
			}
		}

		results = append(results, result)
	}

	// Optionally test webhook connectivity
	if opts.Verbose {
		for _, wh := range cfg.Webhooks {
			if wh.URL == "" {
				continue
			}

			name := wh.Name
			if name == "" {
				name = wh.URL
			}

			result := checkWebhookConnectivity(wh)
			result.Check = fmt.Sprintf("Webhook Connectivity: %s", name)
			results = append(results, result)
		}
	}

	return results
}

func checkWebhookConnectivity(wh config.WebhookConfig) DiagnosticResult {
	result := DiagnosticResult{}

	// Just do a HEAD request to check if the endpoint is reachable
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	req, err := http.NewRequest(http.MethodHead, wh.URL, nil)
	if err != nil {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Cannot create request: %v", err)
		return result
	}

	if wh.Token != "" {
		req.Header.Set("Authorization", "Bearer "+wh.Token)
	}

	resp, err := client.Do(req)
	if err != nil {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Cannot connect: %v", err)
		result.Suggests = []string{
			"Check if the webhook URL is correct",
			"Verify network connectivity",
		}
		return result
	}
	defer resp.Body.Close()

	// Any response (even 4xx/5xx) means the server is reachable
	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		result.Status = "ok"
		result.Message = fmt.Sprintf("Reachable (status %d)", resp.StatusCode)
	} else {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Reachable but returned status %d", resp.StatusCode)
		result.Suggests = []string{
			"The endpoint may require POST method (will work during actual webhook send)",
			"Check authentication if using a token",
		}
	}

	return result
}

func printDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) {
	fmt.Fprintln(w, "=== ChatLens Diagnostics ===")
	fmt.Fprintln(w)

	okCount := 0
	warnCount := 0
	errCount := 0

	for _, r := range results {
		var icon string
		switch r.Status {
		case "ok":
			icon = "PASS"
			okCount++
		case "warning":
			icon = "WARN"
			warnCount++
		case "error":
			icon = "FAIL"
			errCount++
		}

		fmt.Fprintf(w, "[%s] %s\n", icon, r.Check)
		fmt.Fprintf(w, "    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				fmt.Fprintf(w, "      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			fmt.Fprintf(w, "      Hint: %s\n", s)
		}

		fmt.Fprintln(w)
	}

	// Summary
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	if errCount > 0 {
		fmt.Fprintln(w, "\nFix the errors above before running analysis.")
	} else if warnCount > 0 {
		fmt.Fprintln(w, "\nTranscript is usable but has warnings.")
	} else {
		fmt.Fprintln(w, "\nEverything looks good!")
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
