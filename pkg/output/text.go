package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "ChatLens: %d messages, %d words, %d media, %d links\n",
		report.Summary.Messages,
		report.Summary.Words,
		report.Summary.Media,
		report.Summary.Links)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "=== ChatLens Report (%s) ===\n", report.Metadata.Sender)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Messages: %d\n", report.Summary.Messages)
	fmt.Fprintf(w, "Words:    %d\n", report.Summary.Words)
	fmt.Fprintf(w, "Media:    %d\n", report.Summary.Media)
	fmt.Fprintf(w, "Links:    %d\n", report.Summary.Links)
	fmt.Fprintf(w, "Senders:  %d\n", report.Summary.Senders)
	fmt.Fprintln(w)

	if report.Senders != nil {
		f.formatSenders(report, w)
	}
	f.formatWords(report, w)
	f.formatEmojis(report, w)
	f.formatActivity(report, w)
	f.formatSentiment(report, w)

	if f.opts.Verbose {
		f.formatTimelines(report, w)
		f.formatHeatmap(report, w)
		fmt.Fprintln(w, "---")
		fmt.Fprintf(w, "Dropped leading lines: %d\n", report.Metadata.DroppedLines)
		if report.Metadata.Encoding != "" {
			fmt.Fprintf(w, "Encoding: %s\n", report.Metadata.Encoding)
		}
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatSenders(report *Report, w io.Writer) {
	fmt.Fprintln(w, "Busiest senders:")
	for _, rank := range report.Senders.Top {
		fmt.Fprintf(w, "  %-24s %d\n", rank.Sender, rank.Count)
	}
	if f.opts.Verbose {
		fmt.Fprintln(w, "Contribution:")
		for _, share := range report.Senders.Shares {
			fmt.Fprintf(w, "  %-24s %.2f%%\n", share.Sender, share.Percent)
		}
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatWords(report *Report, w io.Writer) {
	if len(report.Words) == 0 {
		return
	}
	fmt.Fprintln(w, "Most common words:")
	for i, wc := range report.Words {
		if !f.opts.Verbose && i >= 10 {
			break
		}
		fmt.Fprintf(w, "  %-24s %d\n", wc.Word, wc.Count)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatEmojis(report *Report, w io.Writer) {
	if len(report.Emojis) == 0 {
		return
	}
	fmt.Fprintln(w, "Emoji:")
	for i, ec := range report.Emojis {
		if !f.opts.Verbose && i >= 10 {
			break
		}
		fmt.Fprintf(w, "  %-4s %d\n", ec.Emoji, ec.Count)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatActivity(report *Report, w io.Writer) {
	if len(report.Weekdays) > 0 {
		fmt.Fprintln(w, "Most active weekdays:")
		for _, a := range report.Weekdays {
			fmt.Fprintf(w, "  %-12s %d\n", a.Name, a.Count)
		}
		fmt.Fprintln(w)
	}
	if len(report.Months) > 0 {
		fmt.Fprintln(w, "Most active months:")
		for _, a := range report.Months {
			fmt.Fprintf(w, "  %-12s %d\n", a.Name, a.Count)
		}
		fmt.Fprintln(w)
	}
}

func (f *TextFormatter) formatSentiment(report *Report, w io.Writer) {
	s := report.Sentiment
	fmt.Fprintf(w, "Sentiment: %d positive, %d negative, %d neutral\n",
		s.Positive, s.Negative, s.Neutral)
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatTimelines(report *Report, w io.Writer) {
	if len(report.Monthly) > 0 {
		fmt.Fprintln(w, "Monthly timeline:")
		for _, p := range report.Monthly {
			fmt.Fprintf(w, "  %-16s %d\n", p.Label, p.Count)
		}
		fmt.Fprintln(w)
	}
	if len(report.Daily) > 0 {
		fmt.Fprintln(w, "Daily timeline:")
		for _, p := range report.Daily {
			fmt.Fprintf(w, "  %-12s %d\n", p.Date, p.Count)
		}
		fmt.Fprintln(w)
	}
}

func (f *TextFormatter) formatHeatmap(report *Report, w io.Writer) {
	h := report.Heatmap
	if h == nil || h.Total() == 0 {
		return
	}
	fmt.Fprintln(w, "Activity heatmap:")
	fmt.Fprintf(w, "  %-10s", "")
	for _, p := range h.Periods {
		fmt.Fprintf(w, "%6s", p)
	}
	fmt.Fprintln(w)
	for i, day := range h.Days {
		fmt.Fprintf(w, "  %-10s", day)
		for _, c := range h.Cells[i] {
			fmt.Fprintf(w, "%6d", c)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
