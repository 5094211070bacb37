package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter renders the report as an indented JSON document for
// machine consumers.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// quietReport is the reduced document emitted under --quiet: the volume
// summary plus enough analysis context to tell which run produced it.
// The frequency tables, timelines, and heatmap are omitted entirely.
type quietReport struct {
	Summary      Summary `json:"summary"`
	Sender       string  `json:"sender,omitempty"`
	Source       string  `json:"source,omitempty"`
	DroppedLines int     `json:"dropped_lines,omitempty"`
}

// Format renders the report as JSON.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if f.opts.Quiet {
		return enc.Encode(quietReport{
			Summary:      report.Summary,
			Sender:       report.Metadata.Sender,
			Source:       report.Metadata.Source,
			DroppedLines: report.Metadata.DroppedLines,
		})
	}

	return enc.Encode(report)
}
