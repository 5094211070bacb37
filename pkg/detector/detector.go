// Package detector identifies which transcript line format a chat export
// uses before a full parse is attempted.
package detector

import (
	"context"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/chatlens/chatlens/pkg/ingest"
	"github.com/chatlens/chatlens/pkg/parser"
)

// DetectionResult holds the result of analyzing a transcript sample.
type DetectionResult struct {
	Matches       []FormatMatch // Formats that matched, sorted by confidence descending
	SampledLines  int           // Number of lines sampled
	ParsedLines   int           // Number of lines with a recognized timestamp
	Encoding      string        // Encoding used to decode the file, when read from disk
	AmbiguityNote string        // Warning about date ordering if applicable
}

// FormatMatch represents a format that matched with its confidence score.
type FormatMatch struct {
	Format     *parser.LineFormat
	Confidence float64   // 0.0 to 1.0 (share of sampled lines matched)
	MatchCount int       // Number of lines that matched
	SampleLine string    // Example line that matched
	ParsedTime time.Time // Parsed timestamp from sample
}

// Detector samples transcript lines to identify their format.
type Detector struct {
	formats    []*parser.LineFormat
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a new Detector with the default transcript formats.
func New(opts ...Option) *Detector {
	d := &Detector{
		formats:    parser.DefaultFormats(),
		sampleSize: 100,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile decodes a transcript file (unwrapping a zip export if
// needed) and analyzes a sample of its lines.
func (d *Detector) DetectFromFile(_ context.Context, path string) (*DetectionResult, error) {
	// #nosec G304 - path is provided by user via CLI
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text, encoding, err := ingest.Load(data)
	if err != nil {
		return nil, err
	}

	result := d.DetectFromText(text)
	result.Encoding = encoding
	return result, nil
}

// DetectFromText analyzes a sample of lines from decoded transcript text.
func (d *Detector) DetectFromText(text string) *DetectionResult {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if len(lines) >= d.sampleSize {
			break
		}
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return d.DetectFromLines(lines)
}

// DetectFromLines analyzes a slice of transcript lines.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{
		SampledLines: len(lines),
	}

	if len(lines) == 0 {
		return result
	}

	type formatStats struct {
		format     *parser.LineFormat
		matchCount int
		sampleLine string
		parsedTime time.Time
	}

	stats := make(map[string]*formatStats)

	for _, line := range lines {
		for _, format := range d.formats {
			ts, _, ok := format.Match(line)
			if !ok {
				continue
			}

			key := format.Name
			if stats[key] == nil {
				stats[key] = &formatStats{
					format:     format,
					sampleLine: line,
					parsedTime: ts,
				}
			}
			stats[key].matchCount++
		}
	}

	for _, s := range stats {
		result.Matches = append(result.Matches, FormatMatch{
			Format:     s.format,
			Confidence: float64(s.matchCount) / float64(len(lines)),
			MatchCount: s.matchCount,
			SampleLine: s.sampleLine,
			ParsedTime: s.parsedTime,
		})
	}

	// Sort by confidence descending, then by pattern length (more specific first)
	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		return len(result.Matches[i].Format.PatternStr) > len(result.Matches[j].Format.PatternStr)
	})

	if len(result.Matches) > 0 {
		result.ParsedLines = result.Matches[0].MatchCount
	}

	if len(result.Matches) > 0 && result.Matches[0].Format.Ambiguous {
		result.AmbiguityNote = "This format has date ordering ambiguity (DD/MM vs MM/DD). " +
			"Dates are read day-first; exports from month-first locales may " +
			"shuffle days and months for dates where both readings are valid."
	}

	return result
}

// BestMatch returns the highest confidence match, or nil if none found.
func (r *DetectionResult) BestMatch() *FormatMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

// HasMatch returns true if at least one format matched.
func (r *DetectionResult) HasMatch() bool {
	return len(r.Matches) > 0
}
