// Package output provides formatting and output generation for analysis results.
package output

import (
	"time"

	"github.com/chatlens/chatlens/pkg/parser"
	"github.com/chatlens/chatlens/pkg/stats"
)

// Report is the complete analysis output for one sender filter.
type Report struct {
	// Summary provides the volume aggregates.
	Summary Summary `json:"summary"`

	// Senders is the group-level ranking. Present only for overall
	// analysis; a single-sender report has no ranking to show.
	Senders *stats.BusiestSenders `json:"senders,omitempty"`

	// Words is the lexical frequency table.
	Words []stats.WordCount `json:"words"`

	// Emojis is the emoji frequency table.
	Emojis []stats.EmojiCount `json:"emojis"`

	// Monthly is the month-by-month timeline.
	Monthly []stats.TimelinePoint `json:"monthly"`

	// Daily is the per-date timeline.
	Daily []stats.DailyPoint `json:"daily"`

	// Weekdays ranks weekdays by message count.
	Weekdays []stats.ActivityCount `json:"weekdays"`

	// Months ranks calendar months by message count.
	Months []stats.ActivityCount `json:"months"`

	// Heatmap is the weekday-by-hour-period activity matrix.
	Heatmap *stats.Heatmap `json:"heatmap"`

	// Sentiment tallies per-message polarity.
	Sentiment stats.SentimentTally `json:"sentiment"`

	// Metadata provides context about the analysis run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides the volume aggregates plus corpus-level counts.
type Summary struct {
	Messages int `json:"messages"`
	Words    int `json:"words"`
	Media    int `json:"media"`
	Links    int `json:"links"`

	// Senders is the number of distinct authors in the corpus.
	Senders int `json:"senders"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// Source is the transcript file that was analyzed.
	Source string `json:"source,omitempty"`

	// Encoding is the character encoding the transcript decoded with.
	Encoding string `json:"encoding,omitempty"`

	// Sender is the sender filter that was applied.
	Sender string `json:"sender"`

	// ConfigFile is the path to the configuration file used, if any.
	ConfigFile string `json:"config_file,omitempty"`

	// DroppedLines is the number of leading lines discarded before the
	// first timestamped line.
	DroppedLines int `json:"dropped_lines"`

	// AnalyzedAt is when the analysis was performed.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration"`
}

// NewReport runs every statistics query for the given sender filter and
// assembles the result. Sender ranking is included only for overall reports.
func NewReport(engine *stats.Engine, result *parser.Result, sender string, meta Metadata) *Report {
	c := result.Corpus
	vol := engine.Volume(c, sender)

	meta.Sender = sender
	meta.DroppedLines = result.Stats.DroppedLeading

	report := &Report{
		Summary: Summary{
			Messages: vol.Messages,
			Words:    vol.Words,
			Media:    vol.Media,
			Links:    vol.Links,
			Senders:  len(c.Senders()),
		},
		Words:     engine.CommonWords(c, sender),
		Emojis:    engine.EmojiFrequency(c, sender),
		Monthly:   engine.MonthlyTimeline(c, sender),
		Daily:     engine.DailyTimeline(c, sender),
		Weekdays:  engine.WeekdayActivity(c, sender),
		Months:    engine.MonthActivity(c, sender),
		Heatmap:   engine.HourlyHeatmap(c, sender),
		Sentiment: engine.Sentiment(c, sender),
		Metadata:  meta,
	}

	if sender == "" || sender == stats.Overall {
		ranking := engine.BusiestSenders(c)
		report.Senders = &ranking
	}

	return report
}

// HasMessages returns true if the analysis covered at least one record.
func (r *Report) HasMessages() bool {
	return r.Summary.Messages > 0
}
