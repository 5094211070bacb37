// Package stats provides the descriptive statistics queries over a parsed
// transcript corpus.
package stats

// VolumeStats is the basic volume aggregate for a sender filter.
type VolumeStats struct {
	// Messages is the record count, notifications included.
	Messages int `json:"messages"`

	// Words is the whitespace-delimited token count across all bodies.
	Words int `json:"words"`

	// Media is the number of records whose body equals the media sentinel.
	Media int `json:"media"`

	// Links is the number of URLs found across all bodies.
	Links int `json:"links"`
}

// SenderRank is one row of the busiest-senders ranking.
type SenderRank struct {
	Sender string `json:"sender"`
	Count  int    `json:"count"`
}

// SenderShare is one row of the contribution table: the sender's share of
// total messages as a percentage rounded to two decimals.
type SenderShare struct {
	Sender  string  `json:"sender"`
	Percent float64 `json:"percent"`
}

// BusiestSenders holds the group-level sender ranking: the top five by
// message count and the full percentage table. Notification records appear
// under the group_notification pseudo-sender so shares sum to the overall
// message count.
type BusiestSenders struct {
	Top    []SenderRank  `json:"top"`
	Shares []SenderShare `json:"shares"`
}

// WordCount is one row of the lexical frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// EmojiCount is one row of the emoji frequency table.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// TimelinePoint is one row of the monthly timeline, labeled
// "{monthName}-{year}".
type TimelinePoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DailyPoint is one row of the daily timeline, keyed by calendar date.
type DailyPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ActivityCount is one row of a weekday or month activity ranking.
type ActivityCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Heatmap is the weekday-by-hour-period pivot matrix. Rows follow Days,
// columns follow Periods, and every cell is present (missing combinations
// are zero).
type Heatmap struct {
	Days    []string `json:"days"`
	Periods []string `json:"periods"`
	Cells   [][]int  `json:"cells"`
}

// Total returns the sum of all cells.
func (h *Heatmap) Total() int {
	total := 0
	for _, row := range h.Cells {
		for _, c := range row {
			total += c
		}
	}
	return total
}

// SentimentTally is the coarse per-message polarity classification count.
type SentimentTally struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}
