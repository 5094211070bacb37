package stats

import (
	"github.com/chatlens/chatlens/pkg/parser"
)

// Sentiment classifies every selected authored message by lexicon-based
// polarity scoring: compound score above the positive threshold is
// Positive, below the negative threshold Negative, otherwise Neutral.
// System notifications and media-sentinel records are excluded, matching
// lexical analysis.
func (e *Engine) Sentiment(c *parser.Corpus, sender string) SentimentTally {
	var tally SentimentTally

	records := c.Records()
	for i := range records {
		m := &records[i]
		if !selected(m, sender) || m.IsNotification() || m.IsMedia() {
			continue
		}

		score := e.vader.PolarityScores(m.Body).Compound
		switch {
		case score > e.posThr:
			tally.Positive++
		case score < e.negThr:
			tally.Negative++
		default:
			tally.Neutral++
		}
	}

	return tally
}
