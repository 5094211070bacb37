package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentiment_Classification(t *testing.T) {
	e := testEngine()
	c := corpus(t, `12/01/23, 9:00 AM - Alice: I love this, it is wonderful and great
12/01/23, 9:01 AM - Bob: I hate this, it is horrible and terrible
12/01/23, 9:02 AM - Alice: the meeting starts at nine
`)

	tally := e.Sentiment(c, Overall)

	assert.Equal(t, 1, tally.Positive)
	assert.Equal(t, 1, tally.Negative)
	assert.Equal(t, 1, tally.Neutral)
}

func TestSentiment_ExcludesNotificationsAndMedia(t *testing.T) {
	e := testEngine()
	c := corpus(t, `12/01/23, 9:00 AM - Messages are encrypted
12/01/23, 9:01 AM - Alice: <Media omitted>
12/01/23, 9:02 AM - Alice: wonderful news everyone
`)

	tally := e.Sentiment(c, Overall)

	total := tally.Positive + tally.Negative + tally.Neutral
	assert.Equal(t, 1, total, "only authored non-media records are scored")
	assert.Equal(t, 1, tally.Positive)
}

func TestSentiment_SenderFilter(t *testing.T) {
	e := testEngine()
	c := corpus(t, `12/01/23, 9:00 AM - Alice: great wonderful amazing
12/01/23, 9:01 AM - Bob: awful horrible nightmare
`)

	alice := e.Sentiment(c, "Alice")
	assert.Equal(t, SentimentTally{Positive: 1}, alice)

	bob := e.Sentiment(c, "Bob")
	assert.Equal(t, SentimentTally{Negative: 1}, bob)
}

func TestSentiment_CustomThresholds(t *testing.T) {
	// Thresholds at the extremes force everything into Neutral.
	e := NewEngine(nil, WithSentimentThresholds(1.0, -1.0))
	c := corpus(t, `12/01/23, 9:00 AM - Alice: absolutely wonderful fantastic great
`)

	tally := e.Sentiment(c, Overall)
	assert.Equal(t, SentimentTally{Neutral: 1}, tally)
}
