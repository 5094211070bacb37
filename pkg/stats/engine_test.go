package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatlens/chatlens/pkg/parser"
	"github.com/chatlens/chatlens/pkg/stopwords"
)

// corpus parses a transcript literal for test use.
func corpus(t *testing.T, text string) *parser.Corpus {
	t.Helper()
	return parser.Parse(text).Corpus
}

const groupTranscript = `12/01/23, 9:00 AM - Messages are encrypted
12/01/23, 9:00 AM - Alice: Hello
12/01/23, 9:01 AM - Bob: Hi!
12/01/23, 9:02 AM - Alice: <Media omitted>
12/01/23, 9:03 AM - Alice: see https://example.com ok
13/02/23, 10:30 PM - Bob: good night
`

func testEngine() *Engine {
	return NewEngine(stopwords.New("the\nis\nok\n"))
}

func TestVolume_Overall(t *testing.T) {
	e := testEngine()
	c := corpus(t, groupTranscript)

	v := e.Volume(c, Overall)

	assert.Equal(t, 6, v.Messages, "notifications count toward messages")
	// Bodies: "Messages are encrypted"(3) "Hello"(1) "Hi!"(1)
	// "<Media omitted>"(2) "see https://example.com ok"(3) "good night"(2)
	assert.Equal(t, 12, v.Words, "words include notification and sentinel tokens")
	assert.Equal(t, 1, v.Media)
	assert.Equal(t, 1, v.Links)
}

func TestVolume_SenderFilterExcludesNotifications(t *testing.T) {
	e := testEngine()
	c := corpus(t, groupTranscript)

	alice := e.Volume(c, "Alice")
	assert.Equal(t, 3, alice.Messages)
	assert.Equal(t, 1, alice.Media)

	bob := e.Volume(c, "Bob")
	assert.Equal(t, 2, bob.Messages)
}

func TestVolume_EmptyFilterMeansOverall(t *testing.T) {
	e := testEngine()
	c := corpus(t, groupTranscript)

	assert.Equal(t, e.Volume(c, Overall), e.Volume(c, ""))
}

func TestBusiestSenders(t *testing.T) {
	e := testEngine()
	c := corpus(t, groupTranscript)

	b := e.BusiestSenders(c)

	require.Len(t, b.Top, 3)
	assert.Equal(t, SenderRank{Sender: "Alice", Count: 3}, b.Top[0])
	assert.Equal(t, SenderRank{Sender: "Bob", Count: 2}, b.Top[1])
	assert.Equal(t, SenderRank{Sender: NotificationSender, Count: 1}, b.Top[2])

	// Shares decompose the overall message count (spec property: the
	// percentage table accounts for every record, notifications included).
	total := 0.0
	for _, s := range b.Shares {
		total += s.Percent
	}
	assert.InDelta(t, 100.0, total, 0.05)
	assert.InDelta(t, 50.0, b.Shares[0].Percent, 0.001) // Alice: 3/6
}

func TestBusiestSenders_TopCappedAtFive(t *testing.T) {
	e := testEngine()
	c := corpus(t, `12/01/23, 9:00 AM - A: x
12/01/23, 9:01 AM - B: x
12/01/23, 9:02 AM - C: x
12/01/23, 9:03 AM - D: x
12/01/23, 9:04 AM - E: x
12/01/23, 9:05 AM - F: x
12/01/23, 9:06 AM - A: x
`)

	b := e.BusiestSenders(c)
	assert.Len(t, b.Top, 5)
	assert.Equal(t, "A", b.Top[0].Sender, "A leads with 2 messages")
	assert.Len(t, b.Shares, 6, "percentage table is not truncated")
}

func TestBusiestSenders_TieBreakFirstAppearance(t *testing.T) {
	e := testEngine()
	c := corpus(t, `12/01/23, 9:00 AM - Zoe: x
12/01/23, 9:01 AM - Amy: x
`)

	b := e.BusiestSenders(c)
	require.Len(t, b.Top, 2)
	assert.Equal(t, "Zoe", b.Top[0].Sender, "tie broken by corpus order, not name")
}

func TestEngine_Idempotent(t *testing.T) {
	// Re-running every query over an unchanged corpus yields identical
	// results: queries are pure reads.
	e := testEngine()
	c := corpus(t, groupTranscript)

	assert.Equal(t, e.Volume(c, Overall), e.Volume(c, Overall))
	assert.Equal(t, e.BusiestSenders(c), e.BusiestSenders(c))
	assert.Equal(t, e.CommonWords(c, Overall), e.CommonWords(c, Overall))
	assert.Equal(t, e.EmojiFrequency(c, Overall), e.EmojiFrequency(c, Overall))
	assert.Equal(t, e.MonthlyTimeline(c, Overall), e.MonthlyTimeline(c, Overall))
	assert.Equal(t, e.DailyTimeline(c, Overall), e.DailyTimeline(c, Overall))
	assert.Equal(t, e.WeekdayActivity(c, Overall), e.WeekdayActivity(c, Overall))
	assert.Equal(t, e.MonthActivity(c, Overall), e.MonthActivity(c, Overall))
	assert.Equal(t, e.HourlyHeatmap(c, Overall), e.HourlyHeatmap(c, Overall))
	assert.Equal(t, e.Sentiment(c, Overall), e.Sentiment(c, Overall))
}
