package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timelineTranscript = `12/01/23, 9:00 AM - Alice: one
13/01/23, 9:00 AM - Bob: two
05/02/23, 9:00 AM - Alice: three
05/02/23, 9:30 AM - Alice: four
`

func TestMonthlyTimeline(t *testing.T) {
	e := testEngine()
	c := corpus(t, timelineTranscript)

	timeline := e.MonthlyTimeline(c, Overall)

	require.Len(t, timeline, 2)
	assert.Equal(t, TimelinePoint{Label: "January-2023", Count: 2}, timeline[0])
	assert.Equal(t, TimelinePoint{Label: "February-2023", Count: 2}, timeline[1])
}

func TestMonthlyTimeline_CountsSumToFilteredMessages(t *testing.T) {
	e := testEngine()
	c := corpus(t, timelineTranscript)

	for _, sender := range []string{Overall, "Alice", "Bob"} {
		sum := 0
		for _, p := range e.MonthlyTimeline(c, sender) {
			sum += p.Count
		}
		assert.Equal(t, e.Volume(c, sender).Messages, sum, "filter %q", sender)
	}
}

func TestMonthlyTimeline_SameMonthDifferentYears(t *testing.T) {
	e := testEngine()
	c := corpus(t, `12/01/23, 9:00 AM - Alice: a
12/01/24, 9:00 AM - Alice: b
`)

	timeline := e.MonthlyTimeline(c, Overall)
	require.Len(t, timeline, 2)
	assert.Equal(t, "January-2023", timeline[0].Label)
	assert.Equal(t, "January-2024", timeline[1].Label)
}

func TestDailyTimeline(t *testing.T) {
	e := testEngine()
	c := corpus(t, timelineTranscript)

	daily := e.DailyTimeline(c, Overall)

	require.Len(t, daily, 3)
	assert.Equal(t, DailyPoint{Date: "2023-01-12", Count: 1}, daily[0])
	assert.Equal(t, DailyPoint{Date: "2023-01-13", Count: 1}, daily[1])
	assert.Equal(t, DailyPoint{Date: "2023-02-05", Count: 2}, daily[2])
}

func TestDailyTimeline_SenderFilter(t *testing.T) {
	e := testEngine()
	c := corpus(t, timelineTranscript)

	daily := e.DailyTimeline(c, "Bob")
	assert.Equal(t, []DailyPoint{{Date: "2023-01-13", Count: 1}}, daily)
}
