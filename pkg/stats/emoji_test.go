package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmojiFrequency_CountsOccurrences(t *testing.T) {
	e := testEngine()
	c := corpus(t, "12/01/23, 9:00 AM - Alice: hi \U0001F602\U0001F602\U0001F44D\n")

	emojis := e.EmojiFrequency(c, Overall)

	require.Len(t, emojis, 2)
	assert.Equal(t, EmojiCount{Emoji: "\U0001F602", Count: 2}, emojis[0])
	assert.Equal(t, EmojiCount{Emoji: "\U0001F44D", Count: 1}, emojis[1])
}

func TestEmojiFrequency_IncludesNotificationsAndMedia(t *testing.T) {
	// No notification/media exclusion here, unlike lexical analysis.
	e := testEngine()
	c := corpus(t, "12/01/23, 9:00 AM - group icon changed \U0001F389\n12/01/23, 9:01 AM - Alice: \U0001F389\n")

	emojis := e.EmojiFrequency(c, Overall)
	require.Len(t, emojis, 1)
	assert.Equal(t, 2, emojis[0].Count, "notification body emoji counted")
}

func TestEmojiFrequency_SumMatchesTotalEmojiRunes(t *testing.T) {
	e := testEngine()
	c := corpus(t, "12/01/23, 9:00 AM - Alice: \U0001F602 and \U0001F44D \U0001F44D\n12/01/23, 9:01 AM - Bob: none here\n")

	total := 0
	for _, ec := range e.EmojiFrequency(c, Overall) {
		total += ec.Count
	}
	assert.Equal(t, 3, total)
}

func TestEmojiFrequency_NoEmoji(t *testing.T) {
	e := testEngine()
	c := corpus(t, "12/01/23, 9:00 AM - Alice: plain words only\n")

	assert.Empty(t, e.EmojiFrequency(c, Overall))
}
