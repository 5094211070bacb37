package stats

import (
	"sort"

	"github.com/forPelevin/gomoji"

	"github.com/chatlens/chatlens/pkg/parser"
)

// EmojiFrequency scans every selected body rune by rune and counts the
// occurrences of each distinct emoji code point. Unlike lexical analysis,
// notifications and media-sentinel records are included. Returns all
// distinct emojis sorted by count descending, ties by first appearance.
func (e *Engine) EmojiFrequency(c *parser.Corpus, sender string) []EmojiCount {
	counts := make(map[string]int)
	var order []string

	records := c.Records()
	for i := range records {
		m := &records[i]
		if !selected(m, sender) {
			continue
		}
		for _, r := range m.Body {
			ch := string(r)
			if !gomoji.ContainsEmoji(ch) {
				continue
			}
			if _, seen := counts[ch]; !seen {
				order = append(order, ch)
			}
			counts[ch]++
		}
	}

	result := make([]EmojiCount, 0, len(order))
	for _, ch := range order {
		result = append(result, EmojiCount{Emoji: ch, Count: counts[ch]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}
