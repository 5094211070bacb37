package stats

import (
	"sort"
	"strings"

	"github.com/chatlens/chatlens/pkg/parser"
)

// topWords is the fixed size of the lexical frequency table.
const topWords = 20

// CommonWords returns the top 20 tokens by occurrence count for the given
// sender filter. Tokens are lowercased and whitespace-delimited; stopwords
// are dropped, and system notifications and media-sentinel records do not
// contribute. Ties are broken by first-encountered order.
func (e *Engine) CommonWords(c *parser.Corpus, sender string) []WordCount {
	counts := make(map[string]int)
	var order []string

	records := c.Records()
	for i := range records {
		m := &records[i]
		if !selected(m, sender) || m.IsNotification() || m.IsMedia() {
			continue
		}
		for _, word := range strings.Fields(strings.ToLower(m.Body)) {
			if e.stop.Contains(word) {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	result := make([]WordCount, 0, len(order))
	for _, word := range order {
		result = append(result, WordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if len(result) > topWords {
		result = result[:topWords]
	}
	return result
}
