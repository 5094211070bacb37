package stats

import (
	"math"
	"sort"
	"strings"

	"github.com/chatlens/chatlens/pkg/parser"
)

// Volume computes the basic volume aggregate for the given sender filter.
// Word and link counts run over every selected body, notifications and the
// media sentinel included.
func (e *Engine) Volume(c *parser.Corpus, sender string) VolumeStats {
	var v VolumeStats

	records := c.Records()
	for i := range records {
		m := &records[i]
		if !selected(m, sender) {
			continue
		}
		v.Messages++
		v.Words += len(strings.Fields(m.Body))
		if m.IsMedia() {
			v.Media++
		}
		v.Links += len(e.urls.FindAllString(m.Body, -1))
	}

	return v
}

// BusiestSenders ranks senders by message count: the top five, plus the
// full contribution table with each sender's share of total messages as a
// percentage rounded to two decimals. Group-level only; notifications are
// attributed to the group_notification pseudo-sender.
func (e *Engine) BusiestSenders(c *parser.Corpus) BusiestSenders {
	counts := make(map[string]int)
	var order []string // first-appearance order, the ranking tie-break

	records := c.Records()
	for i := range records {
		m := &records[i]
		name := m.Sender
		if m.IsNotification() {
			name = NotificationSender
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	ranked := make([]SenderRank, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, SenderRank{Sender: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	top := ranked
	if len(top) > 5 {
		top = top[:5]
	}

	total := c.Len()
	shares := make([]SenderShare, 0, len(ranked))
	for _, r := range ranked {
		percent := 0.0
		if total > 0 {
			percent = math.Round(float64(r.Count)/float64(total)*100*100) / 100
		}
		shares = append(shares, SenderShare{Sender: r.Sender, Percent: percent})
	}

	return BusiestSenders{Top: top, Shares: shares}
}
