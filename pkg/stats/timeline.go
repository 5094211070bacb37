package stats

import (
	"fmt"
	"sort"

	"github.com/chatlens/chatlens/pkg/parser"
)

// MonthlyTimeline groups selected records by (year, month) and counts per
// group, labeled "{monthName}-{year}". Groups appear in chronological order
// of first appearance, which for an in-order transcript is calendar order.
func (e *Engine) MonthlyTimeline(c *parser.Corpus, sender string) []TimelinePoint {
	type monthKey struct {
		year  int
		month int
	}

	counts := make(map[monthKey]int)
	labels := make(map[monthKey]string)
	var order []monthKey

	records := c.Records()
	for i := range records {
		m := &records[i]
		if !selected(m, sender) {
			continue
		}
		key := monthKey{year: m.Year, month: m.MonthNum}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
			labels[key] = fmt.Sprintf("%s-%d", m.MonthName, m.Year)
		}
		counts[key]++
	}

	result := make([]TimelinePoint, 0, len(order))
	for _, key := range order {
		result = append(result, TimelinePoint{Label: labels[key], Count: counts[key]})
	}
	return result
}

// DailyTimeline groups selected records by calendar date and counts per
// day, in natural date order.
func (e *Engine) DailyTimeline(c *parser.Corpus, sender string) []DailyPoint {
	counts := make(map[string]int)

	records := c.Records()
	for i := range records {
		m := &records[i]
		if !selected(m, sender) {
			continue
		}
		counts[m.DateKey]++
	}

	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	// DateKey is "2006-01-02", so lexicographic order is date order.
	sort.Strings(dates)

	result := make([]DailyPoint, 0, len(dates))
	for _, d := range dates {
		result = append(result, DailyPoint{Date: d, Count: counts[d]})
	}
	return result
}
