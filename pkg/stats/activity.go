package stats

import (
	"sort"

	"github.com/chatlens/chatlens/pkg/parser"
)

// WeekdayActivity counts selected records per weekday name, sorted by count
// descending rather than calendar order, ties broken by first appearance.
func (e *Engine) WeekdayActivity(c *parser.Corpus, sender string) []ActivityCount {
	return e.activityBy(c, sender, func(m *parser.Message) string { return m.DayName })
}

// MonthActivity counts selected records per month name, sorted by count
// descending, ties by first appearance.
func (e *Engine) MonthActivity(c *parser.Corpus, sender string) []ActivityCount {
	return e.activityBy(c, sender, func(m *parser.Message) string { return m.MonthName })
}

func (e *Engine) activityBy(c *parser.Corpus, sender string, key func(*parser.Message) string) []ActivityCount {
	counts := make(map[string]int)
	var order []string

	records := c.Records()
	for i := range records {
		m := &records[i]
		if !selected(m, sender) {
			continue
		}
		k := key(m)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	result := make([]ActivityCount, 0, len(order))
	for _, k := range order {
		result = append(result, ActivityCount{Name: k, Count: counts[k]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// HourlyHeatmap pivots selected records into a weekday-by-hour-period count
// matrix. Rows are the 7 weekday names Monday..Sunday, columns the 12
// two-hour buckets in chronological order; missing combinations are zero.
// Notifications and media records count here: the heatmap reads as total
// traffic, unlike lexical and sentiment analysis.
func (e *Engine) HourlyHeatmap(c *parser.Corpus, sender string) *Heatmap {
	days := parser.Weekdays()
	periods := parser.HourPeriods()

	dayIdx := make(map[string]int, len(days))
	for i, d := range days {
		dayIdx[d] = i
	}
	periodIdx := make(map[string]int, len(periods))
	for i, p := range periods {
		periodIdx[p] = i
	}

	cells := make([][]int, len(days))
	for i := range cells {
		cells[i] = make([]int, len(periods))
	}

	records := c.Records()
	for i := range records {
		m := &records[i]
		if !selected(m, sender) {
			continue
		}
		cells[dayIdx[m.DayName]][periodIdx[m.HourPeriod]]++
	}

	return &Heatmap{Days: days, Periods: periods, Cells: cells}
}
