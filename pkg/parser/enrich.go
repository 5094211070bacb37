package parser

import (
	"fmt"
	"time"
)

// Enrich derives the calendar-bucket fields from the record's timestamp.
// Pure function of the timestamp; never user-authored data.
func Enrich(m *Message) {
	t := m.Timestamp
	m.Year = t.Year()
	m.MonthNum = int(t.Month())
	m.MonthName = t.Month().String()
	m.DayName = t.Weekday().String()
	m.DateKey = t.Format("2006-01-02")
	m.HourPeriod = HourPeriod(t.Hour())
}

// HourPeriod maps an hour of day onto its 2-hour activity bucket label.
// Buckets run "1-3", "3-5", ... "21-23", with the midnight-adjacent hours
// 23 and 0 sharing the wrapping "23-1" bucket.
func HourPeriod(hour int) string {
	if hour == 23 || hour == 0 {
		return "23-1"
	}
	start := hour
	if hour%2 == 0 {
		start = hour - 1
	}
	return fmt.Sprintf("%d-%d", start, start+2)
}

// HourPeriods returns all bucket labels in chronological order, starting
// with "1-3" and ending with the wrapping "23-1".
func HourPeriods() []string {
	periods := make([]string, 0, 12)
	for h := 1; h < 23; h += 2 {
		periods = append(periods, fmt.Sprintf("%d-%d", h, h+2))
	}
	return append(periods, "23-1")
}

// Weekdays returns the 7 day names Monday..Sunday, the row order used by
// the hourly heatmap.
func Weekdays() []string {
	days := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, time.Weekday((i+1)%7).String())
	}
	return days
}
