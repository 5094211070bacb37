// Package parser turns decoded transcript text into an ordered corpus of
// message records.
package parser

import (
	"sort"
	"time"
)

// MediaSentinel is the placeholder body WhatsApp writes when an attachment
// was stripped from the export. Exact-match semantics: surrounding
// whitespace or a locale variant is a different string and will not match.
const MediaSentinel = "<Media omitted>"

// Kind classifies a parsed record.
type Kind int

const (
	// KindMessage is an authored message with a sender.
	KindMessage Kind = iota

	// KindNotification is a system notification (encryption notice,
	// "user added", subject change). It has no sender.
	KindNotification
)

// Message is one parsed transcript unit.
type Message struct {
	// Timestamp is the parsed timestamp. Always non-zero.
	Timestamp time.Time

	// Sender is the author identifier. Empty if and only if the record
	// is a system notification.
	Sender string

	// Body is the message text. Continuation lines are joined with "\n".
	// May equal MediaSentinel for stripped attachments.
	Body string

	// Kind tags the record as authored message or system notification.
	Kind Kind

	// Derived calendar fields, set by temporal enrichment.
	Year       int
	MonthNum   int
	MonthName  string
	DayName    string
	DateKey    string // calendar date without time, "2006-01-02"
	HourPeriod string // 2-hour bucket label, e.g. "13-15" or "23-1"
}

// IsNotification reports whether the record is a system notification.
func (m *Message) IsNotification() bool {
	return m.Kind == KindNotification
}

// IsMedia reports whether the body is the stripped-media placeholder.
func (m *Message) IsMedia() bool {
	return m.Body == MediaSentinel
}

// Corpus is the immutable ordered sequence of records parsed from one
// transcript. Order is source order; the pipeline never re-sorts.
type Corpus struct {
	records []Message
}

// NewCorpus wraps records in a Corpus. The caller hands over ownership of
// the slice.
func NewCorpus(records []Message) *Corpus {
	return &Corpus{records: records}
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	return len(c.records)
}

// Records returns the underlying record sequence. Callers must treat it as
// read-only; sender-filtered views are predicates over this slice, never
// copies.
func (c *Corpus) Records() []Message {
	return c.records
}

// Senders returns the distinct authored-message senders in sorted order.
// System notifications contribute no sender.
func (c *Corpus) Senders() []string {
	seen := make(map[string]bool)
	var senders []string
	for i := range c.records {
		r := &c.records[i]
		if r.IsNotification() || seen[r.Sender] {
			continue
		}
		seen[r.Sender] = true
		senders = append(senders, r.Sender)
	}
	sort.Strings(senders)
	return senders
}
