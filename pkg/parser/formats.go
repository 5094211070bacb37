package parser

import (
	"regexp"
	"strings"
	"time"
)

// LineFormat is one supported timestamp-prefixed transcript line format.
// The pattern's first capture group is the timestamp portion, the second is
// the remainder of the line.
type LineFormat struct {
	Name       string
	Pattern    *regexp.Regexp
	PatternStr string
	Layouts    []string // Go time layouts tried in order
	Examples   []string
	Ambiguous  bool // day-first vs month-first cannot be told apart
}

// Newer Android exports place a narrow no-break space (U+202F) before the
// AM/PM marker; older ones use a plain or non-breaking space.
const spaceClass = `[ \x{00a0}\x{202f}]`

// DefaultFormats returns the supported transcript line formats. A line
// beginning a new unit must match one of these; anything else is a
// continuation. Formats are tested per line, not per file, since merged
// exports may mix representations.
func DefaultFormats() []*LineFormat {
	formats := []*LineFormat{
		// Android style: 12/01/23, 9:00 AM - rest
		{
			Name:       "Dash-separated (Android)",
			PatternStr: `^(\d{1,2}/\d{1,2}/\d{2,4},` + spaceClass + `\d{1,2}:\d{2}` + spaceClass + `?[AaPp][Mm])` + spaceClass + `-` + spaceClass + `(.*)$`,
			Layouts: []string{
				"2/1/06, 3:04 PM",
				"2/1/2006, 3:04 PM",
				"2/1/06, 3:04PM",
				"2/1/2006, 3:04PM",
			},
			Examples:  []string{"12/01/23, 9:00 AM - Alice: Hello"},
			Ambiguous: true,
		},
		// iPhone style: [12/01/2023, 09:00:05] rest
		{
			Name:       "Bracketed (iPhone)",
			PatternStr: `^\[(\d{1,2}/\d{1,2}/\d{2,4},` + spaceClass + `\d{1,2}:\d{2}:\d{2})\]` + spaceClass + `(.*)$`,
			Layouts: []string{
				"2/1/2006, 15:04:05",
				"2/1/06, 15:04:05",
			},
			Examples:  []string{"[12/01/2023, 09:00:05] Alice: Hello"},
			Ambiguous: true,
		},
	}

	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}

// Match tests a single line against the format. On success it returns the
// parsed timestamp and the remainder after the timestamp prefix.
func (f *LineFormat) Match(line string) (time.Time, string, bool) {
	matches := f.Pattern.FindStringSubmatch(line)
	if len(matches) < 3 {
		return time.Time{}, "", false
	}

	tsStr := normalizeSpaces(matches[1])
	tsStr = strings.ToUpper(tsStr)

	for _, layout := range f.Layouts {
		if ts, err := time.Parse(layout, tsStr); err == nil {
			return ts, matches[2], true
		}
	}

	return time.Time{}, "", false
}

// normalizeSpaces replaces the exotic space variants WhatsApp emits with
// plain spaces so time.Parse sees a canonical string.
func normalizeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == ' ' {
			return ' '
		}
		return r
	}, s)
}
