package jsonld

import (
	"regexp"
	"time"
)

// datePattern matches the fixed-width ISO date-and-time prefix. Timezone
// offsets, fractional seconds, and Z suffixes are deliberately left outside
// the match so every variant normalizes to the same comparable form.
var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)

const dateLayout = "2006-01-02T15:04:05"

// Date is a resolved timestamp. Display always holds something printable;
// only inputs that matched the ISO pattern carry a sortable instant.
type Date struct {
	Display  string
	instant  time.Time
	sortable bool
}

// ResolveDate extracts the first YYYY-MM-DDTHH:MM:SS occurrence in raw. A
// match becomes both the canonical display form and a sortable instant. Any
// other input passes through unchanged, usable for display but excluded
// from chronological computation.
func ResolveDate(raw string) Date {
	matched := datePattern.FindString(raw)
	if matched == "" {
		return Date{Display: raw}
	}
	instant, err := time.Parse(dateLayout, matched)
	if err != nil {
		// Digit-shaped but not a calendar date, e.g. month 13.
		return Date{Display: matched}
	}
	return Date{Display: matched, instant: instant, sortable: true}
}

// Instant returns the chronological instant and whether one exists.
func (d Date) Instant() (time.Time, bool) {
	return d.instant, d.sortable
}

// Sortable reports whether d carries a chronological instant.
func (d Date) Sortable() bool {
	return d.sortable
}
