package service

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order against the free-text question
// timestamps. The dataset mixes "9/7/2022 11:48:35", "9/7/2022" and
// "2022-09-07" style entries.
var timestampLayouts = []string{
	"1/2/2006 15:04:05",
	"1/2/2006",
	"2006-01-02",
}

// parseTimestamp parses a free-text question timestamp. The second
// return value reports whether any layout matched.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseDateParam parses a from_date/to_date query parameter
// (YYYY-MM-DD). Malformed values are ignored, not rejected.
func parseDateParam(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// endOfDay extends a calendar date to 23:59:59 so to_date filters are
// inclusive of the whole day.
func endOfDay(t time.Time) time.Time {
	return t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
