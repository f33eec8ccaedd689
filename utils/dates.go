package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DateWindow resolves an optional [from, to] query pair. Missing bounds
// default to the trailing 30 days ending now.
func DateWindow(fromStr, toStr string) (time.Time, time.Time) {
	now := time.Now()

	from := now.AddDate(0, 0, -30)
	if t, ok := parseDate(fromStr); ok {
		from = t
	}

	to := now
	if t, ok := parseDate(toStr); ok {
		to = t
	}

	return from, to
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
