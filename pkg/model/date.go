package model

import "time"

// Layout dates are pinned to noon UTC so that differencing whole days never
// drifts across timezone or DST boundaries.

// Date constructs a calendar date normalized to noon UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// Normalize snaps an arbitrary timestamp to its noon-UTC calendar date.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// DaysBetween returns the number of whole days from a to b. Negative when
// b precedes a. Both arguments are normalized first.
func DaysBetween(a, b time.Time) int {
	return int(Normalize(b).Sub(Normalize(a)).Hours() / 24)
}

// StartOfMonth returns the first day of t's month, at noon UTC.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return Date(y, m, 1)
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	y, m, _ := t.Date()
	return Date(y, m+1, 1).AddDate(0, 0, -1).Day()
}

// MonthsBetween returns the number of whole month boundaries between the
// months containing a and b. Adjacent months yield 1.
func MonthsBetween(a, b time.Time) int {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return (by-ay)*12 + int(bm) - int(am)
}

// MonthsIn lists the first day of every month touched by [start, end].
func MonthsIn(start, end time.Time) []time.Time {
	if end.Before(start) {
		return nil
	}
	var months []time.Time
	for m := StartOfMonth(start); !m.After(end); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}
