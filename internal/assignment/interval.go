package assignment

import "time"

// FarFuture is the to_date carried by assignment rows that have not been
// superseded yet.
var FarFuture = time.Date(9999, time.January, 1, 0, 0, 0, 0, time.UTC)

// Interval is an effective-dated validity window. To is inclusive.
type Interval struct {
	From time.Time
	To   time.Time
}

// IsCurrent reports whether the interval is still open.
func (i Interval) IsCurrent() bool {
	return sameDate(i.To, FarFuture)
}

// ActiveOn reports whether the interval covers the calendar date of d.
func (i Interval) ActiveOn(d time.Time) bool {
	day := truncateDate(d)
	if day.Before(truncateDate(i.From)) {
		return false
	}
	return i.IsCurrent() || !day.After(truncateDate(i.To))
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	return truncateDate(a).Equal(truncateDate(b))
}
