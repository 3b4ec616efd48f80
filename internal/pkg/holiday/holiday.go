package holiday

import "time"

// Source supplies the public holidays for a calendar year. Implementations
// must be safe for concurrent use; a year the source does not know yields an
// empty slice, never an error.
type Source interface {
	HolidaysFor(year int) []time.Time
}

// FixedSource is a Source backed by a static per-year table. Years absent
// from the table have no holidays.
type FixedSource map[int][]time.Time

func (s FixedSource) HolidaysFor(year int) []time.Time {
	return s[year]
}

// Date builds a holiday entry at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
