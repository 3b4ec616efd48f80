package payroll

import (
	"testing"
	"time"

	"github.com/gestorpj/payroll-backend-go/internal/pkg/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/gestorpj/payroll-backend-go/internal/domain/payroll"
)

func TestCalendarResolver_January2026(t *testing.T) {
	resolver := NewCalendarResolver(holiday.NewBrazilSource())

	cal, err := resolver.Resolve(1, 2026)
	require.NoError(t, err)

	// January 2026 starts on a Thursday; Jan 1 is a national holiday.
	assert.Equal(t, 31, cal.TotalDays)
	assert.Equal(t, 4, cal.Sundays)
	assert.Equal(t, 5, cal.Saturdays)
	assert.GreaterOrEqual(t, cal.Holidays, 1)
	assert.Equal(t, cal.Sundays+cal.Holidays, cal.RestDays)
	assert.Equal(t, cal.TotalDays, cal.WorkDays+cal.Saturdays+cal.Sundays+cal.Holidays)
}

func TestCalendarResolver_DayCountInvariant(t *testing.T) {
	resolver := NewCalendarResolver(holiday.NewBrazilSource())

	for year := 2024; year <= 2028; year++ {
		for month := 1; month <= 12; month++ {
			cal, err := resolver.Resolve(month, year)
			require.NoError(t, err)

			assert.Equal(t, cal.TotalDays, cal.WorkDays+cal.Saturdays+cal.Sundays+cal.Holidays,
				"day classes must partition %d/%d", month, year)
			assert.Equal(t, cal.Sundays+cal.Holidays, cal.RestDays,
				"rest days must be sundays+holidays %d/%d", month, year)
		}
	}
}

func TestCalendarResolver_LeapFebruary(t *testing.T) {
	resolver := NewCalendarResolver(holiday.FixedSource{})

	leap, err := resolver.Resolve(2, 2028)
	require.NoError(t, err)
	assert.Equal(t, 29, leap.TotalDays)

	nonLeap, err := resolver.Resolve(2, 2026)
	require.NoError(t, err)
	assert.Equal(t, 28, nonLeap.TotalDays)
}

func TestCalendarResolver_HolidayOnSundayNotDoubleCounted(t *testing.T) {
	// April 5, 2026 is a Sunday.
	source := holiday.FixedSource{2026: {holiday.Date(2026, time.April, 5)}}
	resolver := NewCalendarResolver(source)

	cal, err := resolver.Resolve(4, 2026)
	require.NoError(t, err)

	assert.Equal(t, 4, cal.Sundays)
	assert.Equal(t, 0, cal.Holidays)
	assert.Equal(t, 4, cal.RestDays)
}

func TestCalendarResolver_HolidayOnSaturdayExcluded(t *testing.T) {
	// August 1, 2026 is a Saturday.
	source := holiday.FixedSource{2026: {holiday.Date(2026, time.August, 1)}}
	resolver := NewCalendarResolver(source)

	cal, err := resolver.Resolve(8, 2026)
	require.NoError(t, err)

	assert.Equal(t, 5, cal.Saturdays)
	assert.Equal(t, 0, cal.Holidays)
	assert.Equal(t, 21, cal.WorkDays)
}

func TestCalendarResolver_MissingYearUndercountsHolidays(t *testing.T) {
	source := holiday.FixedSource{2026: {holiday.Date(2026, time.January, 1)}}
	resolver := NewCalendarResolver(source)

	cal, err := resolver.Resolve(1, 2027)
	require.NoError(t, err)
	assert.Equal(t, 0, cal.Holidays)
}

func TestCalendarResolver_InvalidPeriod(t *testing.T) {
	resolver := NewCalendarResolver(holiday.NewBrazilSource())

	cases := []struct {
		name  string
		month int
		year  int
	}{
		{"month zero", 0, 2026},
		{"month thirteen", 13, 2026},
		{"year zero", 1, 0},
		{"negative year", 1, -5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := resolver.Resolve(c.month, c.year)
			assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
		})
	}
}
