package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEasterSunday(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2026, time.April, 5},
		{2027, time.March, 28},
		{2028, time.April, 16},
	}
	for _, c := range cases {
		got := easterSunday(c.year)
		assert.Equal(t, Date(c.year, c.month, c.day), got, "easter %d", c.year)
	}
}

func TestBrazilSource_FixedDates(t *testing.T) {
	src := NewBrazilSource()
	holidays := src.HolidaysFor(2026)

	assert.Contains(t, holidays, Date(2026, time.January, 1))
	assert.Contains(t, holidays, Date(2026, time.April, 21))
	assert.Contains(t, holidays, Date(2026, time.May, 1))
	assert.Contains(t, holidays, Date(2026, time.September, 7))
	assert.Contains(t, holidays, Date(2026, time.October, 12))
	assert.Contains(t, holidays, Date(2026, time.November, 2))
	assert.Contains(t, holidays, Date(2026, time.November, 15))
	assert.Contains(t, holidays, Date(2026, time.December, 25))
}

func TestBrazilSource_MovableDates(t *testing.T) {
	src := NewBrazilSource()
	holidays := src.HolidaysFor(2026)

	// Easter 2026 is April 5
	assert.Contains(t, holidays, Date(2026, time.February, 17), "carnaval")
	assert.Contains(t, holidays, Date(2026, time.April, 3), "sexta-feira santa")
	assert.Contains(t, holidays, Date(2026, time.June, 4), "corpus christi")
}

func TestBrazilSource_ConscienciaNegra(t *testing.T) {
	src := NewBrazilSource()

	assert.Contains(t, src.HolidaysFor(2024), Date(2024, time.November, 20))
	assert.NotContains(t, src.HolidaysFor(2023), Date(2023, time.November, 20))
}

func TestBrazilSource_InvalidYear(t *testing.T) {
	src := NewBrazilSource()
	assert.Empty(t, src.HolidaysFor(0))
	assert.Empty(t, src.HolidaysFor(-10))
}

func TestFixedSource_MissingYear(t *testing.T) {
	src := FixedSource{2026: {Date(2026, time.January, 1)}}

	assert.Len(t, src.HolidaysFor(2026), 1)
	assert.Empty(t, src.HolidaysFor(2027))
}
