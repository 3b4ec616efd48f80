package payroll

import (
	"fmt"
	"time"

	"github.com/gestorpj/payroll-backend-go/internal/domain/payroll"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/holiday"
)

// CalendarResolver classifies every day of a reference month as workday,
// Saturday, Sunday or public holiday. It holds no mutable state and is safe
// for concurrent use.
type CalendarResolver struct {
	source holiday.Source
}

func NewCalendarResolver(source holiday.Source) *CalendarResolver {
	return &CalendarResolver{source: source}
}

// Resolve enumerates the month's days. Classification priority: Sunday
// first, then Saturday, then public holiday, else workday. A holiday on a
// Sunday counts as a Sunday; a holiday on a Saturday counts toward neither
// tally. RestDays is Sundays + Holidays. Saturdays are excluded from the
// paid-rest basis.
func (r *CalendarResolver) Resolve(month, year int) (payroll.CalendarAggregate, error) {
	if month < 1 || month > 12 {
		return payroll.CalendarAggregate{}, fmt.Errorf("%w: month %d out of range", payroll.ErrInvalidPeriod, month)
	}
	if year <= 0 {
		return payroll.CalendarAggregate{}, fmt.Errorf("%w: year %d must be positive", payroll.ErrInvalidPeriod, year)
	}

	// A year missing from the source yields no holidays, not an error.
	holidaySet := make(map[int]bool)
	for _, h := range r.source.HolidaysFor(year) {
		if h.Year() != year {
			continue
		}
		holidaySet[dayKey(h.Month(), h.Day())] = true
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	totalDays := first.AddDate(0, 1, -1).Day()

	cal := payroll.CalendarAggregate{
		Month:     month,
		Year:      year,
		TotalDays: totalDays,
	}

	for day := 1; day <= totalDays; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		switch {
		case date.Weekday() == time.Sunday:
			cal.Sundays++
		case date.Weekday() == time.Saturday:
			cal.Saturdays++
		case holidaySet[dayKey(date.Month(), day)]:
			cal.Holidays++
		default:
			cal.WorkDays++
		}
	}

	cal.RestDays = cal.Sundays + cal.Holidays
	return cal, nil
}

func dayKey(month time.Month, day int) int {
	return int(month)*100 + day
}
