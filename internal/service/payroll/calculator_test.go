package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/gestorpj/payroll-backend-go/internal/domain/payroll"
)

func baseTerms() domain.ContractTerms {
	return domain.ContractTerms{
		MonthlyValue:      decimal.NewFromInt(3000),
		MonthlyHours:      decimal.NewFromInt(220),
		AdvancePercentage: decimal.NewFromInt(40),
	}
}

func baseCalendar() domain.CalendarAggregate {
	return domain.CalendarAggregate{
		Month:     1,
		Year:      2026,
		TotalDays: 31,
		WorkDays:  22,
		Saturdays: 5,
		Sundays:   4,
		Holidays:  4,
		RestDays:  8,
	}
}

func TestCompute_EndToEndExample(t *testing.T) {
	inputs := domain.PeriodInputs{
		Month:         1,
		Year:          2026,
		OvertimeHours: decimal.NewFromInt(10),
		LateMinutes:   decimal.NewFromInt(60),
	}

	b, err := Compute(baseTerms(), inputs, baseCalendar())
	require.NoError(t, err)

	assert.InDelta(t, 13.636364, b.HourlyRate.InexactFloat64(), 1e-6)
	assert.InDelta(t, 204.545455, b.OvertimeAmount.InexactFloat64(), 1e-6)
	assert.InDelta(t, 74.380165, b.DSRAmount.InexactFloat64(), 1e-6)
	assert.InDelta(t, 13.636364, b.LateDiscount.InexactFloat64(), 1e-6)
	assert.True(t, b.AdvanceAmount.Equal(decimal.NewFromInt(1200)))

	// 3000 - 1200 + 204.5454... + 74.3801... - 13.6363...
	assert.InDelta(t, 2065.289256, b.NetValue.InexactFloat64(), 1e-6)
}

func TestCompute_PremiumMultipliers(t *testing.T) {
	terms := domain.ContractTerms{
		MonthlyValue:      decimal.NewFromInt(2200),
		MonthlyHours:      decimal.NewFromInt(220),
		AdvancePercentage: decimal.Zero,
	}
	inputs := domain.PeriodInputs{
		Month:         3,
		Year:          2026,
		OvertimeHours: decimal.NewFromInt(2),
		HolidayHours:  decimal.NewFromInt(3),
		NightHours:    decimal.NewFromInt(5),
	}

	b, err := Compute(terms, inputs, baseCalendar())
	require.NoError(t, err)

	// hourly rate is exactly 10
	assert.True(t, b.HourlyRate.Equal(decimal.NewFromInt(10)))
	assert.True(t, b.OvertimeAmount.Equal(decimal.NewFromInt(30)), "2h x 10 x 1.5")
	assert.True(t, b.HolidayAmount.Equal(decimal.NewFromInt(60)), "3h x 10 x 2.0")
	assert.True(t, b.NightAmount.Equal(decimal.NewFromInt(60)), "5h x 10 x 1.2")
}

func TestCompute_NightExcludedFromDSR(t *testing.T) {
	inputs := domain.PeriodInputs{
		Month:      1,
		Year:       2026,
		NightHours: decimal.NewFromInt(10),
	}

	b, err := Compute(baseTerms(), inputs, baseCalendar())
	require.NoError(t, err)

	assert.True(t, b.DSRAmount.IsZero())
	assert.True(t, b.NightAmount.IsPositive())
}

func TestCompute_ZeroWorkDaysGuardsDSR(t *testing.T) {
	cal := domain.CalendarAggregate{Month: 2, Year: 2026, TotalDays: 28, RestDays: 8}
	inputs := domain.PeriodInputs{
		Month:         2,
		Year:          2026,
		OvertimeHours: decimal.NewFromInt(10),
	}

	b, err := Compute(baseTerms(), inputs, cal)
	require.NoError(t, err)
	assert.True(t, b.DSRAmount.IsZero())
}

func TestCompute_InvalidContract(t *testing.T) {
	terms := baseTerms()
	terms.MonthlyHours = decimal.Zero

	_, err := Compute(terms, domain.PeriodInputs{Month: 1, Year: 2026}, baseCalendar())
	assert.ErrorIs(t, err, domain.ErrInvalidContract)
}

func TestCompute_NegativeInputs(t *testing.T) {
	inputs := domain.PeriodInputs{
		Month:         1,
		Year:          2026,
		OvertimeHours: decimal.NewFromInt(-1),
	}

	_, err := Compute(baseTerms(), inputs, baseCalendar())
	assert.ErrorIs(t, err, domain.ErrInvalidInputs)

	inputs = domain.PeriodInputs{Month: 1, Year: 2026, AbsenceDays: -2}
	_, err = Compute(baseTerms(), inputs, baseCalendar())
	assert.ErrorIs(t, err, domain.ErrInvalidInputs)
}

func TestCompute_TransportDiscount(t *testing.T) {
	terms := baseTerms()
	terms.TransportBenefitEnabled = true
	terms.TransportFarePerTrip = decimal.NewFromInt(5)
	terms.TripsPerDay = 2

	inputs := domain.PeriodInputs{Month: 1, Year: 2026, AbsenceDays: 2}

	b, err := Compute(terms, inputs, baseCalendar())
	require.NoError(t, err)

	// 2 trips x 5.00 x (22 - 2) workdays
	assert.True(t, b.TransportDiscount.Equal(decimal.NewFromInt(200)))
}

func TestCompute_TransportDiscountClampedAtZero(t *testing.T) {
	terms := baseTerms()
	terms.TransportBenefitEnabled = true
	terms.TransportFarePerTrip = decimal.NewFromInt(5)
	terms.TripsPerDay = 2

	inputs := domain.PeriodInputs{Month: 1, Year: 2026, AbsenceDays: 30}

	b, err := Compute(terms, inputs, baseCalendar())
	require.NoError(t, err)
	assert.True(t, b.TransportDiscount.IsZero())
}

func TestCompute_TransportDisabled(t *testing.T) {
	b, err := Compute(baseTerms(), domain.PeriodInputs{Month: 1, Year: 2026}, baseCalendar())
	require.NoError(t, err)
	assert.True(t, b.TransportDiscount.IsZero())
}

func TestCompute_Idempotent(t *testing.T) {
	inputs := domain.PeriodInputs{
		Month:          1,
		Year:           2026,
		OvertimeHours:  decimal.NewFromFloat(7.5),
		HolidayHours:   decimal.NewFromInt(8),
		NightHours:     decimal.NewFromInt(12),
		LateMinutes:    decimal.NewFromInt(90),
		AbsenceHours:   decimal.NewFromInt(4),
		ManualDiscount: decimal.NewFromFloat(33.33),
	}

	first, err := Compute(baseTerms(), inputs, baseCalendar())
	require.NoError(t, err)
	second, err := Compute(baseTerms(), inputs, baseCalendar())
	require.NoError(t, err)

	assert.True(t, first.HourlyRate.Equal(second.HourlyRate))
	assert.True(t, first.TotalAdditions.Equal(second.TotalAdditions))
	assert.True(t, first.TotalDiscounts.Equal(second.TotalDiscounts))
	assert.True(t, first.DSRAmount.Equal(second.DSRAmount))
	assert.True(t, first.NetValue.Equal(second.NetValue))
}

func TestCompute_ProrationHint(t *testing.T) {
	hired := time.Date(2026, time.April, 16, 0, 0, 0, 0, time.UTC)
	inputs := domain.PeriodInputs{Month: 4, Year: 2026, HiredDate: &hired}
	cal := domain.CalendarAggregate{Month: 4, Year: 2026, TotalDays: 30, WorkDays: 20, RestDays: 6}

	b, err := Compute(baseTerms(), inputs, cal)
	require.NoError(t, err)

	require.NotNil(t, b.WorkedDays)
	require.NotNil(t, b.ProportionalValue)
	assert.Equal(t, 15, *b.WorkedDays)
	assert.True(t, b.ProportionalValue.Equal(decimal.NewFromInt(1500)))

	// Proration is advisory only: net value matches the unprorated run.
	plain, err := Compute(baseTerms(), domain.PeriodInputs{Month: 4, Year: 2026}, cal)
	require.NoError(t, err)
	assert.True(t, b.NetValue.Equal(plain.NetValue))
}

func TestCompute_NoProrationOutsideReferenceMonth(t *testing.T) {
	hired := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	inputs := domain.PeriodInputs{Month: 1, Year: 2026, HiredDate: &hired}

	b, err := Compute(baseTerms(), inputs, baseCalendar())
	require.NoError(t, err)
	assert.Nil(t, b.WorkedDays)
	assert.Nil(t, b.ProportionalValue)
}

func TestProrate(t *testing.T) {
	got := Prorate(decimal.NewFromInt(3000), 15, 30)
	assert.True(t, got.Equal(decimal.NewFromInt(1500)))

	assert.True(t, Prorate(decimal.NewFromInt(3000), 0, 30).IsZero())
	assert.True(t, Prorate(decimal.NewFromInt(3000), 10, 0).IsZero())
}

func TestAbsenceDaysToHours(t *testing.T) {
	got := AbsenceDaysToHours(decimal.NewFromInt(220), 3)
	assert.InDelta(t, 22.0, got.InexactFloat64(), 1e-9)

	assert.True(t, AbsenceDaysToHours(decimal.NewFromInt(220), 0).IsZero())
	assert.True(t, AbsenceDaysToHours(decimal.Zero, 3).IsZero())
}
