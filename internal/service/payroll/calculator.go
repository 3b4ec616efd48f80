package payroll

import (
	"fmt"

	"github.com/gestorpj/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Premium multipliers are fixed policy constants of this engine.
var (
	overtimeMultiplier = decimal.NewFromFloat(1.5)
	holidayMultiplier  = decimal.NewFromInt(2)
	nightMultiplier    = decimal.NewFromFloat(1.2)

	minutesPerHour = decimal.NewFromInt(60)
	oneHundred     = decimal.NewFromInt(100)

	// CLT monthly divisor used to convert absence days to hours.
	monthlyDivisorDays = decimal.NewFromInt(30)
)

// Compute derives the full monetary breakdown of one payroll period. It is a
// pure function: identical inputs yield identical output, and no rounding is
// applied. Presentation-layer formatting belongs to the caller.
func Compute(terms payroll.ContractTerms, inputs payroll.PeriodInputs, cal payroll.CalendarAggregate) (payroll.Breakdown, error) {
	if err := validateContract(terms); err != nil {
		return payroll.Breakdown{}, err
	}
	if err := validateInputs(inputs); err != nil {
		return payroll.Breakdown{}, err
	}

	hourlyRate := terms.MonthlyValue.Div(terms.MonthlyHours)

	overtimeAmount := inputs.OvertimeHours.Mul(hourlyRate).Mul(overtimeMultiplier)
	holidayAmount := inputs.HolidayHours.Mul(hourlyRate).Mul(holidayMultiplier)
	nightAmount := inputs.NightHours.Mul(hourlyRate).Mul(nightMultiplier)

	// DSR apportions workday premiums over the paid rest days. Night-shift
	// amounts are excluded from the basis. Guarded: a month with no workdays
	// yields zero, not a division error.
	dsrAmount := decimal.Zero
	if cal.WorkDays > 0 {
		dsrAmount = overtimeAmount.Add(holidayAmount).
			Div(decimal.NewFromInt(int64(cal.WorkDays))).
			Mul(decimal.NewFromInt(int64(cal.RestDays)))
	}

	lateDiscount := inputs.LateMinutes.Div(minutesPerHour).Mul(hourlyRate)
	absenceDiscount := inputs.AbsenceHours.Mul(hourlyRate)

	transportDiscount := decimal.Zero
	if terms.TransportBenefitEnabled {
		benefitDays := cal.WorkDays - inputs.AbsenceDays
		if benefitDays < 0 {
			benefitDays = 0
		}
		transportDiscount = decimal.NewFromInt(int64(terms.TripsPerDay)).
			Mul(terms.TransportFarePerTrip).
			Mul(decimal.NewFromInt(int64(benefitDays)))
	}

	advanceAmount := terms.MonthlyValue.Mul(terms.AdvancePercentage).Div(oneHundred)

	totalAdditions := overtimeAmount.Add(holidayAmount).Add(nightAmount).Add(dsrAmount)
	totalDiscounts := lateDiscount.Add(absenceDiscount).Add(transportDiscount).Add(inputs.ManualDiscount)

	netValue := terms.MonthlyValue.
		Sub(advanceAmount).
		Add(totalAdditions).
		Sub(totalDiscounts)

	breakdown := payroll.Breakdown{
		HourlyRate:        hourlyRate,
		OvertimeAmount:    overtimeAmount,
		HolidayAmount:     holidayAmount,
		NightAmount:       nightAmount,
		DSRAmount:         dsrAmount,
		TotalAdditions:    totalAdditions,
		LateDiscount:      lateDiscount,
		AbsenceDiscount:   absenceDiscount,
		TransportDiscount: transportDiscount,
		ManualDiscount:    inputs.ManualDiscount,
		TotalDiscounts:    totalDiscounts,
		AdvanceAmount:     advanceAmount,
		NetValue:          netValue,
	}

	// Advisory proration when the provider was hired inside the reference
	// month. Not folded into NetValue.
	if inputs.HiredDate != nil &&
		inputs.HiredDate.Year() == inputs.Year &&
		int(inputs.HiredDate.Month()) == inputs.Month &&
		cal.TotalDays > 0 {
		workedDays := cal.TotalDays - inputs.HiredDate.Day() + 1
		proportional := Prorate(terms.MonthlyValue, workedDays, cal.TotalDays)
		breakdown.WorkedDays = &workedDays
		breakdown.ProportionalValue = &proportional
	}

	return breakdown, nil
}

// Prorate computes the partial-month salary for workedDays out of totalDays.
func Prorate(monthlyValue decimal.Decimal, workedDays, totalDays int) decimal.Decimal {
	if totalDays <= 0 || workedDays <= 0 {
		return decimal.Zero
	}
	return monthlyValue.
		Mul(decimal.NewFromInt(int64(workedDays))).
		Div(decimal.NewFromInt(int64(totalDays)))
}

// AbsenceDaysToHours converts whole absence days to hours using the CLT
// monthly divisor of 30 days.
func AbsenceDaysToHours(monthlyHours decimal.Decimal, absenceDays int) decimal.Decimal {
	if absenceDays <= 0 || !monthlyHours.IsPositive() {
		return decimal.Zero
	}
	dailyHours := monthlyHours.Div(monthlyDivisorDays)
	return dailyHours.Mul(decimal.NewFromInt(int64(absenceDays)))
}

func validateContract(terms payroll.ContractTerms) error {
	if !terms.MonthlyHours.IsPositive() {
		return fmt.Errorf("%w: monthly hours must be positive", payroll.ErrInvalidContract)
	}
	if terms.MonthlyValue.IsNegative() {
		return fmt.Errorf("%w: monthly value must be non-negative", payroll.ErrInvalidContract)
	}
	if terms.AdvancePercentage.IsNegative() || terms.AdvancePercentage.GreaterThan(oneHundred) {
		return fmt.Errorf("%w: advance percentage must be between 0 and 100", payroll.ErrInvalidContract)
	}
	if terms.TransportBenefitEnabled {
		if terms.TransportFarePerTrip.IsNegative() {
			return fmt.Errorf("%w: transport fare must be non-negative", payroll.ErrInvalidContract)
		}
		if terms.TripsPerDay < 0 {
			return fmt.Errorf("%w: trips per day must be non-negative", payroll.ErrInvalidContract)
		}
	}
	return nil
}

func validateInputs(inputs payroll.PeriodInputs) error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"overtime hours", inputs.OvertimeHours},
		{"holiday hours", inputs.HolidayHours},
		{"night hours", inputs.NightHours},
		{"late minutes", inputs.LateMinutes},
		{"absence hours", inputs.AbsenceHours},
		{"manual discount", inputs.ManualDiscount},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return fmt.Errorf("%w: %s must be non-negative", payroll.ErrInvalidInputs, f.name)
		}
	}
	if inputs.AbsenceDays < 0 {
		return fmt.Errorf("%w: absence days must be non-negative", payroll.ErrInvalidInputs)
	}
	return nil
}
