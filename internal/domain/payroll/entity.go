package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractTerms is the fixed monthly rate card of one service provider.
// It is an immutable input to a calculation, owned by the provider record.
type ContractTerms struct {
	MonthlyValue            decimal.Decimal
	MonthlyHours            decimal.Decimal
	AdvancePercentage       decimal.Decimal
	TransportBenefitEnabled bool
	TransportFarePerTrip    decimal.Decimal
	TripsPerDay             int
}

// PeriodInputs are the worked/absence quantities of one payroll period.
// Zero values mean "not applicable".
type PeriodInputs struct {
	Month          int
	Year           int
	HiredDate      *time.Time
	OvertimeHours  decimal.Decimal
	HolidayHours   decimal.Decimal
	NightHours     decimal.Decimal
	LateMinutes    decimal.Decimal
	AbsenceDays    int
	AbsenceHours   decimal.Decimal
	ManualDiscount decimal.Decimal
}

// CalendarAggregate classifies the days of one calendar month. Saturdays
// count toward TotalDays only; RestDays is always Sundays + Holidays.
type CalendarAggregate struct {
	Month     int
	Year      int
	TotalDays int
	WorkDays  int
	Saturdays int
	Sundays   int
	Holidays  int
	RestDays  int
}

// Breakdown is the full monetary result of one payroll calculation. It is a
// pure function of its inputs; no rounding is applied.
type Breakdown struct {
	HourlyRate        decimal.Decimal
	OvertimeAmount    decimal.Decimal
	HolidayAmount     decimal.Decimal
	NightAmount       decimal.Decimal
	DSRAmount         decimal.Decimal
	TotalAdditions    decimal.Decimal
	LateDiscount      decimal.Decimal
	AbsenceDiscount   decimal.Decimal
	TransportDiscount decimal.Decimal
	ManualDiscount    decimal.Decimal
	TotalDiscounts    decimal.Decimal
	AdvanceAmount     decimal.Decimal
	NetValue          decimal.Decimal

	// Partial-month proration hint, set only when the provider was hired
	// inside the reference month. Not folded into NetValue.
	WorkedDays        *int
	ProportionalValue *decimal.Decimal
}

// Status enum
type Status string

const (
	StatusDraft Status = "draft"
	StatusPaid  Status = "paid"
)

// Record is a persisted payroll for one provider and reference month.
type Record struct {
	ID         string
	CompanyID  string
	ProviderID string

	PeriodMonth int
	PeriodYear  int

	MonthlyValue   decimal.Decimal
	OvertimeHours  decimal.Decimal
	HolidayHours   decimal.Decimal
	NightHours     decimal.Decimal
	LateMinutes    decimal.Decimal
	AbsenceDays    int
	AbsenceHours   decimal.Decimal
	ManualDiscount decimal.Decimal

	Calendar  CalendarAggregate
	Breakdown Breakdown

	Status    Status
	PaidAt    *time.Time
	PaidBy    *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	ProviderName *string
}
