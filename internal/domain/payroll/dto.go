package payroll

import (
	"github.com/gestorpj/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== CALENDAR DTOs ==========

type CalendarResponse struct {
	Month     int `json:"month"`
	Year      int `json:"year"`
	TotalDays int `json:"total_days"`
	WorkDays  int `json:"work_days"`
	Saturdays int `json:"saturdays"`
	Sundays   int `json:"sundays"`
	Holidays  int `json:"holidays"`
	RestDays  int `json:"rest_days"`
}

func NewCalendarResponse(cal CalendarAggregate) CalendarResponse {
	return CalendarResponse{
		Month:     cal.Month,
		Year:      cal.Year,
		TotalDays: cal.TotalDays,
		WorkDays:  cal.WorkDays,
		Saturdays: cal.Saturdays,
		Sundays:   cal.Sundays,
		Holidays:  cal.Holidays,
		RestDays:  cal.RestDays,
	}
}

// ========== CALCULATION DTOs ==========

// PeriodInputsRequest carries the worked/absence quantities of a request.
// Omitted fields default to zero.
type PeriodInputsRequest struct {
	OvertimeHours  *decimal.Decimal `json:"overtime_hours,omitempty"`
	HolidayHours   *decimal.Decimal `json:"holiday_hours,omitempty"`
	NightHours     *decimal.Decimal `json:"night_hours,omitempty"`
	LateMinutes    *decimal.Decimal `json:"late_minutes,omitempty"`
	AbsenceDays    *int             `json:"absence_days,omitempty"`
	AbsenceHours   *decimal.Decimal `json:"absence_hours,omitempty"`
	ManualDiscount *decimal.Decimal `json:"manual_discount,omitempty"`
}

func (r *PeriodInputsRequest) validate(errs validator.ValidationErrors) validator.ValidationErrors {
	nonNegative := []struct {
		field string
		value *decimal.Decimal
	}{
		{"overtime_hours", r.OvertimeHours},
		{"holiday_hours", r.HolidayHours},
		{"night_hours", r.NightHours},
		{"late_minutes", r.LateMinutes},
		{"absence_hours", r.AbsenceHours},
		{"manual_discount", r.ManualDiscount},
	}
	for _, f := range nonNegative {
		if f.value != nil && f.value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: f.field, Message: "must be non-negative"})
		}
	}
	if r.AbsenceDays != nil && *r.AbsenceDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "absence_days", Message: "must be non-negative"})
	}
	return errs
}

type PreviewRequest struct {
	ProviderID  string `json:"provider_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodInputsRequest
}

func (r *PreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProviderID) {
		errs = append(errs, validator.ValidationError{Field: "provider_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.PeriodYear) {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be positive"})
	}
	errs = r.PeriodInputsRequest.validate(errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateRecordRequest struct {
	PreviewRequest
	Notes *string `json:"notes,omitempty"`
}

type UpdateRecordRequest struct {
	ID string `json:"-"`
	PeriodInputsRequest
	Notes *string `json:"notes,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	errs := r.PeriodInputsRequest.validate(nil)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FinalizeRequest struct {
	RecordIDs []string `json:"record_ids"`
}

func (r *FinalizeRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.RecordIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "record_ids", Message: "at least one record is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSE DTOs ==========

type BreakdownResponse struct {
	HourlyRate        decimal.Decimal  `json:"hourly_rate"`
	OvertimeAmount    decimal.Decimal  `json:"overtime_amount"`
	HolidayAmount     decimal.Decimal  `json:"holiday_amount"`
	NightAmount       decimal.Decimal  `json:"night_amount"`
	DSRAmount         decimal.Decimal  `json:"dsr_amount"`
	TotalAdditions    decimal.Decimal  `json:"total_additions"`
	LateDiscount      decimal.Decimal  `json:"late_discount"`
	AbsenceDiscount   decimal.Decimal  `json:"absence_discount"`
	TransportDiscount decimal.Decimal  `json:"transport_discount"`
	ManualDiscount    decimal.Decimal  `json:"manual_discount"`
	TotalDiscounts    decimal.Decimal  `json:"total_discounts"`
	AdvanceAmount     decimal.Decimal  `json:"advance_amount"`
	NetValue          decimal.Decimal  `json:"net_value"`
	WorkedDays        *int             `json:"worked_days,omitempty"`
	ProportionalValue *decimal.Decimal `json:"proportional_value,omitempty"`
}

func NewBreakdownResponse(b Breakdown) BreakdownResponse {
	return BreakdownResponse{
		HourlyRate:        b.HourlyRate,
		OvertimeAmount:    b.OvertimeAmount,
		HolidayAmount:     b.HolidayAmount,
		NightAmount:       b.NightAmount,
		DSRAmount:         b.DSRAmount,
		TotalAdditions:    b.TotalAdditions,
		LateDiscount:      b.LateDiscount,
		AbsenceDiscount:   b.AbsenceDiscount,
		TransportDiscount: b.TransportDiscount,
		ManualDiscount:    b.ManualDiscount,
		TotalDiscounts:    b.TotalDiscounts,
		AdvanceAmount:     b.AdvanceAmount,
		NetValue:          b.NetValue,
		WorkedDays:        b.WorkedDays,
		ProportionalValue: b.ProportionalValue,
	}
}

type PreviewResponse struct {
	ProviderID   string            `json:"provider_id"`
	PeriodMonth  int               `json:"period_month"`
	PeriodYear   int               `json:"period_year"`
	MonthlyValue decimal.Decimal   `json:"monthly_value"`
	Calendar     CalendarResponse  `json:"calendar"`
	Breakdown    BreakdownResponse `json:"breakdown"`
}

type RecordResponse struct {
	ID           string            `json:"id"`
	ProviderID   string            `json:"provider_id"`
	ProviderName string            `json:"provider_name"`
	PeriodMonth  int               `json:"period_month"`
	PeriodYear   int               `json:"period_year"`
	MonthlyValue decimal.Decimal   `json:"monthly_value"`
	Calendar     CalendarResponse  `json:"calendar"`
	Breakdown    BreakdownResponse `json:"breakdown"`
	Status       string            `json:"status"`
	PaidAt       *string           `json:"paid_at,omitempty"`
	Notes        *string           `json:"notes,omitempty"`
}

type Filter struct {
	PeriodMonth *int    `json:"period_month,omitempty"`
	PeriodYear  *int    `json:"period_year,omitempty"`
	Status      *string `json:"status,omitempty"`
	ProviderID  *string `json:"provider_id,omitempty"`
	Page        int     `json:"page"`
	Limit       int     `json:"limit"`
}

type ListRecordResponse struct {
	Data       []RecordResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

type SummaryResponse struct {
	PeriodMonth    int             `json:"period_month"`
	PeriodYear     int             `json:"period_year"`
	TotalProviders int             `json:"total_providers"`
	TotalMonthly   decimal.Decimal `json:"total_monthly"`
	TotalAdditions decimal.Decimal `json:"total_additions"`
	TotalDiscounts decimal.Decimal `json:"total_discounts"`
	TotalAdvances  decimal.Decimal `json:"total_advances"`
	TotalNet       decimal.Decimal `json:"total_net"`
	DraftCount     int             `json:"draft_count"`
	PaidCount      int             `json:"paid_count"`
}
