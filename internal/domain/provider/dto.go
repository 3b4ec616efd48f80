package provider

import (
	"github.com/gestorpj/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateProviderRequest struct {
	Name                    string           `json:"name"`
	Document                *string          `json:"document,omitempty"`
	Email                   *string          `json:"email,omitempty"`
	MonthlyValue            decimal.Decimal  `json:"monthly_value"`
	MonthlyHours            decimal.Decimal  `json:"monthly_hours"`
	AdvancePercentage       decimal.Decimal  `json:"advance_percentage"`
	TransportBenefitEnabled bool             `json:"transport_benefit_enabled"`
	TransportFarePerTrip    *decimal.Decimal `json:"transport_fare_per_trip,omitempty"`
	TripsPerDay             *int             `json:"trips_per_day,omitempty"`
	HiredDate               *string          `json:"hired_date,omitempty"`
}

func (r *CreateProviderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Document != nil && !validator.IsValidCPF(*r.Document) && !validator.IsValidCNPJ(*r.Document) {
		errs = append(errs, validator.ValidationError{Field: "document", Message: "must be a valid CPF or CNPJ"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if !r.MonthlyValue.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_value", Message: "must be positive"})
	}
	if !r.MonthlyHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_hours", Message: "must be positive"})
	}
	if !validator.IsPercentage(r.AdvancePercentage) {
		errs = append(errs, validator.ValidationError{Field: "advance_percentage", Message: "must be between 0 and 100"})
	}
	if r.TransportBenefitEnabled {
		if r.TransportFarePerTrip == nil || !r.TransportFarePerTrip.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "transport_fare_per_trip", Message: "is required when transport benefit is enabled"})
		}
		if r.TripsPerDay == nil || *r.TripsPerDay < 0 {
			errs = append(errs, validator.ValidationError{Field: "trips_per_day", Message: "is required when transport benefit is enabled"})
		}
	}
	if r.HiredDate != nil {
		if _, ok := validator.IsValidDate(*r.HiredDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hired_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProviderRequest struct {
	ID                      string           `json:"-"`
	Name                    *string          `json:"name,omitempty"`
	Document                *string          `json:"document,omitempty"`
	Email                   *string          `json:"email,omitempty"`
	MonthlyValue            *decimal.Decimal `json:"monthly_value,omitempty"`
	MonthlyHours            *decimal.Decimal `json:"monthly_hours,omitempty"`
	AdvancePercentage       *decimal.Decimal `json:"advance_percentage,omitempty"`
	TransportBenefitEnabled *bool            `json:"transport_benefit_enabled,omitempty"`
	TransportFarePerTrip    *decimal.Decimal `json:"transport_fare_per_trip,omitempty"`
	TripsPerDay             *int             `json:"trips_per_day,omitempty"`
	HiredDate               *string          `json:"hired_date,omitempty"`
	Active                  *bool            `json:"active,omitempty"`
}

func (r *UpdateProviderRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.MonthlyValue != nil && !r.MonthlyValue.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_value", Message: "must be positive"})
	}
	if r.MonthlyHours != nil && !r.MonthlyHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_hours", Message: "must be positive"})
	}
	if r.AdvancePercentage != nil && !validator.IsPercentage(*r.AdvancePercentage) {
		errs = append(errs, validator.ValidationError{Field: "advance_percentage", Message: "must be between 0 and 100"})
	}
	if r.TransportFarePerTrip != nil && r.TransportFarePerTrip.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "transport_fare_per_trip", Message: "must be non-negative"})
	}
	if r.TripsPerDay != nil && *r.TripsPerDay < 0 {
		errs = append(errs, validator.ValidationError{Field: "trips_per_day", Message: "must be non-negative"})
	}
	if r.HiredDate != nil {
		if _, ok := validator.IsValidDate(*r.HiredDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hired_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProviderResponse struct {
	ID                      string          `json:"id"`
	Name                    string          `json:"name"`
	Document                *string         `json:"document,omitempty"`
	Email                   *string         `json:"email,omitempty"`
	MonthlyValue            decimal.Decimal `json:"monthly_value"`
	MonthlyHours            decimal.Decimal `json:"monthly_hours"`
	AdvancePercentage       decimal.Decimal `json:"advance_percentage"`
	TransportBenefitEnabled bool            `json:"transport_benefit_enabled"`
	TransportFarePerTrip    decimal.Decimal `json:"transport_fare_per_trip"`
	TripsPerDay             int             `json:"trips_per_day"`
	HiredDate               *string         `json:"hired_date,omitempty"`
	Active                  bool            `json:"active"`
}
