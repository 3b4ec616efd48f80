package provider

import (
	"time"

	"github.com/gestorpj/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Provider is a contracted service provider with a monthly rate card.
type Provider struct {
	ID        string
	CompanyID string
	Name      string
	Document  *string
	Email     *string

	MonthlyValue            decimal.Decimal
	MonthlyHours            decimal.Decimal
	AdvancePercentage       decimal.Decimal
	TransportBenefitEnabled bool
	TransportFarePerTrip    decimal.Decimal
	TripsPerDay             int

	HiredDate *time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContractTerms maps the provider's rate card to the calculation engine's
// input type.
func (p Provider) ContractTerms() payroll.ContractTerms {
	return payroll.ContractTerms{
		MonthlyValue:            p.MonthlyValue,
		MonthlyHours:            p.MonthlyHours,
		AdvancePercentage:       p.AdvancePercentage,
		TransportBenefitEnabled: p.TransportBenefitEnabled,
		TransportFarePerTrip:    p.TransportFarePerTrip,
		TripsPerDay:             p.TripsPerDay,
	}
}
