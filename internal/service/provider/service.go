package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorpj/payroll-backend-go/internal/domain/provider"
)

type ProviderServiceImpl struct {
	providerRepo provider.ProviderRepository
}

func NewProviderService(providerRepo provider.ProviderRepository) provider.ProviderService {
	return &ProviderServiceImpl{providerRepo: providerRepo}
}

func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// Create implements provider.ProviderService.
func (s *ProviderServiceImpl) Create(ctx context.Context, req provider.CreateProviderRequest) (provider.ProviderResponse, error) {
	if err := req.Validate(); err != nil {
		return provider.ProviderResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return provider.ProviderResponse{}, err
	}

	newProvider := provider.Provider{
		CompanyID:               companyID,
		Name:                    req.Name,
		Document:                req.Document,
		Email:                   req.Email,
		MonthlyValue:            req.MonthlyValue,
		MonthlyHours:            req.MonthlyHours,
		AdvancePercentage:       req.AdvancePercentage,
		TransportBenefitEnabled: req.TransportBenefitEnabled,
		TransportFarePerTrip:    decimal.Zero,
		Active:                  true,
	}
	if req.TransportFarePerTrip != nil {
		newProvider.TransportFarePerTrip = *req.TransportFarePerTrip
	}
	if req.TripsPerDay != nil {
		newProvider.TripsPerDay = *req.TripsPerDay
	}
	if req.HiredDate != nil {
		hired, _ := time.Parse("2006-01-02", *req.HiredDate)
		newProvider.HiredDate = &hired
	}

	created, err := s.providerRepo.Create(ctx, newProvider)
	if err != nil {
		return provider.ProviderResponse{}, err
	}

	return toProviderResponse(created), nil
}

// Get implements provider.ProviderService.
func (s *ProviderServiceImpl) Get(ctx context.Context, id string) (provider.ProviderResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return provider.ProviderResponse{}, err
	}

	found, err := s.providerRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return provider.ProviderResponse{}, err
	}

	return toProviderResponse(found), nil
}

// List implements provider.ProviderService.
func (s *ProviderServiceImpl) List(ctx context.Context, activeOnly bool) ([]provider.ProviderResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	providers, err := s.providerRepo.ListByCompanyID(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]provider.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		responses = append(responses, toProviderResponse(p))
	}
	return responses, nil
}

// Update implements provider.ProviderService.
func (s *ProviderServiceImpl) Update(ctx context.Context, req provider.UpdateProviderRequest) (provider.ProviderResponse, error) {
	if err := req.Validate(); err != nil {
		return provider.ProviderResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return provider.ProviderResponse{}, err
	}

	if err := s.providerRepo.Update(ctx, companyID, req); err != nil {
		return provider.ProviderResponse{}, err
	}

	updated, err := s.providerRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return provider.ProviderResponse{}, err
	}

	return toProviderResponse(updated), nil
}

// Delete implements provider.ProviderService.
func (s *ProviderServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.providerRepo.Delete(ctx, id, companyID)
}

func toProviderResponse(p provider.Provider) provider.ProviderResponse {
	resp := provider.ProviderResponse{
		ID:                      p.ID,
		Name:                    p.Name,
		Document:                p.Document,
		Email:                   p.Email,
		MonthlyValue:            p.MonthlyValue,
		MonthlyHours:            p.MonthlyHours,
		AdvancePercentage:       p.AdvancePercentage,
		TransportBenefitEnabled: p.TransportBenefitEnabled,
		TransportFarePerTrip:    p.TransportFarePerTrip,
		TripsPerDay:             p.TripsPerDay,
		Active:                  p.Active,
	}
	if p.HiredDate != nil {
		hired := p.HiredDate.Format("2006-01-02")
		resp.HiredDate = &hired
	}
	return resp
}
