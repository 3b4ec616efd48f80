package company

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/gestorpj/payroll-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	companyRepo company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
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

// GetMine implements company.CompanyService.
func (s *CompanyServiceImpl) GetMine(ctx context.Context) (company.CompanyResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	found, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return toCompanyResponse(found), nil
}

// UpdateMine implements company.CompanyService.
func (s *CompanyServiceImpl) UpdateMine(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	if err := s.companyRepo.Update(ctx, companyID, req); err != nil {
		return company.CompanyResponse{}, err
	}

	updated, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return toCompanyResponse(updated), nil
}

func toCompanyResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		LegalName: c.LegalName,
		CNPJ:      c.CNPJ,
		Address:   c.Address,
	}
}
