package company

import "context"

type CompanyService interface {
	GetMine(ctx context.Context) (CompanyResponse, error)
	UpdateMine(ctx context.Context, req UpdateCompanyRequest) (CompanyResponse, error)
}
