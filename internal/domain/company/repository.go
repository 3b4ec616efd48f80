package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, newCompany Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) error
}
