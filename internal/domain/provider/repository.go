package provider

import "context"

type ProviderRepository interface {
	Create(ctx context.Context, newProvider Provider) (Provider, error)
	GetByID(ctx context.Context, id string, companyID string) (Provider, error)
	ListByCompanyID(ctx context.Context, companyID string, activeOnly bool) ([]Provider, error)
	Update(ctx context.Context, companyID string, req UpdateProviderRequest) error
	Delete(ctx context.Context, id string, companyID string) error
}
