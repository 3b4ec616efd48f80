package provider

import "context"

type ProviderService interface {
	Create(ctx context.Context, req CreateProviderRequest) (ProviderResponse, error)
	Get(ctx context.Context, id string) (ProviderResponse, error)
	List(ctx context.Context, activeOnly bool) ([]ProviderResponse, error)
	Update(ctx context.Context, req UpdateProviderRequest) (ProviderResponse, error)
	Delete(ctx context.Context, id string) error
}
