package payroll

import "context"

// PayrollRepository defines data access for payroll records. All methods
// take companyID to prevent cross-company data access.
type PayrollRepository interface {
	CreateRecord(ctx context.Context, record Record) (Record, error)
	GetRecordByID(ctx context.Context, id string, companyID string) (Record, error)
	GetRecordByProviderPeriod(ctx context.Context, providerID string, month, year int, companyID string) (Record, error)
	ListRecords(ctx context.Context, companyID string, filter Filter) ([]Record, int64, error)
	UpdateRecord(ctx context.Context, record Record) error
	FinalizeRecords(ctx context.Context, ids []string, paidBy string, companyID string) error
	DeleteRecord(ctx context.Context, id string, companyID string) error
	GetSummary(ctx context.Context, companyID string, month, year int) (SummaryResponse, error)
}
