package payroll

import "context"

type PayrollService interface {
	ResolveCalendar(month, year int) (CalendarResponse, error)
	Preview(ctx context.Context, req PreviewRequest) (PreviewResponse, error)
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	ListRecords(ctx context.Context, filter Filter) (ListRecordResponse, error)
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)
	Finalize(ctx context.Context, req FinalizeRequest) error
	DeleteRecord(ctx context.Context, id string) error
	GetSummary(ctx context.Context, month, year int) (SummaryResponse, error)
	ExportRecords(ctx context.Context, month, year int) (fileName string, data []byte, err error)
}
