package payroll

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/gestorpj/payroll-backend-go/internal/domain/payroll"
	"github.com/gestorpj/payroll-backend-go/internal/domain/provider"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/holiday"
)

// ========== fakes ==========

type fakeProviderRepo struct {
	providers map[string]provider.Provider
}

func (f *fakeProviderRepo) Create(_ context.Context, p provider.Provider) (provider.Provider, error) {
	f.providers[p.ID] = p
	return p, nil
}

func (f *fakeProviderRepo) GetByID(_ context.Context, id string, companyID string) (provider.Provider, error) {
	p, ok := f.providers[id]
	if !ok || p.CompanyID != companyID {
		return provider.Provider{}, provider.ErrProviderNotFound
	}
	return p, nil
}

func (f *fakeProviderRepo) ListByCompanyID(_ context.Context, companyID string, activeOnly bool) ([]provider.Provider, error) {
	var out []provider.Provider
	for _, p := range f.providers {
		if p.CompanyID != companyID {
			continue
		}
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProviderRepo) Update(_ context.Context, _ string, _ provider.UpdateProviderRequest) error {
	return nil
}

func (f *fakeProviderRepo) Delete(_ context.Context, _ string, _ string) error {
	return nil
}

type fakePayrollRepo struct {
	records map[string]domain.Record
}

func (f *fakePayrollRepo) CreateRecord(_ context.Context, record domain.Record) (domain.Record, error) {
	record.ID = uuid.NewString()
	f.records[record.ID] = record
	return record, nil
}

func (f *fakePayrollRepo) GetRecordByID(_ context.Context, id string, companyID string) (domain.Record, error) {
	record, ok := f.records[id]
	if !ok || record.CompanyID != companyID {
		return domain.Record{}, domain.ErrRecordNotFound
	}
	return record, nil
}

func (f *fakePayrollRepo) GetRecordByProviderPeriod(_ context.Context, providerID string, month, year int, companyID string) (domain.Record, error) {
	for _, record := range f.records {
		if record.ProviderID == providerID && record.PeriodMonth == month && record.PeriodYear == year && record.CompanyID == companyID {
			return record, nil
		}
	}
	return domain.Record{}, domain.ErrRecordNotFound
}

func (f *fakePayrollRepo) ListRecords(_ context.Context, companyID string, _ domain.Filter) ([]domain.Record, int64, error) {
	var out []domain.Record
	for _, record := range f.records {
		if record.CompanyID == companyID {
			out = append(out, record)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakePayrollRepo) UpdateRecord(_ context.Context, record domain.Record) error {
	if _, ok := f.records[record.ID]; !ok {
		return domain.ErrRecordNotFound
	}
	f.records[record.ID] = record
	return nil
}

func (f *fakePayrollRepo) FinalizeRecords(_ context.Context, ids []string, _ string, _ string) error {
	for _, id := range ids {
		record := f.records[id]
		record.Status = domain.StatusPaid
		f.records[id] = record
	}
	return nil
}

func (f *fakePayrollRepo) DeleteRecord(_ context.Context, id string, _ string) error {
	delete(f.records, id)
	return nil
}

func (f *fakePayrollRepo) GetSummary(_ context.Context, _ string, _, _ int) (domain.SummaryResponse, error) {
	return domain.SummaryResponse{}, nil
}

// ========== helpers ==========

const testCompanyID = "5f0f5f6e-0000-4000-8000-000000000001"

func authedContext(t *testing.T, companyID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("unit-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":    uuid.NewString(),
		"company_id": companyID,
		"type":       "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(t *testing.T) (*PayrollServiceImpl, *fakeProviderRepo, *fakePayrollRepo) {
	t.Helper()
	providerRepo := &fakeProviderRepo{providers: make(map[string]provider.Provider)}
	payrollRepo := &fakePayrollRepo{records: make(map[string]domain.Record)}
	svc := NewPayrollService(nil, payrollRepo, providerRepo, NewCalendarResolver(holiday.NewBrazilSource()))
	return svc.(*PayrollServiceImpl), providerRepo, payrollRepo
}

func seedProvider(repo *fakeProviderRepo) provider.Provider {
	p := provider.Provider{
		ID:                uuid.NewString(),
		CompanyID:         testCompanyID,
		Name:              "Maria Souza",
		MonthlyValue:      decimal.NewFromInt(3000),
		MonthlyHours:      decimal.NewFromInt(220),
		AdvancePercentage: decimal.NewFromInt(40),
		Active:            true,
	}
	repo.providers[p.ID] = p
	return p
}

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// ========== tests ==========

func TestPayrollService_Preview(t *testing.T) {
	svc, providerRepo, _ := newTestService(t)
	p := seedProvider(providerRepo)
	ctx := authedContext(t, testCompanyID)

	resp, err := svc.Preview(ctx, domain.PreviewRequest{
		ProviderID:  p.ID,
		PeriodMonth: 1,
		PeriodYear:  2026,
		PeriodInputsRequest: domain.PeriodInputsRequest{
			OvertimeHours: decPtr(decimal.NewFromInt(10)),
			LateMinutes:   decPtr(decimal.NewFromInt(60)),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, p.ID, resp.ProviderID)
	assert.Equal(t, 31, resp.Calendar.TotalDays)
	assert.True(t, resp.Breakdown.AdvanceAmount.Equal(decimal.NewFromInt(1200)))
	assert.InDelta(t, 13.636364, resp.Breakdown.HourlyRate.InexactFloat64(), 1e-6)
}

func TestPayrollService_Preview_AbsenceDaysConvertToHours(t *testing.T) {
	svc, providerRepo, _ := newTestService(t)
	p := seedProvider(providerRepo)
	ctx := authedContext(t, testCompanyID)

	absenceDays := 3
	resp, err := svc.Preview(ctx, domain.PreviewRequest{
		ProviderID:  p.ID,
		PeriodMonth: 1,
		PeriodYear:  2026,
		PeriodInputsRequest: domain.PeriodInputsRequest{
			AbsenceDays: &absenceDays,
		},
	})
	require.NoError(t, err)

	// 3 days at 220h/30d daily hours, priced at the hourly rate.
	expected := decimal.NewFromInt(220).
		Div(decimal.NewFromInt(30)).
		Mul(decimal.NewFromInt(3)).
		Mul(p.MonthlyValue.Div(p.MonthlyHours))
	assert.InDelta(t, expected.InexactFloat64(), resp.Breakdown.AbsenceDiscount.InexactFloat64(), 1e-9)
}

func TestPayrollService_Preview_UnknownProvider(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := authedContext(t, testCompanyID)

	_, err := svc.Preview(ctx, domain.PreviewRequest{
		ProviderID:  uuid.NewString(),
		PeriodMonth: 1,
		PeriodYear:  2026,
	})
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}

func TestPayrollService_Preview_NoClaims(t *testing.T) {
	svc, providerRepo, _ := newTestService(t)
	p := seedProvider(providerRepo)

	_, err := svc.Preview(context.Background(), domain.PreviewRequest{
		ProviderID:  p.ID,
		PeriodMonth: 1,
		PeriodYear:  2026,
	})
	assert.Error(t, err)
}

func TestPayrollService_CreateRecord_DuplicatePeriod(t *testing.T) {
	svc, providerRepo, _ := newTestService(t)
	p := seedProvider(providerRepo)
	ctx := authedContext(t, testCompanyID)

	req := domain.CreateRecordRequest{
		PreviewRequest: domain.PreviewRequest{
			ProviderID:  p.ID,
			PeriodMonth: 1,
			PeriodYear:  2026,
		},
	}

	first, err := svc.CreateRecord(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusDraft), first.Status)

	_, err = svc.CreateRecord(ctx, req)
	assert.ErrorIs(t, err, domain.ErrRecordAlreadyExists)
}

func TestPayrollService_CreateRecord_CrossCompanyIsolation(t *testing.T) {
	svc, providerRepo, _ := newTestService(t)
	p := seedProvider(providerRepo)
	otherCtx := authedContext(t, uuid.NewString())

	_, err := svc.CreateRecord(otherCtx, domain.CreateRecordRequest{
		PreviewRequest: domain.PreviewRequest{
			ProviderID:  p.ID,
			PeriodMonth: 1,
			PeriodYear:  2026,
		},
	})
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}

func TestPayrollService_UpdateRecord_RecomputesBreakdown(t *testing.T) {
	svc, providerRepo, _ := newTestService(t)
	p := seedProvider(providerRepo)
	ctx := authedContext(t, testCompanyID)

	created, err := svc.CreateRecord(ctx, domain.CreateRecordRequest{
		PreviewRequest: domain.PreviewRequest{
			ProviderID:  p.ID,
			PeriodMonth: 1,
			PeriodYear:  2026,
		},
	})
	require.NoError(t, err)
	assert.True(t, created.Breakdown.OvertimeAmount.IsZero())

	updated, err := svc.UpdateRecord(ctx, domain.UpdateRecordRequest{
		ID: created.ID,
		PeriodInputsRequest: domain.PeriodInputsRequest{
			OvertimeHours: decPtr(decimal.NewFromInt(10)),
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 204.545455, updated.Breakdown.OvertimeAmount.InexactFloat64(), 1e-6)
	assert.True(t, updated.Breakdown.DSRAmount.IsPositive())
}

func TestPayrollService_UpdateRecord_PaidIsImmutable(t *testing.T) {
	svc, providerRepo, payrollRepo := newTestService(t)
	p := seedProvider(providerRepo)
	ctx := authedContext(t, testCompanyID)

	created, err := svc.CreateRecord(ctx, domain.CreateRecordRequest{
		PreviewRequest: domain.PreviewRequest{
			ProviderID:  p.ID,
			PeriodMonth: 1,
			PeriodYear:  2026,
		},
	})
	require.NoError(t, err)

	record := payrollRepo.records[created.ID]
	record.Status = domain.StatusPaid
	payrollRepo.records[created.ID] = record

	_, err = svc.UpdateRecord(ctx, domain.UpdateRecordRequest{
		ID: created.ID,
		PeriodInputsRequest: domain.PeriodInputsRequest{
			OvertimeHours: decPtr(decimal.NewFromInt(5)),
		},
	})
	assert.ErrorIs(t, err, domain.ErrRecordAlreadyPaid)
}

func TestPayrollService_DeleteRecord_PaidIsProtected(t *testing.T) {
	svc, providerRepo, payrollRepo := newTestService(t)
	p := seedProvider(providerRepo)
	ctx := authedContext(t, testCompanyID)

	created, err := svc.CreateRecord(ctx, domain.CreateRecordRequest{
		PreviewRequest: domain.PreviewRequest{
			ProviderID:  p.ID,
			PeriodMonth: 1,
			PeriodYear:  2026,
		},
	})
	require.NoError(t, err)

	record := payrollRepo.records[created.ID]
	record.Status = domain.StatusPaid
	payrollRepo.records[created.ID] = record

	err = svc.DeleteRecord(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrCannotDeletePaid)

	record.Status = domain.StatusDraft
	payrollRepo.records[created.ID] = record

	require.NoError(t, svc.DeleteRecord(ctx, created.ID))
	_, err = svc.GetRecord(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestPayrollService_ResolveCalendar_InvalidPeriod(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ResolveCalendar(13, 2026)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
