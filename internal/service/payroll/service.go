package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorpj/payroll-backend-go/internal/domain/payroll"
	"github.com/gestorpj/payroll-backend-go/internal/domain/provider"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/database"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/validator"
	"github.com/gestorpj/payroll-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	providerRepo provider.ProviderRepository
	calendar     *CalendarResolver
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	providerRepo provider.ProviderRepository,
	calendar *CalendarResolver,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		providerRepo: providerRepo,
		calendar:     calendar,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

// ========== CALENDAR ==========

func (s *PayrollServiceImpl) ResolveCalendar(month, year int) (payroll.CalendarResponse, error) {
	cal, err := s.calendar.Resolve(month, year)
	if err != nil {
		return payroll.CalendarResponse{}, err
	}
	return payroll.NewCalendarResponse(cal), nil
}

// ========== PREVIEW ==========

func (s *PayrollServiceImpl) Preview(ctx context.Context, req payroll.PreviewRequest) (payroll.PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PreviewResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PreviewResponse{}, err
	}

	prov, err := s.providerRepo.GetByID(ctx, req.ProviderID, companyID)
	if err != nil {
		if errors.Is(err, provider.ErrProviderNotFound) {
			return payroll.PreviewResponse{}, payroll.ErrProviderNotFound
		}
		return payroll.PreviewResponse{}, err
	}

	cal, breakdown, err := s.compute(prov, req.PeriodMonth, req.PeriodYear, req.PeriodInputsRequest)
	if err != nil {
		return payroll.PreviewResponse{}, err
	}

	return payroll.PreviewResponse{
		ProviderID:   prov.ID,
		PeriodMonth:  req.PeriodMonth,
		PeriodYear:   req.PeriodYear,
		MonthlyValue: prov.MonthlyValue,
		Calendar:     payroll.NewCalendarResponse(cal),
		Breakdown:    payroll.NewBreakdownResponse(breakdown),
	}, nil
}

// compute resolves the month calendar and runs the calculation engine for
// one provider. Absence days are converted to hours with the monthly divisor
// before they enter the absence discount; the day count itself still drives
// the transport discount.
func (s *PayrollServiceImpl) compute(prov provider.Provider, month, year int, req payroll.PeriodInputsRequest) (payroll.CalendarAggregate, payroll.Breakdown, error) {
	cal, err := s.calendar.Resolve(month, year)
	if err != nil {
		return payroll.CalendarAggregate{}, payroll.Breakdown{}, err
	}

	inputs := buildPeriodInputs(month, year, prov, req)

	breakdown, err := Compute(prov.ContractTerms(), inputs, cal)
	if err != nil {
		return payroll.CalendarAggregate{}, payroll.Breakdown{}, err
	}

	return cal, breakdown, nil
}

func buildPeriodInputs(month, year int, prov provider.Provider, req payroll.PeriodInputsRequest) payroll.PeriodInputs {
	inputs := payroll.PeriodInputs{
		Month:          month,
		Year:           year,
		HiredDate:      prov.HiredDate,
		OvertimeHours:  valueOrZero(req.OvertimeHours),
		HolidayHours:   valueOrZero(req.HolidayHours),
		NightHours:     valueOrZero(req.NightHours),
		LateMinutes:    valueOrZero(req.LateMinutes),
		AbsenceHours:   valueOrZero(req.AbsenceHours),
		ManualDiscount: valueOrZero(req.ManualDiscount),
	}
	if req.AbsenceDays != nil {
		inputs.AbsenceDays = *req.AbsenceDays
		inputs.AbsenceHours = inputs.AbsenceHours.Add(AbsenceDaysToHours(prov.MonthlyHours, *req.AbsenceDays))
	}
	return inputs
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// ========== RECORDS ==========

func (s *PayrollServiceImpl) CreateRecord(ctx context.Context, req payroll.CreateRecordRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	prov, err := s.providerRepo.GetByID(ctx, req.ProviderID, companyID)
	if err != nil {
		if errors.Is(err, provider.ErrProviderNotFound) {
			return payroll.RecordResponse{}, payroll.ErrProviderNotFound
		}
		return payroll.RecordResponse{}, err
	}

	// One record per provider per period.
	_, err = s.payrollRepo.GetRecordByProviderPeriod(ctx, req.ProviderID, req.PeriodMonth, req.PeriodYear, companyID)
	if err == nil {
		return payroll.RecordResponse{}, payroll.ErrRecordAlreadyExists
	}
	if !errors.Is(err, payroll.ErrRecordNotFound) {
		return payroll.RecordResponse{}, err
	}

	cal, breakdown, err := s.compute(prov, req.PeriodMonth, req.PeriodYear, req.PeriodInputsRequest)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	record := payroll.Record{
		CompanyID:      companyID,
		ProviderID:     prov.ID,
		PeriodMonth:    req.PeriodMonth,
		PeriodYear:     req.PeriodYear,
		MonthlyValue:   prov.MonthlyValue,
		OvertimeHours:  valueOrZero(req.OvertimeHours),
		HolidayHours:   valueOrZero(req.HolidayHours),
		NightHours:     valueOrZero(req.NightHours),
		LateMinutes:    valueOrZero(req.LateMinutes),
		AbsenceHours:   valueOrZero(req.AbsenceHours),
		ManualDiscount: valueOrZero(req.ManualDiscount),
		Calendar:       cal,
		Breakdown:      breakdown,
		Status:         payroll.StatusDraft,
		Notes:          req.Notes,
	}
	if req.AbsenceDays != nil {
		record.AbsenceDays = *req.AbsenceDays
	}

	created, err := s.payrollRepo.CreateRecord(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	created.ProviderName = &prov.Name

	return toRecordResponse(created), nil
}

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	record, err := s.payrollRepo.GetRecordByID(ctx, id, companyID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return toRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.Filter) (payroll.ListRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListRecordResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := s.payrollRepo.ListRecords(ctx, companyID, filter)
	if err != nil {
		return payroll.ListRecordResponse{}, err
	}

	data := make([]payroll.RecordResponse, 0, len(records))
	for _, record := range records {
		data = append(data, toRecordResponse(record))
	}

	return payroll.ListRecordResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) UpdateRecord(ctx context.Context, req payroll.UpdateRecordRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	record, err := s.payrollRepo.GetRecordByID(ctx, req.ID, companyID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	if record.Status == payroll.StatusPaid {
		return payroll.RecordResponse{}, payroll.ErrRecordAlreadyPaid
	}

	applyInputUpdates(&record, req)

	prov, err := s.providerRepo.GetByID(ctx, record.ProviderID, companyID)
	if err != nil {
		if errors.Is(err, provider.ErrProviderNotFound) {
			return payroll.RecordResponse{}, payroll.ErrProviderNotFound
		}
		return payroll.RecordResponse{}, err
	}

	// Recompute from the stored inputs so the persisted breakdown never
	// drifts from them.
	cal, breakdown, err := s.compute(prov, record.PeriodMonth, record.PeriodYear, recordInputs(record))
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	record.MonthlyValue = prov.MonthlyValue
	record.Calendar = cal
	record.Breakdown = breakdown

	if err := s.payrollRepo.UpdateRecord(ctx, record); err != nil {
		return payroll.RecordResponse{}, err
	}
	record.ProviderName = &prov.Name

	return toRecordResponse(record), nil
}

func applyInputUpdates(record *payroll.Record, req payroll.UpdateRecordRequest) {
	if req.OvertimeHours != nil {
		record.OvertimeHours = *req.OvertimeHours
	}
	if req.HolidayHours != nil {
		record.HolidayHours = *req.HolidayHours
	}
	if req.NightHours != nil {
		record.NightHours = *req.NightHours
	}
	if req.LateMinutes != nil {
		record.LateMinutes = *req.LateMinutes
	}
	if req.AbsenceDays != nil {
		record.AbsenceDays = *req.AbsenceDays
	}
	if req.AbsenceHours != nil {
		record.AbsenceHours = *req.AbsenceHours
	}
	if req.ManualDiscount != nil {
		record.ManualDiscount = *req.ManualDiscount
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}
}

// recordInputs rebuilds the request-shaped inputs from a stored record.
func recordInputs(record payroll.Record) payroll.PeriodInputsRequest {
	absenceDays := record.AbsenceDays
	return payroll.PeriodInputsRequest{
		OvertimeHours:  &record.OvertimeHours,
		HolidayHours:   &record.HolidayHours,
		NightHours:     &record.NightHours,
		LateMinutes:    &record.LateMinutes,
		AbsenceDays:    &absenceDays,
		AbsenceHours:   &record.AbsenceHours,
		ManualDiscount: &record.ManualDiscount,
	}
}

func (s *PayrollServiceImpl) Finalize(ctx context.Context, req payroll.FinalizeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, id := range req.RecordIDs {
			record, err := s.payrollRepo.GetRecordByID(txCtx, id, companyID)
			if err != nil {
				return err
			}
			if record.Status == payroll.StatusPaid {
				return payroll.ErrRecordAlreadyPaid
			}
		}
		return s.payrollRepo.FinalizeRecords(txCtx, req.RecordIDs, userID, companyID)
	})
}

func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	record, err := s.payrollRepo.GetRecordByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if record.Status == payroll.StatusPaid {
		return payroll.ErrCannotDeletePaid
	}

	return s.payrollRepo.DeleteRecord(ctx, id, companyID)
}

func (s *PayrollServiceImpl) GetSummary(ctx context.Context, month, year int) (payroll.SummaryResponse, error) {
	if !validator.IsValidMonth(month) || !validator.IsValidYear(year) {
		return payroll.SummaryResponse{}, fmt.Errorf("%w: invalid reference period %d/%d", payroll.ErrInvalidPeriod, month, year)
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	summary, err := s.payrollRepo.GetSummary(ctx, companyID, month, year)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}
	summary.PeriodMonth = month
	summary.PeriodYear = year

	return summary, nil
}

func toRecordResponse(record payroll.Record) payroll.RecordResponse {
	resp := payroll.RecordResponse{
		ID:           record.ID,
		ProviderID:   record.ProviderID,
		PeriodMonth:  record.PeriodMonth,
		PeriodYear:   record.PeriodYear,
		MonthlyValue: record.MonthlyValue,
		Calendar:     payroll.NewCalendarResponse(record.Calendar),
		Breakdown:    payroll.NewBreakdownResponse(record.Breakdown),
		Status:       string(record.Status),
		Notes:        record.Notes,
	}
	if record.ProviderName != nil {
		resp.ProviderName = *record.ProviderName
	}
	if record.PaidAt != nil {
		paidAt := record.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}
