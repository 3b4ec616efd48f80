package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gestorpj/payroll-backend-go/internal/domain/payroll"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/database"
)

const recordColumns = `
	pr.id, pr.company_id, pr.provider_id, pr.period_month, pr.period_year,
	pr.monthly_value, pr.overtime_hours, pr.holiday_hours, pr.night_hours,
	pr.late_minutes, pr.absence_days, pr.absence_hours, pr.manual_discount,
	pr.total_days, pr.work_days, pr.saturdays, pr.sundays, pr.holidays, pr.rest_days,
	pr.hourly_rate, pr.overtime_amount, pr.holiday_amount, pr.night_amount,
	pr.dsr_amount, pr.total_additions, pr.late_discount, pr.absence_discount,
	pr.transport_discount, pr.total_discounts, pr.advance_amount, pr.net_value,
	pr.worked_days, pr.proportional_value,
	pr.status, pr.paid_at, pr.paid_by, pr.notes, pr.created_at, pr.updated_at,
	p.name AS provider_name
`

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.CompanyID, &rec.ProviderID, &rec.PeriodMonth, &rec.PeriodYear,
		&rec.MonthlyValue, &rec.OvertimeHours, &rec.HolidayHours, &rec.NightHours,
		&rec.LateMinutes, &rec.AbsenceDays, &rec.AbsenceHours, &rec.ManualDiscount,
		&rec.Calendar.TotalDays, &rec.Calendar.WorkDays, &rec.Calendar.Saturdays,
		&rec.Calendar.Sundays, &rec.Calendar.Holidays, &rec.Calendar.RestDays,
		&rec.Breakdown.HourlyRate, &rec.Breakdown.OvertimeAmount, &rec.Breakdown.HolidayAmount,
		&rec.Breakdown.NightAmount, &rec.Breakdown.DSRAmount, &rec.Breakdown.TotalAdditions,
		&rec.Breakdown.LateDiscount, &rec.Breakdown.AbsenceDiscount,
		&rec.Breakdown.TransportDiscount, &rec.Breakdown.TotalDiscounts,
		&rec.Breakdown.AdvanceAmount, &rec.Breakdown.NetValue,
		&rec.Breakdown.WorkedDays, &rec.Breakdown.ProportionalValue,
		&rec.Status, &rec.PaidAt, &rec.PaidBy, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.ProviderName,
	)
	if err != nil {
		return payroll.Record{}, err
	}
	rec.Calendar.Month = rec.PeriodMonth
	rec.Calendar.Year = rec.PeriodYear
	rec.Breakdown.ManualDiscount = rec.ManualDiscount
	return rec, nil
}

// CreateRecord implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateRecord(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO payroll_records (
				company_id, provider_id, period_month, period_year,
				monthly_value, overtime_hours, holiday_hours, night_hours,
				late_minutes, absence_days, absence_hours, manual_discount,
				total_days, work_days, saturdays, sundays, holidays, rest_days,
				hourly_rate, overtime_amount, holiday_amount, night_amount,
				dsr_amount, total_additions, late_discount, absence_discount,
				transport_discount, total_discounts, advance_amount, net_value,
				worked_days, proportional_value, status, notes
			)
			VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
				$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23,
				$24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34
			)
			RETURNING *
		)
		SELECT ` + recordColumns + `
		FROM inserted pr
		JOIN providers p ON pr.provider_id = p.id
	`

	created, err := scanRecord(q.QueryRow(ctx, query,
		record.CompanyID, record.ProviderID, record.PeriodMonth, record.PeriodYear,
		record.MonthlyValue, record.OvertimeHours, record.HolidayHours, record.NightHours,
		record.LateMinutes, record.AbsenceDays, record.AbsenceHours, record.ManualDiscount,
		record.Calendar.TotalDays, record.Calendar.WorkDays, record.Calendar.Saturdays,
		record.Calendar.Sundays, record.Calendar.Holidays, record.Calendar.RestDays,
		record.Breakdown.HourlyRate, record.Breakdown.OvertimeAmount, record.Breakdown.HolidayAmount,
		record.Breakdown.NightAmount, record.Breakdown.DSRAmount, record.Breakdown.TotalAdditions,
		record.Breakdown.LateDiscount, record.Breakdown.AbsenceDiscount,
		record.Breakdown.TransportDiscount, record.Breakdown.TotalDiscounts,
		record.Breakdown.AdvanceAmount, record.Breakdown.NetValue,
		record.Breakdown.WorkedDays, record.Breakdown.ProportionalValue,
		record.Status, record.Notes,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Record{}, payroll.ErrRecordAlreadyExists
		}
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return created, nil
}

// GetRecordByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetRecordByID(ctx context.Context, id string, companyID string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM payroll_records pr
		JOIN providers p ON pr.provider_id = p.id
		WHERE pr.id = $1 AND pr.company_id = $2
	`

	record, err := scanRecord(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, err
	}

	return record, nil
}

// GetRecordByProviderPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetRecordByProviderPeriod(ctx context.Context, providerID string, month, year int, companyID string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM payroll_records pr
		JOIN providers p ON pr.provider_id = p.id
		WHERE pr.provider_id = $1 AND pr.period_month = $2 AND pr.period_year = $3 AND pr.company_id = $4
	`

	record, err := scanRecord(q.QueryRow(ctx, query, providerID, month, year, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, err
	}

	return record, nil
}

// ListRecords implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListRecords(ctx context.Context, companyID string, filter payroll.Filter) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_records pr
		JOIN providers p ON pr.provider_id = p.id
		WHERE pr.company_id = $1
	`
	args := []interface{}{companyID}
	argIdx := 2

	if filter.PeriodMonth != nil {
		baseQuery += fmt.Sprintf(" AND pr.period_month = $%d", argIdx)
		args = append(args, *filter.PeriodMonth)
		argIdx++
	}
	if filter.PeriodYear != nil {
		baseQuery += fmt.Sprintf(" AND pr.period_year = $%d", argIdx)
		args = append(args, *filter.PeriodYear)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND pr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.ProviderID != nil {
		baseQuery += fmt.Sprintf(" AND pr.provider_id = $%d", argIdx)
		args = append(args, *filter.ProviderID)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s
		%s
		ORDER BY pr.period_year DESC, pr.period_month DESC, p.name ASC
		LIMIT $%d OFFSET $%d
	`, recordColumns, baseQuery, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, totalCount, nil
}

// UpdateRecord implements payroll.PayrollRepository. The whole recomputed
// record is persisted, inputs and derived amounts together.
func (r *payrollRepositoryImpl) UpdateRecord(ctx context.Context, record payroll.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records SET
			monthly_value = $1, overtime_hours = $2, holiday_hours = $3, night_hours = $4,
			late_minutes = $5, absence_days = $6, absence_hours = $7, manual_discount = $8,
			total_days = $9, work_days = $10, saturdays = $11, sundays = $12, holidays = $13, rest_days = $14,
			hourly_rate = $15, overtime_amount = $16, holiday_amount = $17, night_amount = $18,
			dsr_amount = $19, total_additions = $20, late_discount = $21, absence_discount = $22,
			transport_discount = $23, total_discounts = $24, advance_amount = $25, net_value = $26,
			worked_days = $27, proportional_value = $28, notes = $29, updated_at = NOW()
		WHERE id = $30 AND company_id = $31
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		record.MonthlyValue, record.OvertimeHours, record.HolidayHours, record.NightHours,
		record.LateMinutes, record.AbsenceDays, record.AbsenceHours, record.ManualDiscount,
		record.Calendar.TotalDays, record.Calendar.WorkDays, record.Calendar.Saturdays,
		record.Calendar.Sundays, record.Calendar.Holidays, record.Calendar.RestDays,
		record.Breakdown.HourlyRate, record.Breakdown.OvertimeAmount, record.Breakdown.HolidayAmount,
		record.Breakdown.NightAmount, record.Breakdown.DSRAmount, record.Breakdown.TotalAdditions,
		record.Breakdown.LateDiscount, record.Breakdown.AbsenceDiscount,
		record.Breakdown.TransportDiscount, record.Breakdown.TotalDiscounts,
		record.Breakdown.AdvanceAmount, record.Breakdown.NetValue,
		record.Breakdown.WorkedDays, record.Breakdown.ProportionalValue,
		record.Notes, record.ID, record.CompanyID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update payroll record with id %s: %w", record.ID, err)
	}
	return nil
}

// FinalizeRecords implements payroll.PayrollRepository. Only draft records
// transition; the caller verifies each one beforehand.
func (r *payrollRepositoryImpl) FinalizeRecords(ctx context.Context, ids []string, paidBy string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	var paidByArg *string
	if paidBy != "" {
		paidByArg = &paidBy
	}

	query := `
		UPDATE payroll_records
		SET status = 'paid', paid_at = NOW(), paid_by = $1, updated_at = NOW()
		WHERE id = ANY($2) AND company_id = $3 AND status = 'draft'
	`

	tag, err := q.Exec(ctx, query, paidByArg, ids, companyID)
	if err != nil {
		return fmt.Errorf("failed to finalize payroll records: %w", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return payroll.ErrRecordNotFound
	}
	return nil
}

// DeleteRecord implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteRecord(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_records WHERE id = $1 AND company_id = $2`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}
	return nil
}

// GetSummary implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetSummary(ctx context.Context, companyID string, month, year int) (payroll.SummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(DISTINCT provider_id),
			COALESCE(SUM(monthly_value), 0),
			COALESCE(SUM(total_additions), 0),
			COALESCE(SUM(total_discounts), 0),
			COALESCE(SUM(advance_amount), 0),
			COALESCE(SUM(net_value), 0),
			COUNT(*) FILTER (WHERE status = 'draft'),
			COUNT(*) FILTER (WHERE status = 'paid')
		FROM payroll_records
		WHERE company_id = $1 AND period_month = $2 AND period_year = $3
	`

	var summary payroll.SummaryResponse
	err := q.QueryRow(ctx, query, companyID, month, year).Scan(
		&summary.TotalProviders,
		&summary.TotalMonthly,
		&summary.TotalAdditions,
		&summary.TotalDiscounts,
		&summary.TotalAdvances,
		&summary.TotalNet,
		&summary.DraftCount,
		&summary.PaidCount,
	)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to load payroll summary: %w", err)
	}

	return summary, nil
}
