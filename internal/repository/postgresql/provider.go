package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gestorpj/payroll-backend-go/internal/domain/provider"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/database"
)

const providerColumns = `
	id, company_id, name, document, email,
	monthly_value, monthly_hours, advance_percentage,
	transport_benefit_enabled, transport_fare_per_trip, trips_per_day,
	hired_date, active, created_at, updated_at
`

type providerRepositoryImpl struct {
	db *database.DB
}

func NewProviderRepository(db *database.DB) provider.ProviderRepository {
	return &providerRepositoryImpl{db: db}
}

func scanProvider(row pgx.Row) (provider.Provider, error) {
	var p provider.Provider
	err := row.Scan(
		&p.ID,
		&p.CompanyID,
		&p.Name,
		&p.Document,
		&p.Email,
		&p.MonthlyValue,
		&p.MonthlyHours,
		&p.AdvancePercentage,
		&p.TransportBenefitEnabled,
		&p.TransportFarePerTrip,
		&p.TripsPerDay,
		&p.HiredDate,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create implements provider.ProviderRepository.
func (r *providerRepositoryImpl) Create(ctx context.Context, newProvider provider.Provider) (provider.Provider, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO providers (
			company_id, name, document, email,
			monthly_value, monthly_hours, advance_percentage,
			transport_benefit_enabled, transport_fare_per_trip, trips_per_day,
			hired_date, active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + providerColumns

	created, err := scanProvider(q.QueryRow(ctx, query,
		newProvider.CompanyID,
		newProvider.Name,
		newProvider.Document,
		newProvider.Email,
		newProvider.MonthlyValue,
		newProvider.MonthlyHours,
		newProvider.AdvancePercentage,
		newProvider.TransportBenefitEnabled,
		newProvider.TransportFarePerTrip,
		newProvider.TripsPerDay,
		newProvider.HiredDate,
		newProvider.Active,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return provider.Provider{}, provider.ErrDocumentExists
		}
		return provider.Provider{}, err
	}

	return created, nil
}

// GetByID implements provider.ProviderRepository.
func (r *providerRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (provider.Provider, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + providerColumns + ` FROM providers WHERE id = $1 AND company_id = $2`

	found, err := scanProvider(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return provider.Provider{}, provider.ErrProviderNotFound
		}
		return provider.Provider{}, err
	}

	return found, nil
}

// ListByCompanyID implements provider.ProviderRepository.
func (r *providerRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string, activeOnly bool) ([]provider.Provider, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + providerColumns + ` FROM providers WHERE company_id = $1`
	if activeOnly {
		query += ` AND active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	providers := make([]provider.Provider, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return providers, nil
}

// Update implements provider.ProviderRepository.
func (r *providerRepositoryImpl) Update(ctx context.Context, companyID string, req provider.UpdateProviderRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Document != nil {
		updates["document"] = *req.Document
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.MonthlyValue != nil {
		updates["monthly_value"] = *req.MonthlyValue
	}
	if req.MonthlyHours != nil {
		updates["monthly_hours"] = *req.MonthlyHours
	}
	if req.AdvancePercentage != nil {
		updates["advance_percentage"] = *req.AdvancePercentage
	}
	if req.TransportBenefitEnabled != nil {
		updates["transport_benefit_enabled"] = *req.TransportBenefitEnabled
	}
	if req.TransportFarePerTrip != nil {
		updates["transport_fare_per_trip"] = *req.TransportFarePerTrip
	}
	if req.TripsPerDay != nil {
		updates["trips_per_day"] = *req.TripsPerDay
	}
	if req.HiredDate != nil {
		updates["hired_date"] = *req.HiredDate
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for provider update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE providers SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND company_id = $%d", i, i+1)
	args = append(args, req.ID, companyID)

	var updatedID string
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return provider.ErrProviderNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return provider.ErrDocumentExists
		}
		return fmt.Errorf("failed to update provider with id %s: %w", req.ID, err)
	}
	return nil
}

// Delete implements provider.ProviderRepository. Providers are soft-deleted
// so historical payroll records keep resolving.
func (r *providerRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE providers
		SET active = FALSE, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id, companyID).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return provider.ErrProviderNotFound
		}
		return err
	}
	return nil
}
