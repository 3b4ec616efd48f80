package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/gestorpj/payroll-backend-go/internal/pkg/database"
)

// TestDatabaseSetup wraps the connection used by repository tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to the integration test database. Tests calling
// it are skipped when TEST_DATABASE_URL is not set.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration test")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	return &TestDatabaseSetup{DB: db}
}

// TruncateAllTables wipes test data between tests.
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tables := []string{
		"payroll_records",
		"refresh_tokens",
		"providers",
		"users",
		"companies",
	}
	for _, table := range tables {
		if _, err := s.DB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return err
		}
	}
	return nil
}

// CreateTestCompany inserts a company row and returns its id.
func (s *TestDatabaseSetup) CreateTestCompany(ctx context.Context, t *testing.T) string {
	t.Helper()

	var companyID string
	err := s.DB.QueryRow(ctx, `
		INSERT INTO companies (name)
		VALUES ('Test Company')
		RETURNING id
	`).Scan(&companyID)
	if err != nil {
		t.Fatalf("failed to create test company: %v", err)
	}
	return companyID
}
