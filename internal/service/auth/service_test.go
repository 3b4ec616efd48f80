package auth

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpj/payroll-backend-go/internal/domain/auth"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/database"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/jwt"
	"github.com/gestorpj/payroll-backend-go/internal/repository/postgresql"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

func newAuthTestService(t *testing.T) (auth.AuthService, *database.DB) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration test")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)

	return NewAuthService(db, userRepo, companyRepo, jwtService, jwtRepo), db
}

func truncateAuthTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	for _, table := range []string{"refresh_tokens", "users", "companies"} {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func uniqueEmail() string {
	return fmt.Sprintf("owner-%d@example.com", time.Now().UnixNano())
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, db := newAuthTestService(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx, db)

	email := uniqueEmail()
	registered, err := svc.Register(ctx, auth.RegisterRequest{
		CompanyName: "Test Company",
		Name:        "Owner",
		Email:       email,
		Password:    "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)

	loggedIn, err := svc.Login(ctx, auth.LoginRequest{Email: email, Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, db := newAuthTestService(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx, db)

	email := uniqueEmail()
	_, err := svc.Register(ctx, auth.RegisterRequest{
		CompanyName: "Test Company",
		Name:        "Owner",
		Email:       email,
		Password:    "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: email, Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_RefreshRotatesToken(t *testing.T) {
	svc, db := newAuthTestService(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx, db)

	registered, err := svc.Register(ctx, auth.RegisterRequest{
		CompanyName: "Test Company",
		Name:        "Owner",
		Email:       uniqueEmail(),
		Password:    "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, auth.RefreshTokenRequest{RefreshToken: registered.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The old refresh token is revoked after rotation.
	_, err = svc.Refresh(ctx, auth.RefreshTokenRequest{RefreshToken: registered.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, db := newAuthTestService(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx, db)

	email := uniqueEmail()
	req := auth.RegisterRequest{
		CompanyName: "Test Company",
		Name:        "Owner",
		Email:       email,
		Password:    "password123",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.Error(t, err)
}
