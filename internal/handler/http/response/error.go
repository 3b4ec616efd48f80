package response

import (
	"errors"
	"net/http"

	"github.com/gestorpj/payroll-backend-go/internal/domain/auth"
	"github.com/gestorpj/payroll-backend-go/internal/domain/company"
	"github.com/gestorpj/payroll-backend-go/internal/domain/payroll"
	"github.com/gestorpj/payroll-backend-go/internal/domain/provider"
	"github.com/gestorpj/payroll-backend-go/internal/domain/user"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Provider domain errors
	case errors.Is(err, provider.ErrProviderNotFound):
		NotFound(w, "Provider not found")
	case errors.Is(err, provider.ErrDocumentExists):
		Conflict(w, "Document already registered")

	// Payroll calculation errors are caller mistakes, never 500s
	case errors.Is(err, payroll.ErrInvalidPeriod),
		errors.Is(err, payroll.ErrInvalidContract),
		errors.Is(err, payroll.ErrInvalidInputs):
		BadRequest(w, err.Error(), nil)

	// Payroll record errors
	case errors.Is(err, payroll.ErrProviderNotFound):
		NotFound(w, "Provider not found")
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this provider and period")
	case errors.Is(err, payroll.ErrRecordAlreadyPaid):
		Conflict(w, "Payroll record already paid")
	case errors.Is(err, payroll.ErrCannotDeletePaid):
		Conflict(w, "Paid payroll records cannot be deleted")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
