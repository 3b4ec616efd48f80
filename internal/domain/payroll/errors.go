package payroll

import "errors"

var (
	// Engine errors
	ErrInvalidPeriod   = errors.New("invalid reference period")
	ErrInvalidContract = errors.New("invalid contract terms")
	ErrInvalidInputs   = errors.New("invalid period inputs")

	// Record errors
	ErrRecordNotFound      = errors.New("payroll record not found")
	ErrRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrRecordAlreadyPaid   = errors.New("payroll record already paid, cannot modify")
	ErrCannotDeletePaid    = errors.New("cannot delete paid payroll record")
	ErrProviderNotFound    = errors.New("provider not found")
)
