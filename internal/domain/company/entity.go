package company

import "time"

type Company struct {
	ID        string
	Name      string
	LegalName *string
	CNPJ      *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
