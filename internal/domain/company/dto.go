package company

import "github.com/gestorpj/payroll-backend-go/internal/pkg/validator"

type CompanyResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	LegalName *string `json:"legal_name,omitempty"`
	CNPJ      *string `json:"cnpj,omitempty"`
	Address   *string `json:"address,omitempty"`
}

type UpdateCompanyRequest struct {
	Name      *string `json:"name,omitempty"`
	LegalName *string `json:"legal_name,omitempty"`
	CNPJ      *string `json:"cnpj,omitempty"`
	Address   *string `json:"address,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.CNPJ != nil && !validator.IsValidCNPJ(*r.CNPJ) {
		errs = append(errs, validator.ValidationError{Field: "cnpj", Message: "must be a valid CNPJ"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
