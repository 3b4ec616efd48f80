package provider

import "errors"

var (
	ErrProviderNotFound = errors.New("provider not found")
	ErrDocumentExists   = errors.New("document already registered in this company")
)
