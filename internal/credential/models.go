package credential

import (
	"strings"

	dErrors "opendid/pkg/domain-errors"
)

type Issuer struct {
	DID  string `json:"did"`
	Name string `json:"name"`
}

type CredentialSchema struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// VcMeta describes an issued verifiable credential. Status is a free-form
// label such as "ACTIVE" or "revoked".
type VcMeta struct {
	ID               string           `json:"id"`
	Issuer           Issuer           `json:"issuer"`
	SubjectDID       string           `json:"subjectDid"`
	CredentialSchema CredentialSchema `json:"credentialSchema"`
	Status           string           `json:"status"`
	IssuanceDate     string           `json:"issuanceDate"`
	ExpirationDate   string           `json:"expirationDate"`
	FormatVersion    string           `json:"formatVersion"`
	Language         string           `json:"language"`
}

func (m VcMeta) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "vc meta id is required")
	}
	if strings.TrimSpace(m.Issuer.DID) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "issuer did is required")
	}
	return nil
}

// VcSchema is an opaque schema payload keyed by id.
type VcSchema struct {
	ID     string `json:"id"`
	Schema string `json:"schema"`
}

func (s VcSchema) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "vc schema id is required")
	}
	return nil
}
