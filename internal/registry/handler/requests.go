package handler

import (
	"strings"

	"opendid/internal/document"
	"opendid/internal/registry"
	"opendid/pkg/domain"
	dErrors "opendid/pkg/domain-errors"
)

// RegisterRoleRequest is the body of POST /v1/roles.
type RegisterRoleRequest struct {
	Target string `json:"target"`
	Role   string `json:"role"`

	parsedTarget domain.Address
}

func (r *RegisterRoleRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	target, err := domain.ParseAddress(strings.TrimSpace(r.Target))
	if err != nil {
		return err
	}
	r.parsedTarget = target
	if strings.TrimSpace(r.Role) == "" {
		return dErrors.New(dErrors.CodeValidation, "role is required")
	}
	return nil
}

// DidDocRequest is the body of POST /v1/dids: the document itself.
type DidDocRequest struct {
	document.Document
}

func (r *DidDocRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.ID) == "" {
		return dErrors.New(dErrors.CodeValidation, "id is required")
	}
	return nil
}

// UpdateDidDocRequest is the body of PUT /v1/dids/{id}.
type UpdateDidDocRequest struct {
	Document  document.Document `json:"document"`
	VersionID string            `json:"versionId"`
}

func (r *UpdateDidDocRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.VersionID) == "" {
		return dErrors.New(dErrors.CodeValidation, "versionId is required")
	}
	return nil
}

// StatusRequest is the body of POST /v1/dids/{id}/status.
type StatusRequest struct {
	Status    string `json:"status"`
	VersionID string `json:"versionId"`
}

func (r *StatusRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.Status) == "" {
		return dErrors.New(dErrors.CodeValidation, "status is required")
	}
	return nil
}

// RevocationRequest is the body of POST /v1/dids/{id}/revocation.
type RevocationRequest struct {
	Status         string `json:"status"`
	TerminatedTime string `json:"terminatedTime"`
}

func (r *RevocationRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.Status) == "" {
		return dErrors.New(dErrors.CodeValidation, "status is required")
	}
	if strings.TrimSpace(r.TerminatedTime) == "" {
		return dErrors.New(dErrors.CodeValidation, "terminatedTime is required")
	}
	return nil
}

// VcStatusRequest is the body of PUT /v1/vc-meta/{id}/status.
type VcStatusRequest struct {
	Status string `json:"status"`
}

func (r *VcStatusRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Status = strings.TrimSpace(r.Status)
	if r.Status == "" {
		return dErrors.New(dErrors.CodeValidation, "status is required")
	}
	return nil
}

// StorageRequest is the body of PUT /v1/admin/storage/{kind}.
type StorageRequest struct {
	Backend string `json:"backend"`

	parsedBackend registry.Backend
}

func (r *StorageRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	backend, err := registry.ParseBackend(strings.ToLower(strings.TrimSpace(r.Backend)))
	if err != nil {
		return err
	}
	r.parsedBackend = backend
	return nil
}
