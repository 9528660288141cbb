package document

import (
	"strings"
	"time"

	dErrors "opendid/pkg/domain-errors"
)

// Status is the lifecycle state of a DID document.
// Invariant: status only moves forward along
// ACTIVE -> DEACTIVATED -> REVOKED -> TERMINATED, and TERMINATED is final.
type Status uint8

const (
	StatusActive Status = iota
	StatusDeactivated
	StatusRevoked
	StatusTerminated
)

var statusLabels = map[string]Status{
	"ACTIVE":      StatusActive,
	"DEACTIVATED": StatusDeactivated,
	"REVOKED":     StatusRevoked,
	"TERMINATED":  StatusTerminated,
}

// ParseStatus maps a label such as "DEACTIVATED" onto a Status.
// Labels are matched case-insensitively.
func ParseStatus(label string) (Status, error) {
	if s, ok := statusLabels[strings.ToUpper(strings.TrimSpace(label))]; ok {
		return s, nil
	}
	return 0, dErrors.New(dErrors.CodeInvalidInput, "unknown document status: "+label)
}

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusDeactivated:
		return "DEACTIVATED"
	case StatusRevoked:
		return "REVOKED"
	case StatusTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) IsValid() bool {
	return s <= StatusTerminated
}

// CanTransitionTo reports whether the status may move to next. Staying in
// the same non-terminal state is allowed so callers can record a new
// version or terminatedTime.
func (s Status) CanTransitionTo(next Status) bool {
	if !next.IsValid() || s == StatusTerminated {
		return false
	}
	return next >= s
}

// VerificationMethod is a key entry of a DID document. PublicKeyMultibase
// must decode through the multibase codec.
type VerificationMethod struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	Controller         string `json:"controller"`
	AuthType           int    `json:"authType"`
	PublicKeyMultibase string `json:"publicKeyMultibase"`
}

// ServiceEndpoint advertises a service reachable for the DID subject.
type ServiceEndpoint struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	ServiceEndpoint []string `json:"serviceEndpoint"`
}

// Document is a DID document. Deactivated is owned by the status state
// machine; values supplied by callers are ignored.
type Document struct {
	Context              []string             `json:"@context,omitempty"`
	ID                   string               `json:"id"`
	Controller           string               `json:"controller"`
	Created              string               `json:"created,omitempty"`
	Updated              string               `json:"updated,omitempty"`
	VersionID            string               `json:"versionId"`
	Deactivated          bool                 `json:"deactivated"`
	VerificationMethod   []VerificationMethod `json:"verificationMethod"`
	AssertionMethod      []string             `json:"assertionMethod,omitempty"`
	Authentication       []string             `json:"authentication,omitempty"`
	KeyAgreement         []string             `json:"keyAgreement,omitempty"`
	CapabilityInvocation []string             `json:"capabilityInvocation,omitempty"`
	CapabilityDelegation []string             `json:"capabilityDelegation,omitempty"`
	Service              []ServiceEndpoint    `json:"service,omitempty"`
}

// StatusRecord tracks lifecycle state per document id.
type StatusRecord struct {
	ID             string `json:"id"`
	Status         Status `json:"status"`
	Version        string `json:"version"`
	RoleType       string `json:"roleType"`
	TerminatedTime string `json:"terminatedTime"`
}

// Record is what lookups return: the document and its current status.
type Record struct {
	Document Document `json:"diddoc"`
	Status   Status   `json:"status"`
}

// Stored is the persisted unit: a document and its status travel together.
type Stored struct {
	Document  Document
	Status    StatusRecord
	Submitter string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanUpdate reports whether the document body may still be replaced.
func (s *Stored) CanUpdate() bool {
	return s.Status.Status != StatusTerminated
}

// ApplyUpdate replaces the document body and records the new version.
// Deactivated never reverts through an update.
func (s *Stored) ApplyUpdate(doc Document, versionID string, now time.Time) {
	doc.Deactivated = s.Document.Deactivated
	s.Document = doc
	s.Status.Version = versionID
	s.UpdatedAt = now
}

// CanApplyStatus reports whether the stored status may move to next.
func (s *Stored) CanApplyStatus(next Status) bool {
	return s.Status.Status.CanTransitionTo(next)
}

// ApplyStatus moves the status forward. Any state from DEACTIVATED on marks
// the document deactivated. Empty version and role fields keep their
// previous values; a supplied terminatedTime is recorded as given.
func (s *Stored) ApplyStatus(update StatusRecord, now time.Time) {
	s.Status.Status = update.Status
	if update.Version != "" {
		s.Status.Version = update.Version
	}
	if update.RoleType != "" {
		s.Status.RoleType = update.RoleType
	}
	if update.TerminatedTime != "" {
		s.Status.TerminatedTime = update.TerminatedTime
	}
	if update.Status >= StatusDeactivated {
		s.Document.Deactivated = true
	}
	s.UpdatedAt = now
}

// Record projects the stored unit for callers.
func (s *Stored) Record() Record {
	return Record{Document: s.Document, Status: s.Status.Status}
}
