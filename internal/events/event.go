// Package events records what the registry did. Every committed mutation
// produces an Event; events are appended to an ordered log and relayed to
// external sinks.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"opendid/pkg/domain"
)

// Category classifies events for routing and retention.
type Category string

const (
	// CategoryCompliance covers issuance and lifecycle of identity records.
	CategoryCompliance Category = "compliance"
	// CategorySecurity covers changes to who may do what.
	CategorySecurity Category = "security"
	// CategoryOperations covers store setup and housekeeping.
	CategoryOperations Category = "operations"
)

// Name identifies what happened.
type Name string

const (
	// Orchestrator events
	OpenDIDSetup         Name = "OpenDIDSetup"
	RoleGranted          Name = "RoleGranted"
	DIDCreated           Name = "DIDCreated"
	DIDUpdated           Name = "DIDUpdated"
	DIDStatusUpdated     Name = "DIDStatusUpdated"
	VCIssued             Name = "VCIssued"
	VCStatusUpdated      Name = "VCStatusUpdated"
	VCSchemaCreated      Name = "VCSchemaCreated"
	ZKPCredentialCreated Name = "ZKPCredentialCreated"
	ZKPCredentialRemoved Name = "ZKPCredentialRemoved"
	ZKPDefinitionCreated Name = "ZKPDefinitionCreated"
	ZKPDefinitionRemoved Name = "ZKPDefinitionRemoved"
	StorageSwapped       Name = "StorageSwapped"
	Upgraded             Name = "Upgraded"

	// Store events
	DocumentStorageSetup  Name = "DocumentStorageSetup"
	DocumentRegistered    Name = "DocumentRegistered"
	DocumentUpdated       Name = "DocumentUpdated"
	DocumentStatusUpdated Name = "DocumentStatusUpdated"
	DocumentRemoved       Name = "DocumentRemoved"
	VcMetaStorageSetup    Name = "VcMetaStorageSetup"
	VcMetaRegistered      Name = "VcMetaRegistered"
	VcSchemaRegistered    Name = "VcSchemaRegistered"
	ZKPStorageSetup       Name = "ZKPStorageSetup"
)

var categories = map[Name]Category{
	RoleGranted:    CategorySecurity,
	StorageSwapped: CategorySecurity,
	Upgraded:       CategorySecurity,

	DIDCreated:            CategoryCompliance,
	DIDUpdated:            CategoryCompliance,
	DIDStatusUpdated:      CategoryCompliance,
	DocumentRemoved:       CategoryCompliance,
	DocumentStatusUpdated: CategoryCompliance,
	VCIssued:              CategoryCompliance,
	VCStatusUpdated:       CategoryCompliance,
	VCSchemaCreated:       CategoryCompliance,
	ZKPCredentialCreated:  CategoryCompliance,
	ZKPDefinitionCreated:  CategoryCompliance,
}

// Category returns the category for n. Unknown names are operational.
func (n Name) Category() Category {
	if c, ok := categories[n]; ok {
		return c
	}
	return CategoryOperations
}

// Event is transport-agnostic so logs and sinks can fan out.
// Sequence is assigned by the log on append and reflects commit order.
type Event struct {
	ID         uuid.UUID         `json:"id"`
	Sequence   uint64            `json:"sequence"`
	Name       Name              `json:"name"`
	Category   Category          `json:"category"`
	Source     string            `json:"source"`
	Subject    string            `json:"subject,omitempty"`
	Actor      domain.Address    `json:"actor,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	RequestID  string            `json:"requestId,omitempty"`
	ClientIP   string            `json:"clientIp,omitempty"`
	UserAgent  string            `json:"userAgent,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// Emitter accepts events from stores and the orchestrator.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// Store is an ordered, append-only event log.
type Store interface {
	Append(ctx context.Context, event Event) (Event, error)
	ListRecent(ctx context.Context, limit int) ([]Event, error)
	Since(ctx context.Context, afterSeq uint64, limit int) ([]Event, error)
}

// Discard drops every event. Stores use it when no emitter is configured.
type Discard struct{}

func (Discard) Emit(context.Context, Event) error { return nil }
