package zkp

import (
	"strings"

	dErrors "opendid/pkg/domain-errors"
)

// Outcome says why a lookup did or did not produce a record.
type Outcome uint8

const (
	OutcomeFound Outcome = iota
	OutcomeMissing
	OutcomeRemoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeMissing:
		return "missing"
	case OutcomeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	switch string(b) {
	case "found":
		*o = OutcomeFound
	case "missing":
		*o = OutcomeMissing
	case "removed":
		*o = OutcomeRemoved
	default:
		return dErrors.New(dErrors.CodeInvalidInput, "unknown lookup outcome: "+string(b))
	}
	return nil
}

// Lookup wraps a read that never fails on a miss. Record is the zero value
// (empty id) unless Outcome is OutcomeFound.
type Lookup[T any] struct {
	Record  T       `json:"record"`
	Outcome Outcome `json:"outcome"`
}

func Found[T any](record T) Lookup[T] {
	return Lookup[T]{Record: record, Outcome: OutcomeFound}
}

func Missing[T any]() Lookup[T] {
	return Lookup[T]{Outcome: OutcomeMissing}
}

func Removed[T any]() Lookup[T] {
	return Lookup[T]{Outcome: OutcomeRemoved}
}

// Schema is a ZKP credential schema.
type Schema struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	AttrNames []string `json:"attrNames"`
	Tag       string   `json:"tag"`
}

func (s Schema) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "schema id is required")
	}
	return nil
}

// Definition is a ZKP credential definition. SchemaID is not checked against
// registered schemas.
type Definition struct {
	ID       string `json:"id"`
	SchemaID string `json:"schemaId"`
	Type     string `json:"type"`
	Tag      string `json:"tag"`
	Value    string `json:"value"`
}

func (d Definition) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "credential definition id is required")
	}
	return nil
}
