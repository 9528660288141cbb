package handler

import (
	"opendid/internal/document"
	"opendid/internal/events"
	"opendid/pkg/domain"
)

type IDResponse struct {
	ID string `json:"id"`
}

type RoleResponse struct {
	Address domain.Address `json:"address"`
	Role    string         `json:"role"`
	Granted bool           `json:"granted"`
}

type RolesResponse struct {
	Address domain.Address `json:"address"`
	Roles   []domain.Role  `json:"roles"`
}

// StatusResponse carries the numeric status alongside its label.
type StatusResponse struct {
	document.StatusRecord
	Label string `json:"statusLabel"`
}

func FromStatusRecord(st document.StatusRecord) StatusResponse {
	return StatusResponse{StatusRecord: st, Label: st.Status.String()}
}

type EventsResponse struct {
	Events []events.Event `json:"events"`
}
