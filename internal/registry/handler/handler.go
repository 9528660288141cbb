// Package handler exposes the registry orchestrator over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"opendid/internal/credential"
	"opendid/internal/document"
	"opendid/internal/events"
	"opendid/internal/registry"
	"opendid/internal/zkp"
	"opendid/pkg/domain"
	dErrors "opendid/pkg/domain-errors"
	"opendid/pkg/platform/httputil"
	"opendid/pkg/requestcontext"
)

// Registry is the orchestrator surface the handler drives.
type Registry interface {
	RegisterRole(ctx context.Context, caller, target domain.Address, label string) error
	HasRole(ctx context.Context, target domain.Address, label string) (bool, error)
	Roles(ctx context.Context, target domain.Address) ([]domain.Role, error)

	RegisterDidDoc(ctx context.Context, caller domain.Address, doc document.Document) error
	UpdateDidDoc(ctx context.Context, caller domain.Address, doc document.Document, versionID string) error
	GetDidDoc(ctx context.Context, id string) (document.Record, error)
	GetDidDocStatus(ctx context.Context, id string) (document.StatusRecord, error)
	UpdateDidDocStatusInService(ctx context.Context, caller domain.Address, id, label, versionID string) error
	UpdateDidDocStatusRevocation(ctx context.Context, caller domain.Address, id, label, terminatedTime string) error
	RemoveDocument(ctx context.Context, caller domain.Address, id string) error

	RegistVcMetaData(ctx context.Context, caller domain.Address, meta credential.VcMeta) error
	GetVcMetaData(ctx context.Context, id string) (credential.VcMeta, error)
	UpdateVcMetaStatus(ctx context.Context, caller domain.Address, id, label string) error
	RegistVcSchema(ctx context.Context, caller domain.Address, schema credential.VcSchema) error
	GetVcSchema(ctx context.Context, id string) (credential.VcSchema, error)

	RegistZKPCredential(ctx context.Context, caller domain.Address, schema zkp.Schema) error
	GetZKPCredential(ctx context.Context, id string) (zkp.Lookup[zkp.Schema], error)
	RemoveZKPCredential(ctx context.Context, caller domain.Address, id string) error
	RegistZKPCredentialDefinition(ctx context.Context, caller domain.Address, def zkp.Definition) error
	GetZKPCredentialDefinition(ctx context.Context, id string) (zkp.Lookup[zkp.Definition], error)
	RemoveZKPCredentialDefinition(ctx context.Context, caller domain.Address, id string) error

	SetDocumentStorage(ctx context.Context, caller domain.Address, next registry.DocumentStore) error
	SetVcMetaStorage(ctx context.Context, caller domain.Address, next registry.CredentialStore) error
	SetZKPStorage(ctx context.Context, caller domain.Address, next registry.ZKPStore) error
	Upgrade(ctx context.Context, caller domain.Address, next registry.Policy) error
	Status() registry.Status
}

// StoreFactory builds fresh stores for the storage swap endpoint.
type StoreFactory interface {
	Documents(backend registry.Backend) (registry.DocumentStore, error)
	Credentials(backend registry.Backend) (registry.CredentialStore, error)
	ZKP(backend registry.Backend) (registry.ZKPStore, error)
}

// EventLister reads the event log.
type EventLister interface {
	List(ctx context.Context, limit int) ([]events.Event, error)
}

const defaultEventLimit = 100

type Handler struct {
	registry Registry
	stores   StoreFactory
	events   EventLister
	auth     func(http.Handler) http.Handler
	logger   *slog.Logger
}

// New builds a handler. auth guards every mutating route and must place
// the caller address on the request context.
func New(reg Registry, stores StoreFactory, lister EventLister, auth func(http.Handler) http.Handler, logger *slog.Logger) *Handler {
	return &Handler{
		registry: reg,
		stores:   stores,
		events:   lister,
		auth:     auth,
		logger:   logger,
	}
}

// Register mounts the /v1 routes. Reads are public.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/roles/{address}", h.HandleRoles)
		r.Get("/roles/{address}/{role}", h.HandleHasRole)
		r.Get("/dids/{id}", h.HandleGetDidDoc)
		r.Get("/dids/{id}/status", h.HandleGetDidDocStatus)
		r.Get("/vc-meta/{id}", h.HandleGetVcMeta)
		r.Get("/vc-schemas/{id}", h.HandleGetVcSchema)
		r.Get("/zkp/schemas/{id}", h.HandleGetZKPSchema)
		r.Get("/zkp/definitions/{id}", h.HandleGetZKPDefinition)
		r.Get("/admin/status", h.HandleStatus)
		r.Get("/events", h.HandleEvents)

		r.Group(func(r chi.Router) {
			if h.auth != nil {
				r.Use(h.auth)
			}
			r.Post("/roles", h.HandleRegisterRole)
			r.Post("/dids", h.HandleRegisterDidDoc)
			r.Put("/dids/{id}", h.HandleUpdateDidDoc)
			r.Post("/dids/{id}/status", h.HandleUpdateStatusInService)
			r.Post("/dids/{id}/revocation", h.HandleUpdateStatusRevocation)
			r.Delete("/dids/{id}", h.HandleRemoveDocument)
			r.Post("/vc-meta", h.HandleRegisterVcMeta)
			r.Put("/vc-meta/{id}/status", h.HandleUpdateVcMetaStatus)
			r.Post("/vc-schemas", h.HandleRegisterVcSchema)
			r.Post("/zkp/schemas", h.HandleRegisterZKPSchema)
			r.Delete("/zkp/schemas/{id}", h.HandleRemoveZKPSchema)
			r.Post("/zkp/definitions", h.HandleRegisterZKPDefinition)
			r.Delete("/zkp/definitions/{id}", h.HandleRemoveZKPDefinition)
			r.Put("/admin/storage/{kind}", h.HandleSetStorage)
			r.Put("/admin/policy", h.HandleUpgrade)
		})
	})
}

func (h *Handler) HandleRegisterRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[RegisterRoleRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.registry.RegisterRole(ctx, caller, req.parsedTarget, req.Role); err != nil {
		h.fail(w, ctx, "register role", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, RoleResponse{Address: req.parsedTarget, Role: req.Role, Granted: true})
}

func (h *Handler) HandleRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	addr, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	roles, err := h.registry.Roles(ctx, addr)
	if err != nil {
		h.fail(w, ctx, "list roles", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, RolesResponse{Address: addr, Roles: roles})
}

func (h *Handler) HandleHasRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	addr, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	role, ok := h.pathParam(w, r, "role")
	if !ok {
		return
	}
	granted, err := h.registry.HasRole(ctx, addr, role)
	if err != nil {
		h.fail(w, ctx, "check role", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, RoleResponse{Address: addr, Role: role, Granted: granted})
}

func (h *Handler) HandleRegisterDidDoc(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[DidDocRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.registry.RegisterDidDoc(ctx, caller, req.Document); err != nil {
		h.fail(w, ctx, "register did document", err)
		return
	}
	h.logger.InfoContext(ctx, "did document registered",
		"request_id", requestcontext.RequestID(ctx),
		"did", req.ID,
		"caller", caller,
	)
	httputil.WriteJSON(w, http.StatusCreated, IDResponse{ID: req.ID})
}

func (h *Handler) HandleUpdateDidDoc(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	id, ok := h.pathParam(w, r, "id")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateDidDocRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if req.Document.ID != id {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "document id does not match path"))
		return
	}
	if err := h.registry.UpdateDidDoc(ctx, caller, req.Document, req.VersionID); err != nil {
		h.fail(w, ctx, "update did document", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, IDResponse{ID: id})
}

func (h *Handler) HandleGetDidDoc(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathParam(w, r, "id")
	if !ok {
		return
	}
	rec, err := h.registry.GetDidDoc(ctx, id)
	if err != nil {
		h.fail(w, ctx, "get did document", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) HandleGetDidDocStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathParam(w, r, "id")
	if !ok {
		return
	}
	st, err := h.registry.GetDidDocStatus(ctx, id)
	if err != nil {
		h.fail(w, ctx, "get did document status", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromStatusRecord(st))
}

func (h *Handler) HandleUpdateStatusInService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	id, ok := h.pathParam(w, r, "id")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[StatusRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.registry.UpdateDidDocStatusInService(ctx, caller, id, req.Status, req.VersionID); err != nil {
		h.fail(w, ctx, "update did document status", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, IDResponse{ID: id})
}

func (h *Handler) HandleUpdateStatusRevocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	id, ok := h.pathParam(w, r, "id")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[RevocationRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.registry.UpdateDidDocStatusRevocation(ctx, caller, id, req.Status, req.TerminatedTime); err != nil {
		h.fail(w, ctx, "revoke did document", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, IDResponse{ID: id})
}

func (h *Handler) HandleRemoveDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	id, ok := h.pathParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.registry.RemoveDocument(ctx, caller, id); err != nil {
		h.fail(w, ctx, "remove did document", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleRegisterVcMeta(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[credential.VcMeta](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.registry.RegistVcMetaData(ctx, caller, *req); err != nil {
		h.fail(w, ctx, "register vc meta", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, IDResponse{ID: req.ID})
}

func (h *Handler) HandleGetVcMeta(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathParam(w, r, "id")
	if !ok {
		return
	}
	meta, err := h.registry.GetVcMetaData(ctx, id)
	if err != nil {
		h.fail(w, ctx, "get vc meta", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, meta)
}

func (h *Handler) HandleUpdateVcMetaStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	id, ok := h.pathParam(w, r, "id")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[VcStatusRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.registry.UpdateVcMetaStatus(ctx, caller, id, req.Status); err != nil {
		h.fail(w, ctx, "update vc meta status", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, IDResponse{ID: id})
}

func (h *Handler) HandleRegisterVcSchema(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[credential.VcSchema](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.registry.RegistVcSchema(ctx, caller, *req); err != nil {
		h.fail(w, ctx, "register vc schema", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, IDResponse{ID: req.ID})
}

func (h *Handler) HandleGetVcSchema(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathParam(w, r, "id")
	if !ok {
		return
	}
	schema, err := h.registry.GetVcSchema(ctx, id)
	if err != nil {
		h.fail(w, ctx, "get vc schema", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, schema)
}

func (h *Handler) HandleRegisterZKPSchema(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[zkp.Schema](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.registry.RegistZKPCredential(ctx, caller, *req); err != nil {
		h.fail(w, ctx, "register zkp schema", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, IDResponse{ID: req.ID})
}

// HandleGetZKPSchema answers 200 for every lookup; the outcome field tells
// a missing schema from a removed one.
func (h *Handler) HandleGetZKPSchema(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathParam(w, r, "id")
	if !ok {
		return
	}
	l, err := h.registry.GetZKPCredential(ctx, id)
	if err != nil {
		h.fail(w, ctx, "get zkp schema", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, l)
}

func (h *Handler) HandleRemoveZKPSchema(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	id, ok := h.pathParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.registry.RemoveZKPCredential(ctx, caller, id); err != nil {
		h.fail(w, ctx, "remove zkp schema", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleRegisterZKPDefinition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[zkp.Definition](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.registry.RegistZKPCredentialDefinition(ctx, caller, *req); err != nil {
		h.fail(w, ctx, "register zkp definition", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, IDResponse{ID: req.ID})
}

func (h *Handler) HandleGetZKPDefinition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathParam(w, r, "id")
	if !ok {
		return
	}
	l, err := h.registry.GetZKPCredentialDefinition(ctx, id)
	if err != nil {
		h.fail(w, ctx, "get zkp definition", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, l)
}

func (h *Handler) HandleRemoveZKPDefinition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	id, ok := h.pathParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.registry.RemoveZKPCredentialDefinition(ctx, caller, id); err != nil {
		h.fail(w, ctx, "remove zkp definition", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetStorage builds a fresh store on the requested backend and swaps
// it in for {kind}.
func (h *Handler) HandleSetStorage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	kind, err := registry.ParseStorageKind(chi.URLParam(r, "kind"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[StorageRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}

	switch kind {
	case registry.KindDocument:
		var next registry.DocumentStore
		if next, err = h.stores.Documents(req.parsedBackend); err == nil {
			err = h.registry.SetDocumentStorage(ctx, caller, next)
		}
	case registry.KindVcMeta:
		var next registry.CredentialStore
		if next, err = h.stores.Credentials(req.parsedBackend); err == nil {
			err = h.registry.SetVcMetaStorage(ctx, caller, next)
		}
	case registry.KindZKP:
		var next registry.ZKPStore
		if next, err = h.stores.ZKP(req.parsedBackend); err == nil {
			err = h.registry.SetZKPStorage(ctx, caller, next)
		}
	}
	if err != nil {
		h.fail(w, ctx, "swap storage", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.registry.Status())
}

func (h *Handler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.requireCaller(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[registry.Policy](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.registry.Upgrade(ctx, caller, *req); err != nil {
		h.fail(w, ctx, "upgrade policy", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.registry.Status())
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.registry.Status())
}

// HandleEvents lists recent events; ?limit= caps the count.
func (h *Handler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := defaultEventLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be a positive integer"))
			return
		}
		limit = n
	}
	list, err := h.events.List(ctx, limit)
	if err != nil {
		h.fail(w, ctx, "list events", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, EventsResponse{Events: list})
}

func (h *Handler) requireCaller(w http.ResponseWriter, ctx context.Context) (domain.Address, bool) {
	caller := requestcontext.Caller(ctx)
	if caller.IsZero() {
		httputil.WriteJSON(w, http.StatusUnauthorized, httputil.ErrorResponse{
			Error:            string(dErrors.CodeUnauthorized),
			ErrorDescription: "authentication required",
		})
		return "", false
	}
	return caller, true
}

func (h *Handler) pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v, err := url.PathUnescape(chi.URLParam(r, name))
	if err != nil || v == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid "+name+" in path"))
		return "", false
	}
	return v, true
}

func (h *Handler) fail(w http.ResponseWriter, ctx context.Context, action string, err error) {
	level := slog.LevelWarn
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, action+" failed",
		"request_id", requestcontext.RequestID(ctx),
		"caller", requestcontext.Caller(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}
