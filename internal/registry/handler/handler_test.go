package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendid/internal/access"
	accessstore "opendid/internal/access/store"
	"opendid/internal/events"
	"opendid/internal/registry"
	"opendid/internal/zkp"
	"opendid/pkg/domain"
	"opendid/pkg/platform/httputil"
	"opendid/pkg/requestcontext"
	"opendid/pkg/testutil"
)

var (
	admin  = domain.MustParseAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	tas    = domain.MustParseAddress("0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359")
	issuer = domain.MustParseAddress("0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB")
)

// bearerCaller treats the bearer token as the caller address.
func bearerCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			httputil.WriteJSON(w, http.StatusUnauthorized, httputil.ErrorResponse{Error: "unauthorized"})
			return
		}
		ctx := requestcontext.WithCaller(r.Context(), domain.Address(token))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type testServer struct {
	router  http.Handler
	reg     *registry.Orchestrator
	handler *Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := events.NewPublisher(events.NewInMemoryLog())
	factory := registry.NewFactory(nil, publisher, logger)
	handles, err := factory.Handles(registry.BackendMemory)
	require.NoError(t, err)

	reg := registry.New(access.New(accessstore.NewInMemory(), access.WithEmitter(publisher)),
		registry.WithLogger(logger),
		registry.WithEmitter(publisher),
	)
	require.NoError(t, reg.Initialize(t.Context(), admin, handles))

	h := New(reg, factory, publisher, bearerCaller, logger)
	r := chi.NewRouter()
	h.Register(r)
	return &testServer{router: r, reg: reg, handler: h}
}

func (s *testServer) do(t *testing.T, method, path string, caller domain.Address, body any) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.NewJSONRequest(t, method, path, body)
	if caller != "" {
		req.Header.Set("Authorization", "Bearer "+string(caller))
	}
	return testutil.DoRequest(s.router, req)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	return *testutil.UnmarshalResponse[httputil.ErrorResponse](t, rec)
}

func didBody(id, version string) map[string]any {
	return map[string]any{
		"@context":   []string{"https://www.w3.org/ns/did/v1"},
		"id":         id,
		"controller": "did:omn:tas",
		"versionId":  version,
		"verificationMethod": []map[string]any{{
			"id":                 "assert",
			"type":               "Secp256k1VerificationKey2018",
			"controller":         "did:omn:tas",
			"authType":           1,
			"publicKeyMultibase": "zgTazoqFvne8S2mdZd6ZBbje",
		}},
	}
}

func (s *testServer) grant(t *testing.T, target domain.Address, role string) {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/v1/roles", admin, map[string]string{"target": string(target), "role": role})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestWriteRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodPost, "/v1/dids", "", didBody("did:omn:a", "1"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoles(t *testing.T) {
	s := newTestServer(t)
	s.grant(t, tas, "Tas")

	rec := s.do(t, http.MethodGet, "/v1/roles/"+string(tas)+"/Tas", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var has RoleResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&has))
	assert.True(t, has.Granted)

	rec = s.do(t, http.MethodGet, "/v1/roles/"+string(tas), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var roles RolesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&roles))
	assert.Equal(t, []domain.Role{domain.RoleTas}, roles.Roles)

	rec = s.do(t, http.MethodGet, "/v1/roles/not-an-address", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/roles", admin, map[string]string{"target": "0x0000000000000000000000000000000000000000", "role": "Tas"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDidDocumentLifecycle(t *testing.T) {
	s := newTestServer(t)
	s.grant(t, tas, "Tas")
	id := "did:omn:holder"
	escaped := "did%3Aomn%3Aholder"

	rec := s.do(t, http.MethodPost, "/v1/dids", issuer, didBody(id, "1"))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Caller does not have Tas role", decodeError(t, rec).ErrorDescription)

	rec = s.do(t, http.MethodGet, "/v1/dids/"+escaped, "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Document is not exist", decodeError(t, rec).ErrorDescription)

	rec = s.do(t, http.MethodPost, "/v1/dids", tas, didBody(id, "1"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/v1/dids", tas, didBody(id, "1"))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/dids/"+escaped, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Diddoc struct {
			ID string `json:"id"`
		} `json:"diddoc"`
		Status int `json:"status"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, id, got.Diddoc.ID)
	assert.Equal(t, 0, got.Status)

	rec = s.do(t, http.MethodPut, "/v1/dids/"+escaped, tas, map[string]any{"document": didBody(id, "2"), "versionId": "2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPut, "/v1/dids/"+escaped, tas, map[string]any{"document": didBody("did:omn:other", "2"), "versionId": "2"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/dids/"+escaped+"/status", tas, map[string]string{"status": "deactivated", "versionId": "2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/v1/dids/"+escaped+"/revocation", tas, map[string]string{"status": "ACTIVE", "terminatedTime": "2026-04-08T00:00:00Z"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/dids/"+escaped+"/revocation", tas, map[string]string{"status": "TERMINATED", "terminatedTime": "not-a-time"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/dids/"+escaped+"/revocation", tas, map[string]string{"status": "TERMINATED", "terminatedTime": "2026-04-08T00:00:00Z"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/v1/dids/"+escaped+"/status", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var st StatusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&st))
	assert.Equal(t, "TERMINATED", st.Label)
	assert.Equal(t, "2026-04-08T00:00:00Z", st.TerminatedTime)

	rec = s.do(t, http.MethodPost, "/v1/dids/"+escaped+"/status", tas, map[string]string{"status": "ACTIVE", "versionId": "3"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodDelete, "/v1/dids/"+escaped, tas, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = s.do(t, http.MethodDelete, "/v1/dids/"+escaped, admin, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCredentialRoutes(t *testing.T) {
	s := newTestServer(t)
	s.grant(t, issuer, "Issuer")

	meta := map[string]any{"id": "vc-1", "issuer": map[string]string{"did": "did:omn:issuer"}, "status": "ACTIVE"}
	rec := s.do(t, http.MethodPost, "/v1/vc-meta", issuer, meta)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/v1/vc-meta", issuer, map[string]any{"id": "vc-2"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPut, "/v1/vc-meta/vc-1/status", issuer, map[string]string{"status": "REVOKED"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/vc-meta/vc-1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "REVOKED", got.Status)

	rec = s.do(t, http.MethodPost, "/v1/vc-schemas", issuer, map[string]string{"id": "schema-1", "schema": "{}"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = s.do(t, http.MethodGet, "/v1/vc-schemas/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestZKPRoutes(t *testing.T) {
	s := newTestServer(t)
	s.grant(t, issuer, "Issuer")

	rec := s.do(t, http.MethodPost, "/v1/zkp/schemas", issuer, map[string]any{"id": "zs-1", "name": "mdl", "attrNames": []string{"name"}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = s.do(t, http.MethodDelete, "/v1/zkp/schemas/zs-1", issuer, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/zkp/schemas/zs-1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var l zkp.Lookup[zkp.Schema]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&l))
	assert.Equal(t, zkp.OutcomeRemoved, l.Outcome)

	rec = s.do(t, http.MethodPost, "/v1/zkp/definitions", issuer, map[string]any{"id": "def-1", "schemaId": "zs-1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = s.do(t, http.MethodGet, "/v1/zkp/definitions/nope", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var d zkp.Lookup[zkp.Definition]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&d))
	assert.Equal(t, zkp.OutcomeMissing, d.Outcome)
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	s.grant(t, tas, "Tas")
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/v1/dids", tas, didBody("did:omn:a", "1")).Code)

	rec := s.do(t, http.MethodPut, "/v1/admin/storage/document", tas, map[string]string{"backend": "memory"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPut, "/v1/admin/storage/blob", admin, map[string]string{"backend": "memory"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPut, "/v1/admin/storage/document", admin, map[string]string{"backend": "postgres"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = s.do(t, http.MethodPut, "/v1/admin/storage/document", admin, map[string]string{"backend": "memory"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var status registry.Status
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, uint64(2), status.Handles[0].Generation)

	rec = s.do(t, http.MethodGet, "/v1/dids/did:omn:a", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	next := registry.DefaultPolicy(true)
	next.Version = "2.0.0"
	rec = s.do(t, http.MethodPut, "/v1/admin/policy", tas, next)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, decodeError(t, rec).ErrorDescription, "AccessControlUnauthorizedAccount")

	rec = s.do(t, http.MethodPut, "/v1/admin/policy", admin, next)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/admin/status", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, "2.0.0", status.PolicyVersion)
	assert.True(t, status.Initialized)
}

func TestEvents(t *testing.T) {
	s := newTestServer(t)
	s.grant(t, tas, "Tas")

	rec := s.do(t, http.MethodGet, "/v1/events?limit=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp EventsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, events.RoleGranted, resp.Events[0].Name)

	rec = s.do(t, http.MethodGet, "/v1/events?limit=zero", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlersReadCallerFromContext(t *testing.T) {
	s := newTestServer(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/roles", map[string]string{"target": string(tas), "role": "Tas"})
	rec := testutil.DoRequest(http.HandlerFunc(s.handler.HandleRegisterRole), req)
	testutil.AssertStatusAndError(t, rec, http.StatusUnauthorized, "unauthorized")

	req = testutil.NewJSONRequest(t, http.MethodPost, "/v1/roles", map[string]string{"target": string(tas), "role": "Tas"})
	req = testutil.WithCaller(req, string(admin))
	rec = testutil.DoRequest(http.HandlerFunc(s.handler.HandleRegisterRole), req)
	testutil.AssertStatus(t, rec, http.StatusCreated)

	has, err := s.reg.HasRole(t.Context(), tas, "Tas")
	require.NoError(t, err)
	assert.True(t, has)
}
