package main

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opendid/internal/access"
	accessstore "opendid/internal/access/store"
	"opendid/internal/events"
	jwttoken "opendid/internal/jwt_token"
	"opendid/internal/platform/metrics"
	"opendid/internal/registry"
	"opendid/pkg/domain"
	"opendid/pkg/platform/httputil"
	"opendid/pkg/testutil"
)

var deployer = domain.MustParseAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")

func testRouter(t *testing.T) (http.Handler, *jwttoken.JWTService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	publisher := events.NewPublisher(events.NewInMemoryLog())
	factory := registry.NewFactory(nil, publisher, logger)
	handles, err := factory.Handles(registry.BackendMemory)
	require.NoError(t, err)

	orchestrator := registry.New(access.New(accessstore.NewInMemory(), access.WithEmitter(publisher)),
		registry.WithEmitter(publisher),
		registry.WithLogger(logger),
	)
	require.NoError(t, orchestrator.Initialize(t.Context(), deployer, handles))

	jwtService := jwttoken.NewJWTService("router-test-key", "opendid")
	return newRouter(routerDeps{
		registry:  orchestrator,
		stores:    factory,
		events:    publisher,
		validator: jwttoken.NewJWTServiceAdapter(jwtService),
		gatherer:  reg,
		metrics:   metrics.New(reg),
		ready: func(w http.ResponseWriter, _ *http.Request) {
			httputil.WriteJSON(w, http.StatusOK, map[string]string{})
		},
		requestTimeout: time.Second,
		logger:         logger,
	}), jwtService
}

func TestRouter(t *testing.T) {
	testutil.Given(t, "the assembled router", func(t *testing.T) {
		router, jwtService := testRouter(t)
		grant := map[string]string{"target": "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", "role": "Tas"}

		testutil.When(t, "probing health", func(t *testing.T) {
			rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))

			testutil.Then(t, "it responds ok with a request id", func(t *testing.T) {
				testutil.AssertStatus(t, rec, http.StatusOK)
				assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			})
		})

		testutil.When(t, "writing without a token", func(t *testing.T) {
			rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/roles", grant))

			testutil.Then(t, "it is unauthorized", func(t *testing.T) {
				testutil.AssertStatus(t, rec, http.StatusUnauthorized)
			})
		})

		testutil.When(t, "writing with the deployer's token", func(t *testing.T) {
			token, err := jwtService.GenerateAccessToken(deployer, time.Minute)
			require.NoError(t, err)
			req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/roles", grant)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := testutil.DoRequest(router, req)

			testutil.Then(t, "the role is granted", func(t *testing.T) {
				testutil.AssertStatus(t, rec, http.StatusCreated)
			})
		})

		testutil.When(t, "scraping metrics", func(t *testing.T) {
			rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/metrics", nil))

			testutil.Then(t, "request latency is exported", func(t *testing.T) {
				testutil.AssertStatus(t, rec, http.StatusOK)
				assert.True(t, strings.Contains(rec.Body.String(), "http_request_duration_seconds"))
			})
		})
	})
}
