package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"opendid/pkg/domain"
	"opendid/pkg/requestcontext"
)

type stubValidator map[string]domain.Address

func (s stubValidator) ValidateToken(token string) (*Claims, error) {
	if a, ok := s[token]; ok {
		return &Claims{Caller: a}, nil
	}
	return nil, errors.New("bad token")
}

func TestRequireAuth(t *testing.T) {
	caller := domain.MustParseAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	var seen domain.Address
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.Caller(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := RequireAuth(stubValidator{"good": caller}, slog.New(slog.NewTextHandler(io.Discard, nil)))(next)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"invalid token", "Bearer forged", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/dids", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
	assert.Equal(t, caller, seen)
}
