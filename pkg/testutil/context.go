package testutil

import (
	"context"
	"net/http"
	"time"

	"opendid/pkg/domain"
	"opendid/pkg/requestcontext"
)

// WithCaller adds a caller address to the request context.
// This simulates what the auth middleware does for authenticated requests.
// If caller is not a valid address, it will not be added to the context.
func WithCaller(req *http.Request, caller string) *http.Request {
	addr, err := domain.ParseAddress(caller)
	if err != nil {
		return req
	}
	return req.WithContext(requestcontext.WithCaller(req.Context(), addr))
}

// WithRequestTime pins the request clock, as the requesttime middleware does.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}

// WithContextValue adds an arbitrary key-value pair to the request context.
func WithContextValue(req *http.Request, key, value any) *http.Request {
	ctx := context.WithValue(req.Context(), key, value)
	return req.WithContext(ctx)
}
