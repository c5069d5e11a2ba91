package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey int

const clientIDKey contextKey = iota

const clientIDHeader = "X-Client-ID"

const maxClientIDLength = 64

// ClientID pulls the anonymous client-generated identifier off the request.
// Reporters are not authenticated; this identifier is what ties a missing
// report to the browser that filed it. Over-long identifiers are rejected
// outright: truncating would let two distinct ids sharing a prefix collide
// and act on each other's reports.
func ClientID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(clientIDHeader))
		if len(id) > maxClientIDLength {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":"invalid_request","message":"X-Client-ID must be at most 64 characters"}}`))
			return
		}
		if id != "" {
			r = r.WithContext(context.WithValue(r.Context(), clientIDKey, id))
		}
		next.ServeHTTP(w, r)
	})
}

func ClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientIDKey).(string)
	return id, ok && id != ""
}
