// internal/app/system/requestid/requestid.go

// Package requestid attaches a correlation id to every request so log
// lines from one operation can be tied together across the feature
// handlers and the roster engine.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey struct{}

// Header is the response header carrying the correlation id.
const Header = "X-Request-ID"

// Middleware assigns a fresh id to each request unless the caller already
// supplied one, stores it in the request context, and echoes it in the
// response headers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := context.WithValue(r.Context(), ctxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the request's correlation id, or "" when the
// middleware did not run.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
