// Package requesttime stamps each request with one "now" so every catalog
// decision made while serving it (expiry filters, audit timestamps) agrees.
package requesttime

import (
	"net/http"
	"time"

	"eudiwallet/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return middleware(time.Now)(next)
}

func middleware(now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithTime(r.Context(), now())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
