// Package requestid propagates a correlation id through the request context
// and echoes it back to the caller.
package requestid

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"eudiwallet/pkg/requestcontext"
)

const Header = "X-Request-ID"

const maxLength = 128

// Middleware reuses a caller-supplied id when it is sane, otherwise mints one.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(Header))
		if id == "" || len(id) > maxLength {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(requestcontext.WithRequestID(r.Context(), id)))
	})
}
