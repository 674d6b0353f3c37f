package session

import (
	"context"
	"net/http"
	"strings"

	"minisocial/internal/common"
)

type contextKey struct{}

// FromContext returns the session injected by Middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(contextKey{}).(*Session)
	return sess, ok
}

// Middleware resolves the Authorization bearer token and injects the
// session into the request context. Requests without a valid session are
// rejected; public routes are mounted outside this middleware.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			common.WriteError(w, common.ErrUnauthenticated)
			return
		}

		sess, err := m.Resolve(token)
		if err != nil {
			common.WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), contextKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}
