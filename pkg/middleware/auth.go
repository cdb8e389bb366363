package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/stockmate/stockmate-api/internal/usecases/authenticating"
	"github.com/stockmate/stockmate-api/pkg/apiErrors"
)

type contextKey string

const (
	// ContextKeyService holds the validated service claims.
	ContextKeyService contextKey = "service"
)

// AuthMiddleware validates internal service tokens on every request.
// The healthcheck stays open so probes do not need credentials. When
// enabled is false the middleware is a pass-through, matching deployments
// where the internal API is only reachable from the private network.
func AuthMiddleware(authService authenticating.ServiceAuthenticator, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled || r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyService, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
