package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/oviedoj/userbase-be/internal/api/envelope"
)

type contextKey string

const claimsContextKey = contextKey("authClaims")

// ClaimsFromContext returns the verified claims attached by Authenticate.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}

// Authenticate creates a middleware that requires a valid bearer token and
// threads the verified claims through the request context. A missing or
// malformed Authorization header rejects with 401; a token that fails
// verification rejects with 403.
func Authenticate(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				envelope.WriteError(w, http.StatusUnauthorized, "No token provided", nil)
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				envelope.WriteError(w, http.StatusForbidden, "Invalid or expired token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles creates a middleware that admits only requests whose verified
// claims carry one of the allowed roles. Membership is an exact,
// case-sensitive match. Must run after Authenticate.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				envelope.WriteError(w, http.StatusForbidden, "Access denied. Insufficient permissions.", nil)
				return
			}
			if _, ok := allowed[claims.Role]; !ok {
				envelope.WriteError(w, http.StatusForbidden, "Access denied. Insufficient permissions.", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
