package middleware

import (
	"net/http"

	"github.com/go-api-posts/internal/framework/usecase"
)

// RequireRole returns middleware that allows access only to requests whose JWT
// role matches one of the provided role names. It must run after Auth.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, usecase.NewUnauthorizedError("unauthorized"))
				return
			}
			for _, role := range allowedRoles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, http.StatusForbidden, usecase.NewUnauthorizedError("forbidden"))
		})
	}
}
