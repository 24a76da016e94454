package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/chronoluxe/pkg/auth"
	"github.com/shashiranjanraj/chronoluxe/pkg/response"
)

// RequireAuth validates the bearer token and stores its claims in the
// request context for handlers to read via auth.ClaimsFromCtx.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token == r.Header.Get("Authorization") {
			response.Fail(w, http.StatusUnauthorized, "Missing bearer token")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Fail(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	})
}
