package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/iho/fintrack/internal/infrastructure/auth"
)

// ContextKey is the type for context keys.
type ContextKey string

// UserIDContextKey carries the authenticated user's id.
const UserIDContextKey ContextKey = "userID"

// Auth verifies the bearer access token and stores the user's id in the
// request context.
func Auth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "missing authorization header")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "invalid authorization header format")
				return
			}

			claims, err := tokens.Verify(parts[1], auth.KindAccess)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDContextKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated user's id from context.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDContextKey).(string)
	return id, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
