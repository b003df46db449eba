package middleware

import (
	"context"
	"net/http"
)

// UserIDHeader carries the authenticated user's ID, injected by the API
// gateway in front of this service.
const UserIDHeader = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Auth rejects requests without a user identity and stores the user ID on
// the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserIDHeader)
		if userID == "" {
			http.Error(w, "missing user identity", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID extracts the authenticated user ID from the request context.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// RequireCronSecret guards internal endpoints behind a shared bearer
// secret. An empty configured secret disables the endpoint entirely.
func RequireCronSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				http.Error(w, "cron endpoint disabled", http.StatusForbidden)
				return
			}
			if r.Header.Get("Authorization") != "Bearer "+secret {
				http.Error(w, "invalid cron secret", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
