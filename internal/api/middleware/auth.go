package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/notebuddy/notebuddy-backend/internal/service"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// Auth validates the bearer access token and confirms the subject still
// exists. Every failure mode gets the same 401 body so callers cannot tell
// a bad signature from a vanished user.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
				return
			}

			email, err := authService.ValidateAccessToken(parts[1])
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token validation failed: %v", err)
				http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
				return
			}

			user, err := authService.GetUserByEmail(r.Context(), email)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] subject lookup failed: %v", err)
				http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
