package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/headcheck/headcheck/internal/api/apierr"
	"github.com/headcheck/headcheck/internal/model"
	"github.com/headcheck/headcheck/internal/services/auth"
)

type contextKey string

const trainerContextKey contextKey = "trainer"

// TokenCookieName is the session cookie the browser client carries
const TokenCookieName = "token"

// Auth creates authentication middleware. It verifies the session token
// and binds the resolved trainer identity into the request context; a
// missing or invalid token terminates the request with a 401. Handlers
// below this middleware never see an anonymous request.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			trainer, err := authService.VerifySession(r.Context(), token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), trainerContextKey, trainer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the session token from the request
func extractToken(r *http.Request) string {
	// Check Authorization header first
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Fall back to cookie
	cookie, err := r.Cookie(TokenCookieName)
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetTrainer returns the authenticated trainer from the request context
func GetTrainer(ctx context.Context) *model.Trainer {
	trainer, _ := ctx.Value(trainerContextKey).(*model.Trainer)
	return trainer
}

// MustGetTrainer returns the authenticated trainer or panics
func MustGetTrainer(ctx context.Context) *model.Trainer {
	trainer := GetTrainer(ctx)
	if trainer == nil {
		panic("no trainer in context - auth middleware not applied?")
	}
	return trainer
}
