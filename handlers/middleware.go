package handlers

import (
	"context"
	"net/http"

	"mentrex/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// SessionCookieName is the HttpOnly cookie carrying the signed session token.
const SessionCookieName = "mentrex_session"

type contextKey string

const userIDKey contextKey = "userID"

// RequireAuth resolves the session cookie into a user id and stores it on
// the request context. Requests without a valid session get a 401.
func RequireAuth(sessions *services.SessionService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				writeErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			userID, err := sessions.ParseToken(cookie.Value)
			if err != nil {
				writeErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
