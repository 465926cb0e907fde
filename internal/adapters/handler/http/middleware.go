package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
)

type contextKey string

// UserKey holds the authenticated *domain.User in the request context.
const UserKey contextKey = "user"

const bearerPrefix = "Bearer "

// Authenticator returns a middleware that rejects the request unless the
// Authorization header carries a valid bearer token of the given kind. The
// subject is re-resolved against the user store on every request, so a token
// for a deleted user stops working immediately.
func Authenticator(tokens ports.TokenService, users ports.UserService, kind domain.TokenKind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				respondError(w, http.StatusUnauthorized, "missing or malformed authorization header")
				return
			}

			userID, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix), kind)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok
}
