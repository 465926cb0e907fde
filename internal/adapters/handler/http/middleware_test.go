package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/notes/internal/core/domain"
)

type stubTokens struct{}

func (stubTokens) IssueAccess(userID int64) (string, error)  { return "", nil }
func (stubTokens) IssueRefresh(userID int64) (string, error) { return "", nil }

// Verify accepts "valid-<kind>" tokens for user 7 and rejects everything else.
func (stubTokens) Verify(token string, kind domain.TokenKind) (int64, error) {
	if token != "valid-"+string(kind) {
		return 0, domain.ErrInvalidToken
	}
	return 7, nil
}

type stubUsers struct {
	user *domain.User
}

func (s stubUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}

func TestAuthenticator(t *testing.T) {
	knownUser := &domain.User{ID: 7, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}

	tests := []struct {
		name       string
		header     string
		kind       domain.TokenKind
		user       *domain.User
		wantStatus int
	}{
		{"missing header", "", domain.TokenKindAccess, knownUser, http.StatusUnauthorized},
		{"not a bearer token", "Token valid-access", domain.TokenKindAccess, knownUser, http.StatusUnauthorized},
		{"invalid token", "Bearer garbage", domain.TokenKindAccess, knownUser, http.StatusUnauthorized},
		{"refresh token on access route", "Bearer valid-refresh", domain.TokenKindAccess, knownUser, http.StatusUnauthorized},
		{"access token on refresh route", "Bearer valid-access", domain.TokenKindRefresh, knownUser, http.StatusUnauthorized},
		{"user no longer exists", "Bearer valid-access", domain.TokenKindAccess, nil, http.StatusUnauthorized},
		{"valid access token", "Bearer valid-access", domain.TokenKindAccess, knownUser, http.StatusOK},
		{"valid refresh token", "Bearer valid-refresh", domain.TokenKindRefresh, knownUser, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var handlerCalled bool
			var seenUser *domain.User

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				seenUser, _ = UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			mw := Authenticator(stubTokens{}, stubUsers{user: tt.user}, tt.kind)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			mw(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.True(t, handlerCalled)
				require.NotNil(t, seenUser)
				assert.Equal(t, int64(7), seenUser.ID)
			} else {
				assert.False(t, handlerCalled, "middleware must short-circuit before the handler")

				var payload errorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
				assert.NotEmpty(t, payload.Detail)
			}
		})
	}
}
