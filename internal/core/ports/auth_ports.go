package ports

import (
	"context"

	"github.com/vncsmyrnk/notes/internal/core/domain"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
}

type TokenService interface {
	IssueAccess(userID int64) (string, error)
	IssueRefresh(userID int64) (string, error)
	Verify(token string, kind domain.TokenKind) (int64, error)
}
