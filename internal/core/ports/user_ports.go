package ports

import (
	"context"

	"github.com/vncsmyrnk/notes/internal/core/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
