package ports

import (
	"context"

	"github.com/vncsmyrnk/notes/internal/core/domain"
)

type NoteRepository interface {
	List(ctx context.Context, limit, offset int) ([]*domain.Note, error)
	GetByID(ctx context.Context, id int64) (*domain.Note, error)
	Create(ctx context.Context, note *domain.Note) error
	Update(ctx context.Context, id int64, text string, userID int64) (*domain.Note, error)
	Delete(ctx context.Context, id int64, userID int64) error
}

type ListNotesInput struct {
	Page    int
	PerPage int
}

type NoteService interface {
	List(ctx context.Context, input ListNotesInput) ([]*domain.Note, error)
	Get(ctx context.Context, id int64) (*domain.Note, error)
	Create(ctx context.Context, text string, ownerID int64) (*domain.Note, error)
	Update(ctx context.Context, id int64, text string, requesterID int64) (*domain.Note, error)
	Delete(ctx context.Context, id int64, requesterID int64) error
}
