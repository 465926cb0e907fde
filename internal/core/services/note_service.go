package services

import (
	"context"

	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
)

const defaultPerPage = 20

type noteService struct {
	repo ports.NoteRepository
}

func NewNoteService(repo ports.NoteRepository) ports.NoteService {
	return &noteService{
		repo: repo,
	}
}

func (s *noteService) List(ctx context.Context, input ports.ListNotesInput) ([]*domain.Note, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}

	return s.repo.List(ctx, perPage, (page-1)*perPage)
}

func (s *noteService) Get(ctx context.Context, id int64) (*domain.Note, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *noteService) Create(ctx context.Context, text string, ownerID int64) (*domain.Note, error) {
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	note := &domain.Note{
		UserID: ownerID,
		Text:   text,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *noteService) Update(ctx context.Context, id int64, text string, requesterID int64) (*domain.Note, error) {
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	return s.repo.Update(ctx, id, text, requesterID)
}

func (s *noteService) Delete(ctx context.Context, id int64, requesterID int64) error {
	return s.repo.Delete(ctx, id, requesterID)
}
