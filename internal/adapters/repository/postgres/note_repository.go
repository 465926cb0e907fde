package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
)

type noteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) ports.NoteRepository {
	return &noteRepository{
		db: db,
	}
}

func (r *noteRepository) List(ctx context.Context, limit, offset int) ([]*domain.Note, error) {
	query := `
		SELECT id, user_id, text, created_at, updated_at
		FROM notes
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(&note.ID, &note.UserID, &note.Text, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}
	return notes, nil
}

func (r *noteRepository) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	query := `
		SELECT id, user_id, text, created_at, updated_at
		FROM notes
		WHERE id = $1
	`
	var note domain.Note
	err := r.db.QueryRowContext(ctx, query, id).Scan(&note.ID, &note.UserID, &note.Text, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return &note, nil
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) error {
	query := `
		INSERT INTO notes (user_id, text)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, note.UserID, note.Text).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// Update locks the row before the ownership check, so the check and the write
// happen in one transaction and a concurrent update cannot slip in between.
func (r *noteRepository) Update(ctx context.Context, id int64, text string, userID int64) (*domain.Note, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkOwnership(ctx, tx, id, userID); err != nil {
		return nil, err
	}

	query := `
		UPDATE notes SET text = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, user_id, text, created_at, updated_at
	`
	var note domain.Note
	err = tx.QueryRowContext(ctx, query, text, id).Scan(&note.ID, &note.UserID, &note.Text, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &note, nil
}

func (r *noteRepository) Delete(ctx context.Context, id int64, userID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkOwnership(ctx, tx, id, userID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func checkOwnership(ctx context.Context, tx *sql.Tx, id int64, userID int64) error {
	var ownerID sql.NullInt64
	err := tx.QueryRowContext(ctx, `SELECT user_id FROM notes WHERE id = $1 FOR UPDATE`, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNoteNotFound
		}
		return fmt.Errorf("failed to get note owner: %w", err)
	}
	if !ownerID.Valid || ownerID.Int64 != userID {
		return domain.ErrNotNoteOwner
	}
	return nil
}
