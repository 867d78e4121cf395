package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"notecards/internal/database/models"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error)
	GetAll(ctx context.Context) ([]models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) NoteRepository {
	return &noteRepository{db: db}
}

const noteColumns = `id, title, body, folder_id, created_at, updated_at`

func scanNote(row scanner, note *models.Note) error {
	return row.Scan(&note.ID, &note.Title, &note.Body, &note.FolderID, &note.CreatedAt, &note.UpdatedAt)
}

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO notes (title, body, folder_id, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, note.Title, note.Body, note.FolderID).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating note: %w", err)
	}
	return nil
}

func (r *noteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	note := models.Note{}
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`
	err := scanNote(r.db.QueryRowContext(ctx, query, id), &note)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error getting note: %w", err)
	}
	return &note, nil
}

func (r *noteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes ORDER BY created_at`
	result, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying notes: %w", err)
	}
	defer result.Close()
	notes := []models.Note{}
	for result.Next() {
		var note models.Note
		if err := scanNote(result, &note); err != nil {
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		notes = append(notes, note)
	}
	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}
	return notes, nil
}

// Update overwrites title, body and folder and refreshes the timestamps on note.
func (r *noteRepository) Update(ctx context.Context, note *models.Note) error {
	query := `
		UPDATE notes
		SET title = $1, body = $2, folder_id = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, note.Title, note.Body, note.FolderID, note.ID).Scan(&note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("note %s: %w", note.ID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("error updating note: %w", err)
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM notes WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	return nil
}
