package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"notecards/internal/database/models"

	"github.com/google/uuid"
)

type FolderRepository interface {
	Create(ctx context.Context, folder *models.Folder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Folder, error)
	GetAll(ctx context.Context) ([]models.Folder, error)
	Update(ctx context.Context, folder *models.Folder) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type folderRepository struct {
	db *sql.DB
}

func NewFolderRepository(db *sql.DB) FolderRepository {
	return &folderRepository{db: db}
}

const folderColumns = `id, name, description, parent_folder_id, user_id, created_at, updated_at`

func scanFolder(row scanner, folder *models.Folder) error {
	return row.Scan(
		&folder.ID,
		&folder.Name,
		&folder.Description,
		&folder.ParentFolderID,
		&folder.UserID,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)
}

func (r *folderRepository) Create(ctx context.Context, folder *models.Folder) error {
	query := `
		INSERT INTO folders (name, description, parent_folder_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, folder.Name, folder.Description, folder.ParentFolderID, folder.UserID).
		Scan(&folder.ID, &folder.CreatedAt, &folder.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating folder: %w", err)
	}
	return nil
}

func (r *folderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Folder, error) {
	folder := models.Folder{}
	query := `SELECT ` + folderColumns + ` FROM folders WHERE id = $1`
	err := scanFolder(r.db.QueryRowContext(ctx, query, id), &folder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("folder %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error getting folder: %w", err)
	}
	return &folder, nil
}

func (r *folderRepository) GetAll(ctx context.Context) ([]models.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folders ORDER BY name`
	result, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying folders: %w", err)
	}
	defer result.Close()
	folders := []models.Folder{}
	for result.Next() {
		var folder models.Folder
		if err := scanFolder(result, &folder); err != nil {
			return nil, fmt.Errorf("error scanning folder: %w", err)
		}
		folders = append(folders, folder)
	}
	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("error iterating folders: %w", err)
	}
	return folders, nil
}

func (r *folderRepository) Update(ctx context.Context, folder *models.Folder) error {
	query := `
		UPDATE folders
		SET name = $1, description = $2, parent_folder_id = $3, user_id = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, folder.Name, folder.Description, folder.ParentFolderID, folder.UserID, folder.ID).
		Scan(&folder.CreatedAt, &folder.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("folder %s: %w", folder.ID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("error updating folder: %w", err)
	}
	return nil
}

func (r *folderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM folders WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting folder: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("folder %s: %w", id, ErrNotFound)
	}
	return nil
}
