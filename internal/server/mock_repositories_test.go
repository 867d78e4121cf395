package server

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"notecards/internal/database/models"
	"notecards/internal/database/repositories"
	"notecards/internal/utils"

	"github.com/google/uuid"
)

type mockNoteRepository struct {
	mu    sync.Mutex
	notes map[uuid.UUID]models.Note
}

func newMockNoteRepository() *mockNoteRepository {
	return &mockNoteRepository{notes: make(map[uuid.UUID]models.Note)}
}

func (m *mockNoteRepository) Create(_ context.Context, note *models.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	note.ID = uuid.New()
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	m.notes[note.ID] = *note
	return nil
}

func (m *mockNoteRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	note, ok := m.notes[id]
	if !ok {
		return nil, fmt.Errorf("note %s: %w", id, repositories.ErrNotFound)
	}
	return &note, nil
}

func (m *mockNoteRepository) GetAll(context.Context) ([]models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	notes := make([]models.Note, 0, len(m.notes))
	for _, note := range m.notes {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].Title < notes[j].Title })
	return notes, nil
}

func (m *mockNoteRepository) Update(_ context.Context, note *models.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.notes[note.ID]
	if !ok {
		return fmt.Errorf("note %s: %w", note.ID, repositories.ErrNotFound)
	}
	note.CreatedAt = existing.CreatedAt
	note.UpdatedAt = time.Now()
	m.notes[note.ID] = *note
	return nil
}

func (m *mockNoteRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notes[id]; !ok {
		return fmt.Errorf("note %s: %w", id, repositories.ErrNotFound)
	}
	delete(m.notes, id)
	return nil
}

// stored reads a note directly, for assertions made while a server is live.
func (m *mockNoteRepository) stored(id uuid.UUID) (models.Note, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	note, ok := m.notes[id]
	return note, ok
}

func (m *mockNoteRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notes)
}

// SearchNotes does a case-insensitive substring match on titles.
func (m *mockNoteRepository) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	all, _ := m.GetAll(ctx)
	found := []models.Note{}
	for _, note := range all {
		if strings.Contains(strings.ToLower(note.Title), strings.ToLower(query)) {
			found = append(found, note)
		}
	}
	return found, nil
}

type mockFolderRepository struct {
	mu      sync.Mutex
	folders map[uuid.UUID]models.Folder
}

func newMockFolderRepository() *mockFolderRepository {
	return &mockFolderRepository{folders: make(map[uuid.UUID]models.Folder)}
}

func (m *mockFolderRepository) Create(_ context.Context, folder *models.Folder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	folder.ID = uuid.New()
	m.folders[folder.ID] = *folder
	return nil
}

func (m *mockFolderRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	folder, ok := m.folders[id]
	if !ok {
		return nil, fmt.Errorf("folder %s: %w", id, repositories.ErrNotFound)
	}
	return &folder, nil
}

func (m *mockFolderRepository) GetAll(context.Context) ([]models.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	folders := make([]models.Folder, 0, len(m.folders))
	for _, folder := range m.folders {
		folders = append(folders, folder)
	}
	return folders, nil
}

func (m *mockFolderRepository) Update(_ context.Context, folder *models.Folder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.folders[folder.ID]; !ok {
		return fmt.Errorf("folder %s: %w", folder.ID, repositories.ErrNotFound)
	}
	m.folders[folder.ID] = *folder
	return nil
}

func (m *mockFolderRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.folders[id]; !ok {
		return fmt.Errorf("folder %s: %w", id, repositories.ErrNotFound)
	}
	delete(m.folders, id)
	return nil
}

type mockUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uuid.UUID]models.User)}
}

func (m *mockUserRepository) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return fmt.Errorf("error creating user: %w", repositories.ErrConflict)
		}
	}
	user.ID = uuid.New()
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, repositories.ErrNotFound)
	}
	return &user, nil
}

func (m *mockUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, repositories.ErrNotFound)
}

func (m *mockUserRepository) GetAll(context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (m *mockUserRepository) Update(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.users[user.ID]
	if !ok {
		return fmt.Errorf("user %s: %w", user.ID, repositories.ErrNotFound)
	}
	existing.Username = user.Username
	existing.Email = user.Email
	m.users[user.ID] = existing
	return nil
}

func (m *mockUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id, repositories.ErrNotFound)
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepository) ResetPassword(_ context.Context, id uuid.UUID, oldPassword, newPassword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id, repositories.ErrNotFound)
	}
	if !utils.CheckPasswordHash(oldPassword, user.Password) {
		return repositories.ErrIncorrectPassword
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	m.users[id] = user
	return nil
}

type mockDatabase struct {
	status string
}

func (m mockDatabase) Health() map[string]string { return map[string]string{"status": m.status} }
func (m mockDatabase) DB() *sql.DB                { return nil }
func (m mockDatabase) Close() error               { return nil }
