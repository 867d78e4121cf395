package dto

import "github.com/google/uuid"

type NoteInput struct {
	Title    string     `json:"title"`
	Body     *string    `json:"body"`
	FolderID *uuid.UUID `json:"folder_id"`
}

type FolderInput struct {
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	ParentFolderID *uuid.UUID `json:"parent_folder_id"`
	UserID         *uuid.UUID `json:"user_id"`
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type PasswordReset struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
