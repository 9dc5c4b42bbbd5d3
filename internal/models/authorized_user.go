package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles assignable to authorized senders.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Statuses reported per email in a bulk create.
const (
	CreateStatusCreated   = "created"
	CreateStatusDuplicate = "duplicate"
)

// AuthorizedUserDB represents a row of the sender allow-list.
// The password hash never leaves the server.
type AuthorizedUserDB struct {
	UserID             uuid.UUID `json:"user_id" db:"user_id"`                           // Primary key
	Email              string    `json:"email" db:"email"`                               // Unique, stored lowercase
	PasswordHash       string    `json:"-" db:"password_hash"`                           // bcrypt hash
	MustChangePassword bool      `json:"must_change_password" db:"must_change_password"` // Temporary-credential flag
	Role               string    `json:"role" db:"role"`                                 // USER or ADMIN
	CreatedAt          time.Time `json:"created_at" db:"created_at"`                     // Creation timestamp
}

// CreateUserResult is the per-email outcome of a bulk create.
type CreateUserResult struct {
	Email  string `json:"email"`
	Status string `json:"status"` // created or duplicate
}
