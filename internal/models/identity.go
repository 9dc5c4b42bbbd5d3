package models

import "github.com/google/uuid"

// Identity is the session identity carried by the gateway token.
// Role is deliberately absent: privileges are always resolved against
// the authorized_users table, never trusted from the token.
type Identity struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
}
