package models

import (
	"time"

	"github.com/google/uuid"
)

// TemplateDB represents a reusable (subject, body) pair.
// Subject is nullable: a blank subject is stored as NULL.
type TemplateDB struct {
	TemplateID uuid.UUID `json:"template_id" db:"template_id"` // Primary key
	Name       string    `json:"name" db:"name"`               // Display name
	Subject    *string   `json:"subject" db:"subject"`         // Optional subject
	Body       string    `json:"body" db:"body"`               // Plain-text body
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
