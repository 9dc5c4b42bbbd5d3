package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogDB is one append-only record of an administrative action.
// Actor fields are nullable: the acting user may have been removed.
type AuditLogDB struct {
	AuditLogID  uuid.UUID  `json:"audit_log_id" db:"audit_log_id"`
	Description string     `json:"description" db:"description"`
	UserID      *uuid.UUID `json:"user_id" db:"user_id"`
	UserEmail   *string    `json:"user_email" db:"user_email"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// AuditLogEntry is an audit row joined with the actor's current
// allow-list record, when the actor still exists.
type AuditLogEntry struct {
	AuditLogDB
	ActorEmail *string `json:"actor_email" db:"actor_email"`
	ActorRole  *string `json:"actor_role" db:"actor_role"`
}
