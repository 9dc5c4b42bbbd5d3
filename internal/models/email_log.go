package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailLogDB is one append-only delivery record. Attachment bytes are
// never stored, only the fact that at least one attachment was sent.
type EmailLogDB struct {
	EmailLogID    uuid.UUID `json:"email_log_id" db:"email_log_id"`
	UserEmail     string    `json:"user_email" db:"user_email"`
	Subject       string    `json:"subject" db:"subject"`
	Body          string    `json:"body" db:"body"`
	HasAttachment bool      `json:"has_attachment" db:"has_attachment"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// SentEmailEvent is the payload published to Kafka after a successful
// dispatch. Publishing is best-effort and never fails the send.
type SentEmailEvent struct {
	EventID       string `json:"event_id"`
	Timestamp     int64  `json:"timestamp"`
	UserEmail     string `json:"user_email"`
	Subject       string `json:"subject"`
	Recipients    int    `json:"recipients"`
	HasAttachment bool   `json:"has_attachment"`
}
