package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-mailer/internal/logger"
	"github.com/sbilibin2017/gw-mailer/internal/models"
)

// EmailLogReadRepository reads the append-only delivery log.
type EmailLogReadRepository struct {
	db *sqlx.DB
}

func NewEmailLogReadRepository(db *sqlx.DB) *EmailLogReadRepository {
	return &EmailLogReadRepository{db: db}
}

// List returns the newest delivery records first.
func (r *EmailLogReadRepository) List(ctx context.Context, limit int) ([]models.EmailLogDB, error) {
	const query = `
		SELECT email_log_id, user_email, subject, body, has_attachment, created_at
		FROM email_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	var logs []models.EmailLogDB
	err := r.db.SelectContext(ctx, &logs, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(logs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return logs, nil
}

// ListByUserEmail returns the newest delivery records of one sender.
func (r *EmailLogReadRepository) ListByUserEmail(ctx context.Context, userEmail string, limit int) ([]models.EmailLogDB, error) {
	const query = `
		SELECT email_log_id, user_email, subject, body, has_attachment, created_at
		FROM email_logs
		WHERE user_email = LOWER($1)
		ORDER BY created_at DESC
		LIMIT $2
	`

	var logs []models.EmailLogDB
	err := r.db.SelectContext(ctx, &logs, query, userEmail, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userEmail, limit},
		"result", len(logs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return logs, nil
}

// EmailLogWriteRepository appends delivery records. Rows are never
// updated or deleted by the application.
type EmailLogWriteRepository struct {
	db *sqlx.DB
}

func NewEmailLogWriteRepository(db *sqlx.DB) *EmailLogWriteRepository {
	return &EmailLogWriteRepository{db: db}
}

// Save appends one delivery record.
func (r *EmailLogWriteRepository) Save(ctx context.Context, log *models.EmailLogDB) error {
	const query = `
		INSERT INTO email_logs (email_log_id, user_email, subject, body, has_attachment, created_at)
		VALUES ($1, LOWER($2), $3, $4, $5, NOW())
	`
	args := []any{log.EmailLogID, log.UserEmail, log.Subject, log.Body, log.HasAttachment}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{log.EmailLogID, log.UserEmail},
		"error", err,
	)

	return err
}
