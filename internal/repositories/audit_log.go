package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-mailer/internal/logger"
	"github.com/sbilibin2017/gw-mailer/internal/models"
)

// AuditLogReadRepository reads the append-only audit trail.
type AuditLogReadRepository struct {
	db *sqlx.DB
}

func NewAuditLogReadRepository(db *sqlx.DB) *AuditLogReadRepository {
	return &AuditLogReadRepository{db: db}
}

// List returns the newest audit entries first, joined with the actor's
// current allow-list record when the actor still exists.
func (r *AuditLogReadRepository) List(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	const query = `
		SELECT l.audit_log_id, l.description, l.user_id, l.user_email, l.created_at,
		       a.email AS actor_email, a.role AS actor_role
		FROM audit_logs l
		LEFT JOIN authorized_users a ON a.user_id = l.user_id
		ORDER BY l.created_at DESC
		LIMIT $1
	`

	var entries []models.AuditLogEntry
	err := r.db.SelectContext(ctx, &entries, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return entries, nil
}

// AuditLogWriteRepository appends audit entries. Rows are never updated
// or deleted by the application.
type AuditLogWriteRepository struct {
	db *sqlx.DB
}

func NewAuditLogWriteRepository(db *sqlx.DB) *AuditLogWriteRepository {
	return &AuditLogWriteRepository{db: db}
}

// Save appends one audit entry.
func (r *AuditLogWriteRepository) Save(ctx context.Context, entry *models.AuditLogDB) error {
	const query = `
		INSERT INTO audit_logs (audit_log_id, description, user_id, user_email, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{entry.AuditLogID, entry.Description, entry.UserID, entry.UserEmail}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{entry.AuditLogID, entry.Description},
		"error", err,
	)

	return err
}
