package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-mailer/internal/logger"
	"github.com/sbilibin2017/gw-mailer/internal/models"
)

// TemplateReadRepository reads reusable email templates.
type TemplateReadRepository struct {
	db *sqlx.DB
}

func NewTemplateReadRepository(db *sqlx.DB) *TemplateReadRepository {
	return &TemplateReadRepository{db: db}
}

// List returns all templates ordered by name.
func (r *TemplateReadRepository) List(ctx context.Context) ([]models.TemplateDB, error) {
	const query = `
		SELECT template_id, name, subject, body, updated_at
		FROM templates
		ORDER BY name
	`

	var templates []models.TemplateDB
	err := r.db.SelectContext(ctx, &templates, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(templates),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return templates, nil
}

// TemplateWriteRepository mutates reusable email templates.
type TemplateWriteRepository struct {
	db *sqlx.DB
}

func NewTemplateWriteRepository(db *sqlx.DB) *TemplateWriteRepository {
	return &TemplateWriteRepository{db: db}
}

// Save inserts a new template.
func (r *TemplateWriteRepository) Save(ctx context.Context, template *models.TemplateDB) error {
	const query = `
		INSERT INTO templates (template_id, name, subject, body, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{template.TemplateID, template.Name, template.Subject, template.Body}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{template.TemplateID, template.Name},
		"error", err,
	)

	return err
}

// Update replaces name, subject and body of an existing template.
// Returns the number of affected rows.
func (r *TemplateWriteRepository) Update(ctx context.Context, id uuid.UUID, name string, subject *string, body string) (int64, error) {
	const query = `
		UPDATE templates
		SET name = $2, subject = $3, body = $4, updated_at = NOW()
		WHERE template_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, name, subject, body)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, name},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes a template. Returns the number of affected rows.
func (r *TemplateWriteRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM templates
		WHERE template_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
