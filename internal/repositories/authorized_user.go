package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-mailer/internal/logger"
	"github.com/sbilibin2017/gw-mailer/internal/models"
)

// AuthorizedUserReadRepository reads the sender allow-list.
type AuthorizedUserReadRepository struct {
	db *sqlx.DB
}

func NewAuthorizedUserReadRepository(db *sqlx.DB) *AuthorizedUserReadRepository {
	return &AuthorizedUserReadRepository{db: db}
}

// GetByEmail returns the allow-list row for an email, or nil when absent.
// Lookup is case-insensitive: emails are stored lowercase.
func (r *AuthorizedUserReadRepository) GetByEmail(ctx context.Context, email string) (*models.AuthorizedUserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, must_change_password, role, created_at
		FROM authorized_users
		WHERE email = LOWER($1)
		LIMIT 1
	`

	var user models.AuthorizedUserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the allow-list row for an id, or nil when absent.
func (r *AuthorizedUserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AuthorizedUserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, must_change_password, role, created_at
		FROM authorized_users
		WHERE user_id = $1
		LIMIT 1
	`

	var user models.AuthorizedUserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns all allow-list rows ordered by email.
func (r *AuthorizedUserReadRepository) List(ctx context.Context) ([]models.AuthorizedUserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, must_change_password, role, created_at
		FROM authorized_users
		ORDER BY email
	`

	var users []models.AuthorizedUserDB
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// AuthorizedUserWriteRepository mutates the sender allow-list.
type AuthorizedUserWriteRepository struct {
	db *sqlx.DB
}

func NewAuthorizedUserWriteRepository(db *sqlx.DB) *AuthorizedUserWriteRepository {
	return &AuthorizedUserWriteRepository{db: db}
}

// Save inserts a new allow-list row. The email unique constraint is
// enforced by the store.
func (r *AuthorizedUserWriteRepository) Save(ctx context.Context, user *models.AuthorizedUserDB) error {
	const query = `
		INSERT INTO authorized_users (user_id, email, password_hash, must_change_password, role, created_at)
		VALUES ($1, LOWER($2), $3, $4, $5, NOW())
	`
	args := []any{user.UserID, user.Email, user.PasswordHash, user.MustChangePassword, user.Role}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.UserID, user.Email},
		"error", err,
	)

	return err
}

// UpdatePassword replaces the stored hash and must-change flag.
// Returns the number of affected rows.
func (r *AuthorizedUserWriteRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, mustChange bool) (int64, error) {
	const query = `
		UPDATE authorized_users
		SET password_hash = $2, must_change_password = $3
		WHERE user_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, passwordHash, mustChange)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, mustChange},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes an allow-list row. Returns the number of affected rows.
func (r *AuthorizedUserWriteRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM authorized_users
		WHERE user_id = $1
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
