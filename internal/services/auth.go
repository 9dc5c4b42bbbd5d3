package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-mailer/internal/logger"
	"github.com/sbilibin2017/gw-mailer/internal/models"
)

// Error variables
var (
	ErrForbidden = errors.New("not authorized to use this tool")
)

// UserReader defines read-only operations over the sender allow-list.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.AuthorizedUserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.AuthorizedUserDB, error)
	List(ctx context.Context) ([]models.AuthorizedUserDB, error)
}

// AuthService resolves what a session identity is allowed to do.
// Role is always re-read from the allow-list table: a stale session
// token cannot keep admin privileges the table no longer grants.
type AuthService struct {
	users UserReader
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserReader) *AuthService {
	return &AuthService{users: users}
}

// RequireAuthorizedUser returns the allow-list record matching the
// session email, or ErrForbidden when the caller is not on the list.
func (svc *AuthService) RequireAuthorizedUser(ctx context.Context, identity models.Identity) (*models.AuthorizedUserDB, error) {
	if identity.Email == "" {
		logger.Log.Errorw("session identity has no email")
		return nil, ErrForbidden
	}

	record, err := svc.users.GetByEmail(ctx, identity.Email)
	if err != nil {
		logger.Log.Errorw("failed to look up authorized user", "email", identity.Email, "err", err)
		return nil, err
	}
	if record == nil {
		logger.Log.Errorw("caller is not on the allow-list", "email", identity.Email)
		return nil, ErrForbidden
	}

	return record, nil
}

// RequireAdmin succeeds silently when the caller's allow-list record
// carries the ADMIN role; otherwise it fails with ErrForbidden.
func (svc *AuthService) RequireAdmin(ctx context.Context, identity models.Identity) error {
	record, err := svc.RequireAuthorizedUser(ctx, identity)
	if err != nil {
		return err
	}

	if record.Role != models.RoleAdmin {
		logger.Log.Errorw("admin access required", "email", identity.Email, "role", record.Role)
		return ErrForbidden
	}

	return nil
}
