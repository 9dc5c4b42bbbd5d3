package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-mailer/internal/logger"
	"github.com/sbilibin2017/gw-mailer/internal/models"
)

// bcryptCost is the work factor for every stored password hash.
const bcryptCost = 12

// Error variables
var (
	ErrUserNotFound      = errors.New("authorized user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// UserWriter defines write operations over the sender allow-list.
type UserWriter interface {
	Save(ctx context.Context, user *models.AuthorizedUserDB) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, mustChange bool) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// AuditWriter appends entries to the audit trail.
type AuditWriter interface {
	Save(ctx context.Context, entry *models.AuditLogDB) error
}

// Guard resolves the caller's privileges.
type Guard interface {
	RequireAuthorizedUser(ctx context.Context, identity models.Identity) (*models.AuthorizedUserDB, error)
	RequireAdmin(ctx context.Context, identity models.Identity) error
}

// CurrentUser is what an authorized sender may see of their own record.
type CurrentUser struct {
	UserID             uuid.UUID `json:"user_id"`
	Email              string    `json:"email"`
	MustChangePassword bool      `json:"must_change_password"`
}

// UserService manages the sender allow-list.
type UserService struct {
	guard  Guard
	reader UserReader
	writer UserWriter
	audit  AuditWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(guard Guard, reader UserReader, writer UserWriter, audit AuditWriter) *UserService {
	return &UserService{
		guard:  guard,
		reader: reader,
		writer: writer,
		audit:  audit,
	}
}

// Current returns the caller's own allow-list record.
func (svc *UserService) Current(ctx context.Context, identity models.Identity) (*CurrentUser, error) {
	record, err := svc.guard.RequireAuthorizedUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &CurrentUser{
		UserID:             record.UserID,
		Email:              record.Email,
		MustChangePassword: record.MustChangePassword,
	}, nil
}

// List returns all authorized senders ordered by email. Admin only.
func (svc *UserService) List(ctx context.Context, identity models.Identity) ([]models.AuthorizedUserDB, error) {
	if err := svc.guard.RequireAdmin(ctx, identity); err != nil {
		return nil, err
	}
	return svc.reader.List(ctx)
}

// Create adds a batch of emails to the allow-list. Admin only.
// Emails are trimmed, lowercased and deduplicated within the batch;
// already-present emails are reported as duplicates without failing the
// batch. Each new sender gets their own email hashed as a temporary
// password and must change it before the flag clears.
func (svc *UserService) Create(ctx context.Context, identity models.Identity, emails []string) ([]models.CreateUserResult, error) {
	if err := svc.guard.RequireAdmin(ctx, identity); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(emails))
	normalized := make([]string, 0, len(emails))
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		normalized = append(normalized, email)
	}

	if len(normalized) == 0 {
		return nil, fmt.Errorf("%w: no valid email addresses provided", ErrValidation)
	}

	results := make([]models.CreateUserResult, 0, len(normalized))
	for _, email := range normalized {
		existing, err := svc.reader.GetByEmail(ctx, email)
		if err != nil {
			logger.Log.Errorw("failed to check existing user", "email", email, "err", err)
			return nil, err
		}
		if existing != nil {
			results = append(results, models.CreateUserResult{Email: email, Status: models.CreateStatusDuplicate})
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(email), bcryptCost)
		if err != nil {
			logger.Log.Errorw("failed to hash temporary password", "email", email, "err", err)
			return nil, err
		}

		user := &models.AuthorizedUserDB{
			UserID:             uuid.New(),
			Email:              email,
			PasswordHash:       string(hash),
			MustChangePassword: true,
			Role:               models.RoleUser,
			CreatedAt:          time.Now().UTC(),
		}
		if err := svc.writer.Save(ctx, user); err != nil {
			logger.Log.Errorw("failed to save authorized user", "email", email, "err", err)
			return nil, err
		}

		if err := svc.recordAudit(ctx, identity, fmt.Sprintf("Added authorized user %s", email)); err != nil {
			return nil, err
		}

		results = append(results, models.CreateUserResult{Email: email, Status: models.CreateStatusCreated})
	}

	return results, nil
}

// ResetPassword re-hashes a sender's password and forces a change on
// next use. Admin only.
func (svc *UserService) ResetPassword(ctx context.Context, identity models.Identity, id uuid.UUID, newPassword string) error {
	if err := svc.guard.RequireAdmin(ctx, identity); err != nil {
		return err
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	record, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to look up user for reset", "id", id, "err", err)
		return err
	}
	if record == nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	rows, err := svc.writer.UpdatePassword(ctx, id, string(hash), true)
	if err != nil {
		logger.Log.Errorw("failed to reset password", "id", id, "err", err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return svc.recordAudit(ctx, identity, fmt.Sprintf("Reset password for authorized user %s", record.Email))
}

// Remove deletes a sender from the allow-list. Admin only.
func (svc *UserService) Remove(ctx context.Context, identity models.Identity, id uuid.UUID) error {
	if err := svc.guard.RequireAdmin(ctx, identity); err != nil {
		return err
	}

	record, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to look up user for removal", "id", id, "err", err)
		return err
	}
	if record == nil {
		return ErrUserNotFound
	}

	rows, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete authorized user", "id", id, "err", err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return svc.recordAudit(ctx, identity, fmt.Sprintf("Removed authorized user %s", record.Email))
}

// ChangePassword is the self-service path: the current password must
// match before the new one is stored, and a successful change clears
// the must-change flag.
func (svc *UserService) ChangePassword(ctx context.Context, identity models.Identity, currentPassword, newPassword string) error {
	record, err := svc.guard.RequireAuthorizedUser(ctx, identity)
	if err != nil {
		return err
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(currentPassword)); err != nil {
		logger.Log.Errorw("current password mismatch", "email", record.Email)
		return ErrIncorrectPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	rows, err := svc.writer.UpdatePassword(ctx, record.UserID, string(hash), false)
	if err != nil {
		logger.Log.Errorw("failed to change password", "id", record.UserID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return svc.recordAudit(ctx, identity, fmt.Sprintf("Changed password for %s", record.Email))
}

// recordAudit appends one audit entry attributed to the acting identity.
func (svc *UserService) recordAudit(ctx context.Context, identity models.Identity, description string) error {
	entry := &models.AuditLogDB{
		AuditLogID:  uuid.New(),
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if identity.UserID != uuid.Nil {
		userID := identity.UserID
		entry.UserID = &userID
	}
	if identity.Email != "" {
		email := identity.Email
		entry.UserEmail = &email
	}

	if err := svc.audit.Save(ctx, entry); err != nil {
		logger.Log.Errorw("failed to record audit entry", "description", description, "err", err)
		return err
	}
	return nil
}

// validatePassword enforces the shared password policy.
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	if len(password) > 128 {
		return fmt.Errorf("%w: password must be at most 128 characters", ErrValidation)
	}
	return nil
}
