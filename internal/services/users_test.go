package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-mailer/internal/models"
)

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	identity := models.Identity{UserID: uuid.New(), Email: "admin@example.com"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard := NewMockGuard(ctrl)
	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)
	audit := NewMockAuditWriter(ctrl)

	guard.EXPECT().RequireAdmin(ctx, identity).Return(nil)

	// "New@Example.com" and " new@example.com " collapse into one lookup
	reader.EXPECT().GetByEmail(ctx, "new@example.com").Return(nil, nil)
	reader.EXPECT().GetByEmail(ctx, "dup@example.com").Return(&models.AuthorizedUserDB{
		UserID: uuid.New(),
		Email:  "dup@example.com",
	}, nil)

	var saved *models.AuthorizedUserDB
	writer.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.AuthorizedUserDB) error {
			saved = user
			return nil
		})
	audit.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	svc := NewUserService(guard, reader, writer, audit)
	results, err := svc.Create(ctx, identity, []string{"New@Example.com", " new@example.com ", "dup@example.com", ""})

	assert.NoError(t, err)
	assert.Equal(t, []models.CreateUserResult{
		{Email: "new@example.com", Status: models.CreateStatusCreated},
		{Email: "dup@example.com", Status: models.CreateStatusDuplicate},
	}, results)

	// the temporary password is the sender's own email
	assert.NotNil(t, saved)
	assert.Equal(t, "new@example.com", saved.Email)
	assert.True(t, saved.MustChangePassword)
	assert.Equal(t, models.RoleUser, saved.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("new@example.com")))
}

func TestUserService_Create_EmptyBatch(t *testing.T) {
	ctx := context.Background()
	identity := models.Identity{UserID: uuid.New(), Email: "admin@example.com"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard := NewMockGuard(ctrl)
	guard.EXPECT().RequireAdmin(ctx, identity).Return(nil)

	svc := NewUserService(guard, NewMockUserReader(ctrl), NewMockUserWriter(ctrl), NewMockAuditWriter(ctrl))
	_, err := svc.Create(ctx, identity, []string{"", "   "})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserService_Create_NonAdmin(t *testing.T) {
	ctx := context.Background()
	identity := models.Identity{UserID: uuid.New(), Email: "sender@example.com"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard := NewMockGuard(ctrl)
	guard.EXPECT().RequireAdmin(ctx, identity).Return(ErrForbidden)

	svc := NewUserService(guard, NewMockUserReader(ctrl), NewMockUserWriter(ctrl), NewMockAuditWriter(ctrl))
	_, err := svc.Create(ctx, identity, []string{"new@example.com"})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	identity := models.Identity{UserID: uuid.New(), Email: "sender@example.com"}

	hash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	assert.NoError(t, err)

	record := &models.AuthorizedUserDB{
		UserID:             identity.UserID,
		Email:              identity.Email,
		PasswordHash:       string(hash),
		MustChangePassword: true,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard := NewMockGuard(ctrl)
	writer := NewMockUserWriter(ctrl)
	audit := NewMockAuditWriter(ctrl)

	guard.EXPECT().RequireAuthorizedUser(ctx, identity).Return(record, nil)
	// a successful change clears the must-change flag
	writer.EXPECT().
		UpdatePassword(ctx, identity.UserID, gomock.Any(), false).
		Return(int64(1), nil)
	audit.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	svc := NewUserService(guard, NewMockUserReader(ctrl), writer, audit)
	assert.NoError(t, svc.ChangePassword(ctx, identity, "old-password", "brand-new-password"))
}

func TestUserService_ChangePassword_Errors(t *testing.T) {
	ctx := context.Background()
	identity := models.Identity{UserID: uuid.New(), Email: "sender@example.com"}

	hash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	assert.NoError(t, err)

	record := &models.AuthorizedUserDB{
		UserID:       identity.UserID,
		Email:        identity.Email,
		PasswordHash: string(hash),
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard := NewMockGuard(ctrl)
	svc := NewUserService(guard, NewMockUserReader(ctrl), NewMockUserWriter(ctrl), NewMockAuditWriter(ctrl))

	// wrong current password
	guard.EXPECT().RequireAuthorizedUser(ctx, identity).Return(record, nil)
	assert.ErrorIs(t, svc.ChangePassword(ctx, identity, "wrong-password", "brand-new-password"), ErrIncorrectPassword)

	// new password too short
	guard.EXPECT().RequireAuthorizedUser(ctx, identity).Return(record, nil)
	assert.ErrorIs(t, svc.ChangePassword(ctx, identity, "old-password", "short"), ErrValidation)
}

func TestUserService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	identity := models.Identity{UserID: uuid.New(), Email: "admin@example.com"}
	targetID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard := NewMockGuard(ctrl)
	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)
	audit := NewMockAuditWriter(ctrl)

	guard.EXPECT().RequireAdmin(ctx, identity).Return(nil)
	reader.EXPECT().GetByID(ctx, targetID).Return(&models.AuthorizedUserDB{
		UserID: targetID,
		Email:  "sender@example.com",
	}, nil)
	// an admin reset always forces a change on next use
	writer.EXPECT().
		UpdatePassword(ctx, targetID, gomock.Any(), true).
		Return(int64(1), nil)
	audit.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	svc := NewUserService(guard, reader, writer, audit)
	assert.NoError(t, svc.ResetPassword(ctx, identity, targetID, "fresh-password"))
}

func TestUserService_ResetPassword_NotFound(t *testing.T) {
	ctx := context.Background()
	identity := models.Identity{UserID: uuid.New(), Email: "admin@example.com"}
	targetID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard := NewMockGuard(ctrl)
	reader := NewMockUserReader(ctrl)

	guard.EXPECT().RequireAdmin(ctx, identity).Return(nil)
	reader.EXPECT().GetByID(ctx, targetID).Return(nil, nil)

	svc := NewUserService(guard, reader, NewMockUserWriter(ctrl), NewMockAuditWriter(ctrl))
	assert.ErrorIs(t, svc.ResetPassword(ctx, identity, targetID, "fresh-password"), ErrUserNotFound)
}

func TestUserService_Remove(t *testing.T) {
	ctx := context.Background()
	identity := models.Identity{UserID: uuid.New(), Email: "admin@example.com"}
	targetID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard := NewMockGuard(ctrl)
	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)
	audit := NewMockAuditWriter(ctrl)

	guard.EXPECT().RequireAdmin(ctx, identity).Return(nil)
	reader.EXPECT().GetByID(ctx, targetID).Return(&models.AuthorizedUserDB{
		UserID: targetID,
		Email:  "sender@example.com",
	}, nil)
	writer.EXPECT().Delete(ctx, targetID).Return(int64(1), nil)
	audit.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	svc := NewUserService(guard, reader, writer, audit)
	assert.NoError(t, svc.Remove(ctx, identity, targetID))
}

func TestUserService_Current(t *testing.T) {
	ctx := context.Background()
	identity := models.Identity{UserID: uuid.New(), Email: "sender@example.com"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard := NewMockGuard(ctrl)
	guard.EXPECT().RequireAuthorizedUser(ctx, identity).Return(&models.AuthorizedUserDB{
		UserID:             identity.UserID,
		Email:              identity.Email,
		MustChangePassword: true,
	}, nil)

	svc := NewUserService(guard, NewMockUserReader(ctrl), NewMockUserWriter(ctrl), NewMockAuditWriter(ctrl))
	current, err := svc.Current(ctx, identity)

	assert.NoError(t, err)
	assert.Equal(t, &CurrentUser{
		UserID:             identity.UserID,
		Email:              identity.Email,
		MustChangePassword: true,
	}, current)
}
