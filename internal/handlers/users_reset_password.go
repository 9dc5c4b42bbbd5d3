package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-mailer/internal/logger"
	"github.com/sbilibin2017/gw-mailer/internal/middlewares"
	"github.com/sbilibin2017/gw-mailer/internal/models"
	"github.com/sbilibin2017/gw-mailer/internal/services"
)

// PasswordResetter defines the interface for the admin password reset.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, identity models.Identity, id uuid.UUID, newPassword string) error
}

// ResetPasswordRequest represents the JSON body for an admin password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// New password, 8-128 characters
	// required: true
	NewPassword string `json:"new_password"`
}

// NewResetPasswordHandler returns an HTTP handler resetting a sender's password.
// @Summary Reset a sender's password
// @Description Stores a new password hash for the sender and raises the must-change-password flag. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "Sender id"
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "New password"
// @Success 200 {object} handlers.ChangePasswordResponse "Password reset"
// @Failure 400 {object} handlers.ErrorResponse "New password out of bounds"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Failure 404 {object} handlers.ErrorResponse "Sender not found"
// @Security BearerAuth
// @Router /users/{id}/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Missing session identity")
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		var req ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.ResetPassword(r.Context(), identity, id, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Admin access required.")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChangePasswordResponse{
			Message: "Password reset successfully",
		})
	}
}
