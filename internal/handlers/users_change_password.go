package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-mailer/internal/logger"
	"github.com/sbilibin2017/gw-mailer/internal/middlewares"
	"github.com/sbilibin2017/gw-mailer/internal/models"
	"github.com/sbilibin2017/gw-mailer/internal/services"
)

// PasswordChanger defines the interface for self-service password change.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, identity models.Identity, currentPassword, newPassword string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"current_password"`

	// New password, 8-128 characters
	// required: true
	NewPassword string `json:"new_password"`
}

// ChangePasswordResponse represents a successful password change
// swagger:model ChangePasswordResponse
type ChangePasswordResponse struct {
	// Success message
	// default: Password changed successfully
	Message string `json:"message"`
}

// NewChangePasswordHandler returns an HTTP handler for the self-service
// password change.
// @Summary Change own password
// @Description Verifies the current password, stores the new hash and clears the must-change-password flag.
// @Tags users
// @Accept json
// @Produce json
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Password change"
// @Success 200 {object} handlers.ChangePasswordResponse "Password changed"
// @Failure 400 {object} handlers.ErrorResponse "New password out of bounds"
// @Failure 401 {object} handlers.ErrorResponse "Current password is incorrect"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an authorized sender"
// @Security BearerAuth
// @Router /users/change-password [post]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Missing session identity")
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.ChangePassword(r.Context(), identity, req.CurrentPassword, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrIncorrectPassword):
				writeError(w, http.StatusUnauthorized, "Current password is incorrect.")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You are not authorized to use this tool.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChangePasswordResponse{
			Message: "Password changed successfully",
		})
	}
}
