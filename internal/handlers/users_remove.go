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

// UserRemover defines the interface for removing a sender from the allow-list.
type UserRemover interface {
	Remove(ctx context.Context, identity models.Identity, id uuid.UUID) error
}

// NewUserRemoveHandler returns an HTTP handler removing a sender.
// @Summary Remove an authorized sender
// @Description Deletes the allow-list record by id. Admin only. Delivery history stays intact.
// @Tags users
// @Produce json
// @Param id path string true "Sender id"
// @Success 200 {object} handlers.RemoveResponse "Sender removed"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Failure 404 {object} handlers.ErrorResponse "Sender not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func NewUserRemoveHandler(svc UserRemover) http.HandlerFunc {
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

		if err := svc.Remove(r.Context(), identity, id); err != nil {
			switch {
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
		json.NewEncoder(w).Encode(RemoveResponse{
			Message: "Removed successfully",
		})
	}
}
