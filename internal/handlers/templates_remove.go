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

// TemplateRemover defines the interface for deleting templates.
type TemplateRemover interface {
	Remove(ctx context.Context, identity models.Identity, id uuid.UUID) error
}

// RemoveResponse represents a successful deletion
// swagger:model RemoveResponse
type RemoveResponse struct {
	// Success message
	// default: Removed successfully
	Message string `json:"message"`
}

// NewTemplateRemoveHandler returns an HTTP handler deleting a template.
// @Summary Remove a template
// @Description Deletes a template by id. Admin only.
// @Tags templates
// @Produce json
// @Param id path string true "Template id"
// @Success 200 {object} handlers.RemoveResponse "Template removed"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Failure 404 {object} handlers.ErrorResponse "Template not found"
// @Security BearerAuth
// @Router /templates/{id} [delete]
func NewTemplateRemoveHandler(svc TemplateRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Missing session identity")
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid template id")
			return
		}

		if err := svc.Remove(r.Context(), identity, id); err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Admin access required.")
			case errors.Is(err, services.ErrTemplateNotFound):
				writeError(w, http.StatusNotFound, "Template not found.")
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
