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

// TemplateUpdater defines the interface for updating templates.
type TemplateUpdater interface {
	Update(ctx context.Context, identity models.Identity, id uuid.UUID, name, subject, body string) (*models.TemplateDB, error)
}

// NewTemplateUpdateHandler returns an HTTP handler updating a template.
// @Summary Update a template
// @Description Replaces name, subject and body of an existing template. Admin only.
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template id"
// @Param templateRequest body handlers.TemplateRequest true "Template fields"
// @Success 200 {object} models.TemplateDB "Updated template"
// @Failure 400 {object} handlers.ErrorResponse "Invalid template fields"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Failure 404 {object} handlers.ErrorResponse "Template not found"
// @Security BearerAuth
// @Router /templates/{id} [put]
func NewTemplateUpdateHandler(svc TemplateUpdater) http.HandlerFunc {
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

		var req TemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		template, err := svc.Update(r.Context(), identity, id, req.Name, req.Subject, req.Body)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
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
		json.NewEncoder(w).Encode(template)
	}
}
