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

// TemplateCreator defines the interface for creating templates.
type TemplateCreator interface {
	Create(ctx context.Context, identity models.Identity, name, subject, body string) (*models.TemplateDB, error)
}

// TemplateRequest represents the JSON body for creating or updating a template
// swagger:model TemplateRequest
type TemplateRequest struct {
	// Template name, 3-80 characters
	// required: true
	Name string `json:"name"`

	// Optional subject, at most 120 characters; blank is stored as null
	Subject string `json:"subject"`

	// Plain-text body, 1-5000 characters
	// required: true
	Body string `json:"body"`
}

// NewTemplateCreateHandler returns an HTTP handler creating a template.
// @Summary Create a template
// @Description Stores a new reusable (subject, body) pair. Admin only.
// @Tags templates
// @Accept json
// @Produce json
// @Param templateRequest body handlers.TemplateRequest true "Template fields"
// @Success 201 {object} models.TemplateDB "Created template"
// @Failure 400 {object} handlers.ErrorResponse "Invalid template fields"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /templates [post]
func NewTemplateCreateHandler(svc TemplateCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Missing session identity")
			return
		}

		var req TemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		template, err := svc.Create(r.Context(), identity, req.Name, req.Subject, req.Body)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Admin access required.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(template)
	}
}
