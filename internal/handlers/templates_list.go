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

// TemplatesLister defines the interface for listing templates.
type TemplatesLister interface {
	List(ctx context.Context, identity models.Identity) ([]models.TemplateDB, error)
}

// NewTemplatesListHandler returns an HTTP handler listing templates.
// @Summary List templates
// @Description Returns all reusable templates ordered by name. Available to admins and authorized senders.
// @Tags templates
// @Produce json
// @Success 200 {array} models.TemplateDB "Templates ordered by name"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an authorized sender"
// @Security BearerAuth
// @Router /templates [get]
func NewTemplatesListHandler(svc TemplatesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Missing session identity")
			return
		}

		templates, err := svc.List(r.Context(), identity)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You are not authorized to use this tool.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(templates)
	}
}
