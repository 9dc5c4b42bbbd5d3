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

// AuditLister defines the interface for listing the audit trail.
type AuditLister interface {
	List(ctx context.Context, identity models.Identity, limit int) ([]models.AuditLogEntry, error)
}

// NewAuditListHandler returns an HTTP handler listing audit entries.
// @Summary List audit entries
// @Description Returns the newest administrative audit entries with actor email and role. Admin only.
// @Tags audit
// @Produce json
// @Param limit query int false "Maximum rows, 1-500 (default 100)"
// @Success 200 {array} models.AuditLogEntry "Audit entries, newest first"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /audit [get]
func NewAuditListHandler(svc AuditLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Missing session identity")
			return
		}

		limit, err := parseLimit(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}

		entries, err := svc.List(r.Context(), identity, limit)
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(entries)
	}
}
