package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-mailer/internal/logger"
	"github.com/sbilibin2017/gw-mailer/internal/middlewares"
	"github.com/sbilibin2017/gw-mailer/internal/models"
	"github.com/sbilibin2017/gw-mailer/internal/services"
)

// EmailLogsLister defines the interface for listing all delivery logs.
type EmailLogsLister interface {
	Logs(ctx context.Context, identity models.Identity, limit int) ([]models.EmailLogDB, error)
}

// NewEmailLogsHandler returns an HTTP handler listing all delivery logs.
// @Summary List delivery logs
// @Description Returns the newest delivery records across all senders. Admin only.
// @Tags email
// @Produce json
// @Param limit query int false "Maximum rows, 1-100 (default 50)"
// @Success 200 {array} models.EmailLogDB "Delivery records, newest first"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /email/logs [get]
func NewEmailLogsHandler(svc EmailLogsLister) http.HandlerFunc {
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

		logs, err := svc.Logs(r.Context(), identity, limit)
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
		json.NewEncoder(w).Encode(logs)
	}
}

// parseLimit reads the optional limit query parameter; zero means the
// service default.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
