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

// MyLogsLister defines the interface for listing the caller's own logs.
type MyLogsLister interface {
	MyLogs(ctx context.Context, identity models.Identity, limit int) ([]models.EmailLogDB, error)
}

// NewMyEmailLogsHandler returns an HTTP handler listing the caller's
// own delivery logs.
// @Summary List own delivery logs
// @Description Returns the newest delivery records of the calling sender.
// @Tags email
// @Produce json
// @Param limit query int false "Maximum rows, 1-50 (default 50)"
// @Success 200 {array} models.EmailLogDB "Delivery records, newest first"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an authorized sender"
// @Security BearerAuth
// @Router /email/my-logs [get]
func NewMyEmailLogsHandler(svc MyLogsLister) http.HandlerFunc {
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

		logs, err := svc.MyLogs(r.Context(), identity, limit)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You are not authorized to use this tool.")
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
