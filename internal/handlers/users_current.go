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

// CurrentUserGetter defines the interface for resolving the caller's record.
type CurrentUserGetter interface {
	Current(ctx context.Context, identity models.Identity) (*services.CurrentUser, error)
}

// NewCurrentUserHandler returns an HTTP handler exposing the caller's
// own allow-list record.
// @Summary Current sender
// @Description Returns the caller's id, email and must-change-password flag.
// @Tags users
// @Produce json
// @Success 200 {object} services.CurrentUser "Caller's record"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an authorized sender"
// @Security BearerAuth
// @Router /users/current [get]
func NewCurrentUserHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Missing session identity")
			return
		}

		current, err := svc.Current(r.Context(), identity)
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
		json.NewEncoder(w).Encode(current)
	}
}
