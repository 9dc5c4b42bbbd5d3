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

// UsersLister defines the interface for listing authorized senders.
type UsersLister interface {
	List(ctx context.Context, identity models.Identity) ([]models.AuthorizedUserDB, error)
}

// NewUsersListHandler returns an HTTP handler listing authorized senders.
// @Summary List authorized senders
// @Description Returns all allow-list records ordered by email. Admin only. Password hashes are never serialized.
// @Tags users
// @Produce json
// @Success 200 {array} models.AuthorizedUserDB "Senders ordered by email"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /users [get]
func NewUsersListHandler(svc UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Missing session identity")
			return
		}

		users, err := svc.List(r.Context(), identity)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "Admin access required.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
