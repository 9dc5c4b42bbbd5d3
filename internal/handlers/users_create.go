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

// UsersCreator defines the interface for the bulk sender create.
type UsersCreator interface {
	Create(ctx context.Context, identity models.Identity, emails []string) ([]models.CreateUserResult, error)
}

// CreateUsersRequest represents the JSON body for the bulk sender create
// swagger:model CreateUsersRequest
type CreateUsersRequest struct {
	// Emails to add to the allow-list
	// required: true
	Emails []string `json:"emails"`
}

// CreateUsersResponse represents the per-email outcome of a bulk create
// swagger:model CreateUsersResponse
type CreateUsersResponse struct {
	// Per-email results
	Results []models.CreateUserResult `json:"results"`
}

// NewUsersCreateHandler returns an HTTP handler adding senders in bulk.
// @Summary Add authorized senders
// @Description Normalizes and deduplicates the batch, skips already-present emails and reports a per-email status. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param createUsersRequest body handlers.CreateUsersRequest true "Emails to add"
// @Success 200 {object} handlers.CreateUsersResponse "Per-email results"
// @Failure 400 {object} handlers.ErrorResponse "No valid email addresses provided"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /users [post]
func NewUsersCreateHandler(svc UsersCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Missing session identity")
			return
		}

		var req CreateUsersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		results, err := svc.Create(r.Context(), identity, req.Emails)
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
		json.NewEncoder(w).Encode(CreateUsersResponse{Results: results})
	}
}
