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

// Sender defines the interface that the email service must implement.
type Sender interface {
	Send(ctx context.Context, identity models.Identity, params services.SendParams) error
}

// SendRequest represents the JSON body for sending an email
// swagger:model SendRequest
type SendRequest struct {
	// Recipient addresses
	// required: true
	To []string `json:"to"`

	// Carbon-copy addresses
	Cc []string `json:"cc"`

	// Blind-carbon-copy addresses
	Bcc []string `json:"bcc"`

	// Extra reply-to addresses
	ReplyTo []string `json:"reply_to"`

	// Subject line, 1-120 characters
	// required: true
	Subject string `json:"subject"`

	// Plain-text body, 1-5000 characters
	// required: true
	Body string `json:"body"`

	// Base64-encoded attachments, at most 5 of 5 MB each
	Attachments []services.SendAttachment `json:"attachments"`

	// Re-entered account password
	// required: true
	Password string `json:"password"`
}

// SendResponse represents a successful send
// swagger:model SendResponse
type SendResponse struct {
	// Success message
	// default: Email sent successfully
	Message string `json:"message"`
}

// NewSendHandler returns an HTTP handler for sending branded emails.
// @Summary Send an email
// @Description Validates the compose payload, re-authenticates the sender with their password, renders the branded HTML document and relays it through SMTP. The delivery is logged on success.
// @Tags email
// @Accept json
// @Produce json
// @Param sendRequest body handlers.SendRequest true "Compose payload"
// @Success 200 {object} handlers.SendResponse "Email sent and logged"
// @Failure 400 {object} handlers.ErrorResponse "Invalid compose payload"
// @Failure 401 {object} handlers.ErrorResponse "Incorrect password"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not an authorized sender"
// @Failure 502 {object} handlers.ErrorResponse "SMTP relay failure"
// @Security BearerAuth
// @Router /email/send [post]
func NewSendHandler(svc Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Missing session identity")
			return
		}

		var req SendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		err := svc.Send(r.Context(), identity, services.SendParams{
			To:          req.To,
			Cc:          req.Cc,
			Bcc:         req.Bcc,
			ReplyTo:     req.ReplyTo,
			Subject:     req.Subject,
			Body:        req.Body,
			Attachments: req.Attachments,
			Password:    req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrIncorrectPassword):
				writeError(w, http.StatusUnauthorized, "Incorrect password.")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You are not authorized to use this tool.")
			case errors.Is(err, services.ErrDispatchFailed):
				writeError(w, http.StatusBadGateway, "Failed to send email.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SendResponse{
			Message: "Email sent successfully",
		})
	}
}
