package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-mailer/internal/email"
	"github.com/sbilibin2017/gw-mailer/internal/logger"
	"github.com/sbilibin2017/gw-mailer/internal/models"
)

// Attachment and payload bounds for one send.
const (
	MaxAttachments     = 5
	MaxAttachmentBytes = 5 * 1024 * 1024

	maxSubjectChars = 120
	maxBodyChars    = 5000

	defaultLogLimit   = 50
	maxLogLimit       = 100
	maxMyLogLimit     = 50
	defaultAuditLimit = 100
	maxAuditLimit     = 500
)

// Error variables
var (
	ErrValidation     = errors.New("invalid input")
	ErrDispatchFailed = errors.New("failed to send email")
)

// EmailLogReader reads the append-only delivery log.
type EmailLogReader interface {
	List(ctx context.Context, limit int) ([]models.EmailLogDB, error)
	ListByUserEmail(ctx context.Context, userEmail string, limit int) ([]models.EmailLogDB, error)
}

// EmailLogWriter appends delivery records.
type EmailLogWriter interface {
	Save(ctx context.Context, log *models.EmailLogDB) error
}

// Mailer dispatches one message through the shared SMTP account.
type Mailer interface {
	Send(ctx context.Context, msg email.Message) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SendAttachment is one base64-encoded file in a compose payload.
type SendAttachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int    `json:"size"`
	Data string `json:"data"`
}

// SendParams is a validated-on-entry compose payload. Password is the
// re-entered credential, checked independently of session auth.
type SendParams struct {
	To          []string         `json:"to"`
	Cc          []string         `json:"cc"`
	Bcc         []string         `json:"bcc"`
	ReplyTo     []string         `json:"reply_to"`
	Subject     string           `json:"subject"`
	Body        string           `json:"body"`
	Attachments []SendAttachment `json:"attachments"`
	Password    string           `json:"password"`
}

// EmailService validates, authorizes, renders and dispatches outbound
// mail, and records every successful send.
type EmailService struct {
	guard       Guard
	logReader   EmailLogReader
	logWriter   EmailLogWriter
	mailer      Mailer
	kafkaWriter KafkaWriter
	fromAddress string
	fromName    string
}

// NewEmailService creates a new EmailService instance.
func NewEmailService(
	guard Guard,
	logReader EmailLogReader,
	logWriter EmailLogWriter,
	mailer Mailer,
	kafkaWriter KafkaWriter,
	fromAddress string,
	fromName string,
) *EmailService {
	return &EmailService{
		guard:       guard,
		logReader:   logReader,
		logWriter:   logWriter,
		mailer:      mailer,
		kafkaWriter: kafkaWriter,
		fromAddress: fromAddress,
		fromName:    fromName,
	}
}

// Send walks one compose attempt through validation, the allow-list
// check, the password re-entry check, rendering and a single SMTP
// transaction. The delivery log row is written only after transport
// success; there is no retry and no partial-send state.
func (svc *EmailService) Send(ctx context.Context, identity models.Identity, params SendParams) error {
	attachments, err := validateSend(params)
	if err != nil {
		return err
	}

	record, err := svc.guard.RequireAuthorizedUser(ctx, identity)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(params.Password)); err != nil {
		logger.Log.Errorw("send password mismatch", "email", record.Email)
		return ErrIncorrectPassword
	}

	fromName := svc.fromName
	if fromName == "" {
		fromName = identity.Name
	}
	if fromName == "" {
		fromName = "Incridea Mailer"
	}

	replyTo := dedupeEmails(append(
		[]string{svc.fromAddress, record.Email},
		append(append([]string{}, params.ReplyTo...), params.Cc...)...,
	))

	msg := email.Message{
		FromAddress: svc.fromAddress,
		FromName:    fromName,
		To:          params.To,
		Cc:          params.Cc,
		Bcc:         params.Bcc,
		ReplyTo:     replyTo,
		Subject:     params.Subject,
		HTML:        RenderEmailHTML(params.Body),
		Attachments: attachments,
	}

	if err := svc.mailer.Send(ctx, msg); err != nil {
		logger.Log.Errorw("SMTP dispatch failed", "email", record.Email, "err", err)
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}

	entry := &models.EmailLogDB{
		EmailLogID:    uuid.New(),
		UserEmail:     record.Email,
		Subject:       params.Subject,
		Body:          params.Body,
		HasAttachment: len(attachments) > 0,
		CreatedAt:     time.Now().UTC(),
	}
	if err := svc.logWriter.Save(ctx, entry); err != nil {
		logger.Log.Errorw("failed to write email log", "email", record.Email, "err", err)
		return err
	}

	svc.publishSent(ctx, models.SentEmailEvent{
		EventID:       uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		UserEmail:     record.Email,
		Subject:       params.Subject,
		Recipients:    len(params.To) + len(params.Cc) + len(params.Bcc),
		HasAttachment: len(attachments) > 0,
	})

	return nil
}

// Logs returns the newest delivery records. Admin only.
func (svc *EmailService) Logs(ctx context.Context, identity models.Identity, limit int) ([]models.EmailLogDB, error) {
	if err := svc.guard.RequireAdmin(ctx, identity); err != nil {
		return nil, err
	}

	if limit < 0 || limit > maxLogLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrValidation, maxLogLimit)
	}
	if limit == 0 {
		limit = defaultLogLimit
	}

	return svc.logReader.List(ctx, limit)
}

// MyLogs returns the caller's own delivery records.
func (svc *EmailService) MyLogs(ctx context.Context, identity models.Identity, limit int) ([]models.EmailLogDB, error) {
	record, err := svc.guard.RequireAuthorizedUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	if limit < 0 || limit > maxMyLogLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrValidation, maxMyLogLimit)
	}
	if limit == 0 {
		limit = maxMyLogLimit
	}

	return svc.logReader.ListByUserEmail(ctx, record.Email, limit)
}

// publishSent publishes a sent-mail event to Kafka, best-effort.
func (svc *EmailService) publishSent(ctx context.Context, event models.SentEmailEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal sent-email event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish sent-email event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Sent-email event published to Kafka", "event_id", event.EventID, "user_email", event.UserEmail)
	}
}

// validateSend checks the compose payload against the schema bounds and
// decodes attachments. Nothing here has side effects.
func validateSend(params SendParams) ([]email.Attachment, error) {
	if len(params.To) == 0 {
		return nil, fmt.Errorf("%w: at least one recipient is required", ErrValidation)
	}
	for _, list := range [][]string{params.To, params.Cc, params.Bcc, params.ReplyTo} {
		for _, addr := range list {
			if !isValidEmail(addr) {
				return nil, fmt.Errorf("%w: malformed email address %q", ErrValidation, addr)
			}
		}
	}

	if n := utf8.RuneCountInString(params.Subject); n < 1 || n > maxSubjectChars {
		return nil, fmt.Errorf("%w: subject must be 1-%d characters", ErrValidation, maxSubjectChars)
	}
	if n := utf8.RuneCountInString(params.Body); n < 1 || n > maxBodyChars {
		return nil, fmt.Errorf("%w: body must be 1-%d characters", ErrValidation, maxBodyChars)
	}
	if params.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}

	if len(params.Attachments) > MaxAttachments {
		return nil, fmt.Errorf("%w: at most %d attachments are allowed", ErrValidation, MaxAttachments)
	}

	attachments := make([]email.Attachment, 0, len(params.Attachments))
	for _, att := range params.Attachments {
		name := strings.TrimSpace(att.Name)
		contentType := strings.TrimSpace(att.Type)
		if name == "" || utf8.RuneCountInString(name) > 120 {
			return nil, fmt.Errorf("%w: attachment name must be 1-120 characters", ErrValidation)
		}
		if contentType == "" || utf8.RuneCountInString(contentType) > 120 {
			return nil, fmt.Errorf("%w: attachment type must be 1-120 characters", ErrValidation)
		}
		if att.Size <= 0 || att.Size > MaxAttachmentBytes {
			return nil, fmt.Errorf("%w: attachment %q exceeds the %d byte limit", ErrValidation, name, MaxAttachmentBytes)
		}

		content, err := base64.StdEncoding.DecodeString(att.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: attachment %q is not valid base64", ErrValidation, name)
		}
		if len(content) == 0 || len(content) > MaxAttachmentBytes {
			return nil, fmt.Errorf("%w: attachment %q exceeds the %d byte limit", ErrValidation, name, MaxAttachmentBytes)
		}

		attachments = append(attachments, email.Attachment{
			Filename:    name,
			ContentType: contentType,
			Content:     content,
		})
	}

	return attachments, nil
}

// isValidEmail accepts a bare address with no display name.
func isValidEmail(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}

// dedupeEmails drops blanks and case-insensitive repeats while keeping
// first-seen order and casing.
func dedupeEmails(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
