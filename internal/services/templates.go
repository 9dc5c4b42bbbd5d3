package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-mailer/internal/logger"
	"github.com/sbilibin2017/gw-mailer/internal/models"
)

// Error variables
var (
	ErrTemplateNotFound = errors.New("template not found")
)

// TemplateReader reads reusable email templates.
type TemplateReader interface {
	List(ctx context.Context) ([]models.TemplateDB, error)
}

// TemplateWriter mutates reusable email templates.
type TemplateWriter interface {
	Save(ctx context.Context, template *models.TemplateDB) error
	Update(ctx context.Context, id uuid.UUID, name string, subject *string, body string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// TemplateCache caches the template list.
type TemplateCache interface {
	Get(ctx context.Context) ([]models.TemplateDB, error)
	Set(ctx context.Context, templates []models.TemplateDB) error
	Invalidate(ctx context.Context) error
}

// TemplateService manages reusable (subject, body) pairs.
type TemplateService struct {
	guard  Guard
	reader TemplateReader
	writer TemplateWriter
	cache  TemplateCache
}

// NewTemplateService creates a new TemplateService instance.
func NewTemplateService(guard Guard, reader TemplateReader, writer TemplateWriter, cache TemplateCache) *TemplateService {
	return &TemplateService{
		guard:  guard,
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// List returns all templates ordered by name. Admins may list templates
// even when they are not on the allow-list themselves; everyone else
// must be an authorized sender.
func (svc *TemplateService) List(ctx context.Context, identity models.Identity) ([]models.TemplateDB, error) {
	if err := svc.guard.RequireAdmin(ctx, identity); err != nil {
		if _, err := svc.guard.RequireAuthorizedUser(ctx, identity); err != nil {
			return nil, err
		}
	}

	if svc.cache != nil {
		if templates, err := svc.cache.Get(ctx); err == nil {
			return templates, nil
		}
	}

	templates, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list templates", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, templates); err != nil {
			logger.Log.Errorw("failed to cache template list", "err", err)
		}
	}

	return templates, nil
}

// Create stores a new template. Admin only. A blank subject is stored
// as NULL.
func (svc *TemplateService) Create(ctx context.Context, identity models.Identity, name, subject, body string) (*models.TemplateDB, error) {
	if err := svc.guard.RequireAdmin(ctx, identity); err != nil {
		return nil, err
	}
	normalizedSubject, err := validateTemplate(name, subject, body)
	if err != nil {
		return nil, err
	}

	template := &models.TemplateDB{
		TemplateID: uuid.New(),
		Name:       name,
		Subject:    normalizedSubject,
		Body:       body,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := svc.writer.Save(ctx, template); err != nil {
		logger.Log.Errorw("failed to save template", "name", name, "err", err)
		return nil, err
	}

	svc.invalidateCache(ctx)
	return template, nil
}

// Update replaces an existing template. Admin only.
func (svc *TemplateService) Update(ctx context.Context, identity models.Identity, id uuid.UUID, name, subject, body string) (*models.TemplateDB, error) {
	if err := svc.guard.RequireAdmin(ctx, identity); err != nil {
		return nil, err
	}
	normalizedSubject, err := validateTemplate(name, subject, body)
	if err != nil {
		return nil, err
	}

	rows, err := svc.writer.Update(ctx, id, name, normalizedSubject, body)
	if err != nil {
		logger.Log.Errorw("failed to update template", "id", id, "err", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrTemplateNotFound
	}

	svc.invalidateCache(ctx)
	return &models.TemplateDB{
		TemplateID: id,
		Name:       name,
		Subject:    normalizedSubject,
		Body:       body,
		UpdatedAt:  time.Now().UTC(),
	}, nil
}

// Remove deletes a template. Admin only.
func (svc *TemplateService) Remove(ctx context.Context, identity models.Identity, id uuid.UUID) error {
	if err := svc.guard.RequireAdmin(ctx, identity); err != nil {
		return err
	}

	rows, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete template", "id", id, "err", err)
		return err
	}
	if rows == 0 {
		return ErrTemplateNotFound
	}

	svc.invalidateCache(ctx)
	return nil
}

func (svc *TemplateService) invalidateCache(ctx context.Context) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate template cache", "err", err)
	}
}

// validateTemplate checks the shared field limits and normalizes the
// optional subject, returning nil for a blank one.
func validateTemplate(name, subject, body string) (*string, error) {
	if n := utf8.RuneCountInString(name); n < 3 || n > 80 {
		return nil, fmt.Errorf("%w: template name must be 3-80 characters", ErrValidation)
	}
	if n := utf8.RuneCountInString(body); n < 1 || n > 5000 {
		return nil, fmt.Errorf("%w: template body must be 1-5000 characters", ErrValidation)
	}

	subject = strings.TrimSpace(subject)
	if utf8.RuneCountInString(subject) > 120 {
		return nil, fmt.Errorf("%w: template subject must be at most 120 characters", ErrValidation)
	}
	if subject == "" {
		return nil, nil
	}
	return &subject, nil
}
