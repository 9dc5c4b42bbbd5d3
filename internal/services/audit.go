package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-mailer/internal/models"
)

// AuditReader reads the append-only audit trail.
type AuditReader interface {
	List(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
}

// AuditService exposes the audit trail to administrators.
type AuditService struct {
	guard  Guard
	reader AuditReader
}

// NewAuditService creates a new AuditService instance.
func NewAuditService(guard Guard, reader AuditReader) *AuditService {
	return &AuditService{guard: guard, reader: reader}
}

// List returns the newest audit entries. Admin only.
func (svc *AuditService) List(ctx context.Context, identity models.Identity, limit int) ([]models.AuditLogEntry, error) {
	if err := svc.guard.RequireAdmin(ctx, identity); err != nil {
		return nil, err
	}

	if limit < 0 || limit > maxAuditLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrValidation, maxAuditLimit)
	}
	if limit == 0 {
		limit = defaultAuditLimit
	}

	return svc.reader.List(ctx, limit)
}
