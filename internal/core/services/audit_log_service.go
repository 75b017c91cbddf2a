package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doctrackph/doctrack-backend/internal/apperrors"
	"github.com/doctrackph/doctrack-backend/internal/core/domain"
	portsrepo "github.com/doctrackph/doctrack-backend/internal/core/ports/repositories"
	portssvc "github.com/doctrackph/doctrack-backend/internal/core/ports/services"
)

// auditLogService formats and appends audit trail entries.
type auditLogService struct {
	logRepo  portsrepo.LogRepository
	userRepo portsrepo.UserRepository
}

// NewAuditLogService creates the audit trail service.
func NewAuditLogService(logRepo portsrepo.LogRepository, userRepo portsrepo.UserRepository) portssvc.AuditLogSvcFacade {
	return &auditLogService{
		logRepo:  logRepo,
		userRepo: userRepo,
	}
}

var _ portssvc.AuditLogSvcFacade = (*auditLogService)(nil)

// BuildLogDescription renders the human-readable summary for a document
// mutation. For updates, the change set is reported field by field in the
// fixed tracked-field order, with a trailing particulars marker when the
// line items changed alongside other fields.
func BuildLogDescription(action domain.LogAction, documentType, controlNo string, changes *domain.ChangeSet) string {
	var description string

	switch action {
	case domain.ActionCreate:
		description = "Created " + documentType
		if controlNo != "" {
			description += " with Control No. " + controlNo
		}

	case domain.ActionUpdate:
		description = "Updated " + documentType
		if controlNo != "" {
			description += " (" + controlNo + ")"
		}
		if changes != nil {
			if fields := formatFieldChanges(changes); len(fields) > 0 {
				description += ": " + strings.Join(fields, ", ")
			}
			if changes.ParticularsUpdated {
				description += " [Particulars Updated]"
			}
		}

	case domain.ActionDelete:
		description = "Deleted " + documentType
		if controlNo != "" {
			description += " (Control No. " + controlNo + ")"
		}

	default:
		description = "Performed action on " + documentType
		if controlNo != "" {
			description += " (" + controlNo + ")"
		}
	}

	return description
}

// formatFieldChanges renders "field: from → to" entries, common fields
// first, then the incoming-only fields.
func formatFieldChanges(changes *domain.ChangeSet) []string {
	var out []string
	for _, field := range domain.CommonTrackedFields {
		if fc, ok := changes.Fields[field]; ok {
			out = append(out, fmt.Sprintf("%s: %s → %s", field, fc.From, fc.To))
		}
	}
	for _, field := range domain.IncomingTrackedFields {
		if fc, ok := changes.Fields[field]; ok {
			out = append(out, fmt.Sprintf("%s: %s → %s", field, fc.From, fc.To))
		}
	}
	return out
}

func (s *auditLogService) LogDocumentAction(ctx context.Context, action domain.LogAction, documentType, controlNo string, changes *domain.ChangeSet, actorUserID string) error {
	description := BuildLogDescription(action, documentType, controlNo, changes)
	return s.append(ctx, string(action), description, actorUserID)
}

func (s *auditLogService) LogAction(ctx context.Context, action, description string, actorUserID string) error {
	return s.append(ctx, action, description, actorUserID)
}

func (s *auditLogService) ListLogs(ctx context.Context) ([]domain.LogEntry, error) {
	return s.logRepo.FindLogs(ctx)
}

// append resolves the actor's display name, derives the next log ID for
// today and persists one entry.
func (s *auditLogService) append(ctx context.Context, action, description, actorUserID string) error {
	var actor *domain.User
	if actorUserID != "" {
		user, err := s.userRepo.FindUserByID(ctx, actorUserID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to resolve log actor: %w", err)
		}
		actor = user
	}

	date := time.Now().UTC().Format("2006-01-02")
	count, err := s.logRepo.CountEntriesOnDate(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to derive log ID: %w", err)
	}

	entry := domain.LogEntry{
		LogID:       fmt.Sprintf("LOG_%03d_%s", count+1, date),
		Action:      action,
		Description: description,
		User:        actor.DisplayName(),
	}
	if err := s.logRepo.SaveLog(ctx, entry); err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}
	return nil
}
