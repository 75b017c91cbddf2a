package services

import (
	"context"

	"github.com/doctrackph/doctrack-backend/internal/core/domain"
)

// AuditLogSvcFacade formats and persists audit trail entries.
type AuditLogSvcFacade interface {
	// LogDocumentAction builds the human-readable description for a
	// document mutation and appends one log entry. changes is only
	// consulted for UPDATE actions and may be nil.
	LogDocumentAction(ctx context.Context, action domain.LogAction, documentType, controlNo string, changes *domain.ChangeSet, actorUserID string) error

	// LogAction appends a general entry with a caller-supplied action and
	// description.
	LogAction(ctx context.Context, action, description string, actorUserID string) error

	ListLogs(ctx context.Context) ([]domain.LogEntry, error)
}
