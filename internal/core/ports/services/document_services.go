package services

import (
	"context"

	"github.com/doctrackph/doctrack-backend/internal/core/domain"
	"github.com/doctrackph/doctrack-backend/internal/dto"
)

// DocumentSvcFacade exposes the register operations for both ledgers.
// Every mutation appends one audit log entry; log append failures are
// reported but never undo the document mutation.
type DocumentSvcFacade interface {
	CreateIncoming(ctx context.Context, req dto.CreateIncomingRequest, actorUserID string) (*domain.Document, error)
	ListIncoming(ctx context.Context) ([]domain.Document, error)
	UpdateIncoming(ctx context.Context, id int64, req dto.UpdateIncomingRequest, actorUserID string) (*domain.Document, error)
	DeleteIncoming(ctx context.Context, id int64, actorUserID string) error

	CreateOutgoing(ctx context.Context, req dto.CreateOutgoingRequest, actorUserID string) (*domain.Document, error)
	ListOutgoing(ctx context.Context) ([]domain.Document, error)
	UpdateOutgoing(ctx context.Context, id int64, req dto.UpdateOutgoingRequest, actorUserID string) (*domain.Document, error)
	DeleteOutgoing(ctx context.Context, id int64, actorUserID string) error

	ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error)
}
