package repositories

import (
	"context"

	"github.com/doctrackph/doctrack-backend/internal/core/domain"
)

// DocumentRepository is the persistence boundary for both document ledgers.
//
// CreateIncoming and CreateOutgoing allocate the document's control number
// atomically inside the same transaction as the insert: concurrent creates
// in the same month can never observe the same sequence. FindMaxSequence
// remains available for reporting and for seeding a month's counter.
type DocumentRepository interface {
	// FindMaxSequence returns the highest control-number suffix assigned in
	// the given ledger and "YYYY-MM" month, or nil when the month is empty.
	FindMaxSequence(ctx context.Context, ledger domain.Ledger, yearMonth string) (*int64, error)

	CreateIncoming(ctx context.Context, doc domain.Document, yearMonth string) (*domain.Document, error)
	FindIncomingByID(ctx context.Context, id int64) (*domain.Document, error)
	ListIncoming(ctx context.Context) ([]domain.Document, error)
	UpdateIncoming(ctx context.Context, doc domain.Document) error
	DeleteIncoming(ctx context.Context, id int64) error
	CountIncoming(ctx context.Context) (int64, error)

	CreateOutgoing(ctx context.Context, doc domain.Document, yearMonth string) (*domain.Document, error)
	FindOutgoingByID(ctx context.Context, id int64) (*domain.Document, error)
	ListOutgoing(ctx context.Context) ([]domain.Document, error)
	UpdateOutgoing(ctx context.Context, doc domain.Document) error
	DeleteOutgoing(ctx context.Context, id int64) error
	CountOutgoing(ctx context.Context) (int64, error)
}
