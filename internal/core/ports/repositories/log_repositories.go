package repositories

import (
	"context"

	"github.com/doctrackph/doctrack-backend/internal/core/domain"
)

// LogRepository persists the append-only audit trail.
type LogRepository interface {
	// SaveLog appends one entry. Entries are never updated or removed.
	SaveLog(ctx context.Context, entry domain.LogEntry) error

	// CountEntriesOnDate counts entries stamped on the given "YYYY-MM-DD"
	// date; the next log ID on that date is count+1.
	CountEntriesOnDate(ctx context.Context, date string) (int64, error)

	// FindLogs returns all entries ordered by timestamp ascending.
	FindLogs(ctx context.Context) ([]domain.LogEntry, error)

	CountLogs(ctx context.Context) (int64, error)
}
