package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doctrackph/doctrack-backend/internal/core/domain"
	portsrepo "github.com/doctrackph/doctrack-backend/internal/core/ports/repositories"
	"github.com/doctrackph/doctrack-backend/internal/models"
)

type PgxLogRepository struct {
	db *pgxpool.Pool
}

func NewLogRepository(db *pgxpool.Pool) portsrepo.LogRepository {
	return &PgxLogRepository{db: db}
}

var _ portsrepo.LogRepository = (*PgxLogRepository)(nil)

func toDomainLogEntry(m models.LogEntry) domain.LogEntry {
	return domain.LogEntry{
		LogID:       m.LogID,
		Action:      m.Action,
		Description: m.Description,
		User:        m.UserName,
		Timestamp:   m.Timestamp,
	}
}

// SaveLog appends one entry; the timestamp is stamped by the database.
func (r *PgxLogRepository) SaveLog(ctx context.Context, entry domain.LogEntry) error {
	query := `
        INSERT INTO logs (log_id, action, description, user_name)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query, entry.LogID, entry.Action, entry.Description, entry.User)
	if err != nil {
		return fmt.Errorf("failed to save log entry: %w", err)
	}
	return nil
}

func (r *PgxLogRepository) CountEntriesOnDate(ctx context.Context, date string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM logs WHERE timestamp::date = $1::date;`
	if err := r.db.QueryRow(ctx, query, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count log entries on %s: %w", date, err)
	}
	return count, nil
}

func (r *PgxLogRepository) FindLogs(ctx context.Context) ([]domain.LogEntry, error) {
	query := `
        SELECT log_id, action, description, user_name, timestamp
        FROM logs
        ORDER BY timestamp ASC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.LogEntry
	for rows.Next() {
		var m models.LogEntry
		if err := rows.Scan(&m.LogID, &m.Action, &m.Description, &m.UserName, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}
		entries = append(entries, toDomainLogEntry(m))
	}
	return entries, rows.Err()
}

func (r *PgxLogRepository) CountLogs(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM logs;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count logs: %w", err)
	}
	return count, nil
}
