package dto

import (
	"time"

	"github.com/doctrackph/doctrack-backend/internal/core/domain"
)

// CreateLogRequest appends a general (free-text action) audit entry.
// Document mutations log themselves; this endpoint covers everything else
// the front end wants on the trail (logins, exports, ...).
type CreateLogRequest struct {
	Action       string `json:"action" binding:"required"`
	Description  string `json:"description"`
	DocumentType string `json:"documentType"`
	ControlNo    string `json:"controlNo"`
}

// LogResponse is the wire shape of an audit entry.
type LogResponse struct {
	LogID       string    `json:"logId"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	User        string    `json:"user"`
	Timestamp   time.Time `json:"timestamp"`
}

// ToLogResponse converts a domain log entry.
func ToLogResponse(e *domain.LogEntry) LogResponse {
	return LogResponse{
		LogID:       e.LogID,
		Action:      e.Action,
		Description: e.Description,
		User:        e.User,
		Timestamp:   e.Timestamp,
	}
}

// ListLogsResponse wraps the audit trail listing.
type ListLogsResponse struct {
	Logs []LogResponse `json:"logs"`
}

// ToListLogsResponse converts a slice of domain log entries.
func ToListLogsResponse(entries []domain.LogEntry) ListLogsResponse {
	out := make([]LogResponse, len(entries))
	for i := range entries {
		out[i] = ToLogResponse(&entries[i])
	}
	return ListLogsResponse{Logs: out}
}

// DashboardCountsResponse feeds the dashboard tiles.
type DashboardCountsResponse struct {
	Incoming int64 `json:"incoming"`
	Outgoing int64 `json:"outgoing"`
	Users    int64 `json:"users"`
	Logs     int64 `json:"logs"`
}
