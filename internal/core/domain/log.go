package domain

import "time"

// LogAction enumerates the document mutation actions that get dedicated
// audit descriptions. Any other action string is accepted for general
// logging and rendered generically.
type LogAction string

const (
	ActionCreate LogAction = "CREATE"
	ActionUpdate LogAction = "UPDATE"
	ActionDelete LogAction = "DELETE"
)

// LogEntry is an append-only audit trail record. Entries are never mutated
// or deleted once written.
type LogEntry struct {
	LogID       string    `json:"logId"` // LOG_<seq>_<date>
	Action      string    `json:"action"`
	Description string    `json:"description"`
	User        string    `json:"user"` // actor display name, "System" if unknown
	Timestamp   time.Time `json:"timestamp"`
}
