// Package models holds the database row shapes scanned by the pgsql
// repositories. Particulars, quantities and amounts are stored as jsonb
// arrays, mirroring how the register keeps line items with the document row
// rather than in a child table.
package models

import "time"

// AuditFields mirrors the standard audit columns.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}

// IncomingDocument is a row of the incoming ledger.
type IncomingDocument struct {
	ID              int64
	ControlNo       string
	DateReceived    string
	DateOfAda       string
	DocumentTypeID  int64
	DocumentType    string // joined from the reference table
	AdaNo           string
	JevNo           string
	OrNo            string
	PoNo            string
	Description     string
	Particulars     []byte // jsonb
	Qty             []byte // jsonb
	Amount          []byte // jsonb
	TotalAmount     string
	Payee           string
	NatureOfPayment string
	Agency          string
	Status          string
	StorageFile     string
	AuditFields
}

// OutgoingDocument is a row of the outgoing ledger.
type OutgoingDocument struct {
	ID             int64
	ControlNo      string
	DateReleased   string
	DocumentTypeID int64
	DocumentType   string // joined from the reference table
	Description    string
	Particulars    []byte // jsonb
	Qty            []byte // jsonb
	Amount         []byte // jsonb
	TotalAmount    string
	Agency         string
	Status         string
	ReceivedBy     string
	StorageFile    string
	AuditFields
}

// DocumentType is a row of the type reference table.
type DocumentType struct {
	ID   int64
	Name string
}

// LogEntry is a row of the append-only logs table.
type LogEntry struct {
	LogID       string
	Action      string
	Description string
	UserName    string
	Timestamp   time.Time
}

// User is a row of the users table.
type User struct {
	UserID       string
	IDNumber     string
	FirstName    string
	MiddleName   string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	Address      string
	AuditFields
}
