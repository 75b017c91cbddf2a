package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/doctrackph/doctrack-backend/internal/core/ports/repositories"
)

// RepositoryContainer bundles all pgsql repositories built from one pool.
type RepositoryContainer struct {
	Document     portsrepo.DocumentRepository
	DocumentType portsrepo.DocumentTypeRepository
	Log          portsrepo.LogRepository
	User         portsrepo.UserRepository
}

// NewRepositoryContainer wires every repository to the shared pool.
func NewRepositoryContainer(db *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		Document:     NewDocumentRepository(db),
		DocumentType: NewDocumentTypeRepository(db),
		Log:          NewLogRepository(db),
		User:         NewUserRepository(db),
	}
}
