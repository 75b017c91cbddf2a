package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doctrackph/doctrack-backend/internal/apperrors"
	"github.com/doctrackph/doctrack-backend/internal/core/domain"
	portsrepo "github.com/doctrackph/doctrack-backend/internal/core/ports/repositories"
)

type PgxDocumentTypeRepository struct {
	db *pgxpool.Pool
}

func NewDocumentTypeRepository(db *pgxpool.Pool) portsrepo.DocumentTypeRepository {
	return &PgxDocumentTypeRepository{db: db}
}

var _ portsrepo.DocumentTypeRepository = (*PgxDocumentTypeRepository)(nil)

func (r *PgxDocumentTypeRepository) ResolveTypeID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM documents WHERE document_type = $1;`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to resolve document type %q: %w", name, err)
	}
	return id, nil
}

func (r *PgxDocumentTypeRepository) ListTypes(ctx context.Context) ([]domain.DocumentType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, document_type FROM documents ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query document types: %w", err)
	}
	defer rows.Close()

	var types []domain.DocumentType
	for rows.Next() {
		var t domain.DocumentType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan document type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}
