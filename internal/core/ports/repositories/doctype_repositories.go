package repositories

import (
	"context"

	"github.com/doctrackph/doctrack-backend/internal/core/domain"
)

// DocumentTypeRepository reads the document type reference table.
type DocumentTypeRepository interface {
	// ResolveTypeID maps a document type name to its reference ID.
	// Returns apperrors.ErrNotFound for an unknown name.
	ResolveTypeID(ctx context.Context, name string) (int64, error)

	ListTypes(ctx context.Context) ([]domain.DocumentType, error)
}
