package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/doctrackph/doctrack-backend/internal/apperrors"
	"github.com/doctrackph/doctrack-backend/internal/core/domain"
	portsrepo "github.com/doctrackph/doctrack-backend/internal/core/ports/repositories"
	portssvc "github.com/doctrackph/doctrack-backend/internal/core/ports/services"
	"github.com/doctrackph/doctrack-backend/internal/dto"
	"github.com/doctrackph/doctrack-backend/internal/middleware"
	"github.com/doctrackph/doctrack-backend/internal/utils/controlno"
	"github.com/doctrackph/doctrack-backend/internal/utils/lineitems"
)

var (
	ErrInvalidDocumentType = errors.New("invalid document type")
	ErrNoParticulars       = errors.New("at least one valid particular is required")
	ErrEmptyParticular     = errors.New("all particulars must have a description")
)

// documentService implements the register operations for both ledgers.
type documentService struct {
	docRepo  portsrepo.DocumentRepository
	typeRepo portsrepo.DocumentTypeRepository
	auditSvc portssvc.AuditLogSvcFacade
}

// NewDocumentService creates the document register service.
func NewDocumentService(docRepo portsrepo.DocumentRepository, typeRepo portsrepo.DocumentTypeRepository, auditSvc portssvc.AuditLogSvcFacade) portssvc.DocumentSvcFacade {
	return &documentService{
		docRepo:  docRepo,
		typeRepo: typeRepo,
		auditSvc: auditSvc,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// resolveType maps a document type name through the reference table; an
// unknown name is a validation failure.
func (s *documentService) resolveType(ctx context.Context, name string) (int64, error) {
	typeID, err := s.typeRepo.ResolveTypeID(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidDocumentType)
		}
		return 0, err
	}
	return typeID, nil
}

// normalizeLists pads quantities and amounts with zeroes up to the item
// count. The register accepts shorter lists rather than rejecting them.
func normalizeLists(items []string, quantities, amounts []decimal.Decimal) ([]decimal.Decimal, []decimal.Decimal) {
	qty := make([]decimal.Decimal, len(items))
	amt := make([]decimal.Decimal, len(items))
	for i := range items {
		qty[i] = decimal.Zero
		amt[i] = decimal.Zero
		if i < len(quantities) {
			qty[i] = quantities[i]
		}
		if i < len(amounts) {
			amt[i] = amounts[i]
		}
	}
	return qty, amt
}

// logMutation appends the audit entry for a document mutation. Failures are
// reported and swallowed: the document write already committed and the
// audit trail is best-effort.
func (s *documentService) logMutation(ctx context.Context, action domain.LogAction, documentType, controlNo string, changes *domain.ChangeSet, actorUserID string) {
	if err := s.auditSvc.LogDocumentAction(ctx, action, documentType, controlNo, changes, actorUserID); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to append audit log entry",
			slog.String("action", string(action)),
			slog.String("control_no", controlNo),
			slog.String("error", err.Error()),
		)
	}
}

// CreateIncoming registers a new incoming document. The control number is
// allocated atomically for the current calendar month and the date received
// is stamped server-side.
func (s *documentService) CreateIncoming(ctx context.Context, req dto.CreateIncomingRequest, actorUserID string) (*domain.Document, error) {
	typeID, err := s.resolveType(ctx, req.DocumentType)
	if err != nil {
		return nil, err
	}

	quantities, amounts := normalizeLists(req.Items, dto.Decimals(req.Quantities), dto.Decimals(req.Amounts))

	// Reference numbers only apply to their own document type; the rest
	// are stored blank.
	adaNo, jevNo, orNo, poNo := "", "", "", ""
	switch req.DocumentType {
	case domain.DocTypeDisbursementVoucher:
		adaNo, jevNo = req.AdaNo, req.JevNo
	case domain.DocTypeOfficialReceipt:
		orNo = req.OrNo
	case domain.DocTypePurchaseOrder:
		poNo = req.PoNo
	}

	now := time.Now().UTC()
	doc := domain.Document{
		DocumentType:    req.DocumentType,
		DocumentTypeID:  typeID,
		Particulars:     req.Items,
		Quantities:      quantities,
		Amounts:         amounts,
		TotalAmount:     lineitems.Total(req.Items, quantities, amounts),
		Description:     req.Description,
		Agency:          req.Agency,
		Status:          req.Status,
		StorageFile:     req.StorageFile,
		DateReceived:    now.Format("2006-01-02"),
		DateOfAda:       req.DateOfAda,
		AdaNo:           adaNo,
		JevNo:           jevNo,
		OrNo:            orNo,
		PoNo:            poNo,
		Payee:           req.Payee,
		NatureOfPayment: req.NatureOfPayment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	created, err := s.docRepo.CreateIncoming(ctx, doc, controlno.YearMonth(now))
	if err != nil {
		return nil, err
	}

	s.logMutation(ctx, domain.ActionCreate, created.DocumentType, created.ControlNo, nil, actorUserID)
	return created, nil
}

func (s *documentService) ListIncoming(ctx context.Context) ([]domain.Document, error) {
	return s.docRepo.ListIncoming(ctx)
}

// UpdateIncoming is a full-field replacement. The control number and date
// received are immutable; the total is recomputed from the submitted lists.
func (s *documentService) UpdateIncoming(ctx context.Context, id int64, req dto.UpdateIncomingRequest, actorUserID string) (*domain.Document, error) {
	original, err := s.docRepo.FindIncomingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireTypeReference(req.DocumentType, req.AdaNo, req.OrNo, req.PoNo); err != nil {
		return nil, err
	}
	if countNonEmpty(req.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNoParticulars)
	}

	typeID, err := s.resolveType(ctx, req.DocumentType)
	if err != nil {
		return nil, err
	}

	quantities, amounts := normalizeLists(req.Items, dto.Decimals(req.Quantities), dto.Decimals(req.Amounts))

	now := time.Now().UTC()
	updated := domain.Document{
		ID:              original.ID,
		ControlNo:       original.ControlNo,
		DocumentType:    req.DocumentType,
		DocumentTypeID:  typeID,
		Particulars:     req.Items,
		Quantities:      quantities,
		Amounts:         amounts,
		TotalAmount:     lineitems.Total(req.Items, quantities, amounts),
		Description:     req.Description,
		Agency:          req.Agency,
		Status:          req.Status,
		StorageFile:     req.StorageFile,
		DateReceived:    original.DateReceived,
		DateOfAda:       req.DateOfAda,
		AdaNo:           req.AdaNo,
		JevNo:           req.JevNo,
		OrNo:            req.OrNo,
		PoNo:            req.PoNo,
		Payee:           req.Payee,
		NatureOfPayment: req.NatureOfPayment,
		AuditFields: domain.AuditFields{
			CreatedAt:     original.CreatedAt,
			CreatedBy:     original.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.docRepo.UpdateIncoming(ctx, updated); err != nil {
		return nil, err
	}

	changes := domain.TrackChanges(domain.LedgerIncoming, *original, updated)
	s.logMutation(ctx, domain.ActionUpdate, updated.DocumentType, updated.ControlNo, &changes, actorUserID)
	return &updated, nil
}

func (s *documentService) DeleteIncoming(ctx context.Context, id int64, actorUserID string) error {
	doc, err := s.docRepo.FindIncomingByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.docRepo.DeleteIncoming(ctx, id); err != nil {
		return err
	}
	s.logMutation(ctx, domain.ActionDelete, doc.DocumentType, doc.ControlNo, nil, actorUserID)
	return nil
}

// CreateOutgoing registers a new outgoing document. The release date is
// stamped server-side.
func (s *documentService) CreateOutgoing(ctx context.Context, req dto.CreateOutgoingRequest, actorUserID string) (*domain.Document, error) {
	for _, item := range req.Items {
		if strings.TrimSpace(item) == "" {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEmptyParticular)
		}
	}

	typeID, err := s.resolveType(ctx, req.DocumentType)
	if err != nil {
		return nil, err
	}

	quantities, amounts := normalizeLists(req.Items, dto.Decimals(req.Quantities), dto.Decimals(req.Amounts))

	now := time.Now().UTC()
	doc := domain.Document{
		DocumentType:   req.DocumentType,
		DocumentTypeID: typeID,
		Particulars:    req.Items,
		Quantities:     quantities,
		Amounts:        amounts,
		TotalAmount:    lineitems.Total(req.Items, quantities, amounts),
		Description:    req.Description,
		Agency:         req.Agency,
		Status:         req.Status,
		StorageFile:    req.StorageFile,
		DateReleased:   now.Format("2006-01-02"),
		ReceivedBy:     req.ReceivedBy,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	created, err := s.docRepo.CreateOutgoing(ctx, doc, controlno.YearMonth(now))
	if err != nil {
		return nil, err
	}

	s.logMutation(ctx, domain.ActionCreate, created.DocumentType, created.ControlNo, nil, actorUserID)
	return created, nil
}

func (s *documentService) ListOutgoing(ctx context.Context) ([]domain.Document, error) {
	return s.docRepo.ListOutgoing(ctx)
}

// UpdateOutgoing applies a partial update: only the fields present in the
// request are replaced. Particulars change together or not at all.
func (s *documentService) UpdateOutgoing(ctx context.Context, id int64, req dto.UpdateOutgoingRequest, actorUserID string) (*domain.Document, error) {
	original, err := s.docRepo.FindOutgoingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *original

	if req.DocumentType != nil && *req.DocumentType != "" {
		typeID, err := s.resolveType(ctx, *req.DocumentType)
		if err != nil {
			return nil, err
		}
		updated.DocumentType = *req.DocumentType
		updated.DocumentTypeID = typeID
	}
	if req.DateReleased != nil {
		updated.DateReleased = *req.DateReleased
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.StorageFile != nil {
		updated.StorageFile = *req.StorageFile
	}
	if req.Agency != nil {
		updated.Agency = *req.Agency
	}
	if req.Status != nil {
		updated.Status = *req.Status
	}
	if req.ReceivedBy != nil {
		updated.ReceivedBy = *req.ReceivedBy
	}

	if req.Items != nil && req.Quantities != nil && req.Amounts != nil {
		quantities, amounts := normalizeLists(*req.Items, dto.Decimals(*req.Quantities), dto.Decimals(*req.Amounts))
		updated.Particulars = *req.Items
		updated.Quantities = quantities
		updated.Amounts = amounts
		updated.TotalAmount = lineitems.Total(*req.Items, quantities, amounts)
	}

	now := time.Now().UTC()
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actorUserID

	if err := s.docRepo.UpdateOutgoing(ctx, updated); err != nil {
		return nil, err
	}

	changes := domain.TrackChanges(domain.LedgerOutgoing, *original, updated)
	s.logMutation(ctx, domain.ActionUpdate, updated.DocumentType, updated.ControlNo, &changes, actorUserID)
	return &updated, nil
}

func (s *documentService) DeleteOutgoing(ctx context.Context, id int64, actorUserID string) error {
	doc, err := s.docRepo.FindOutgoingByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.docRepo.DeleteOutgoing(ctx, id); err != nil {
		return err
	}
	s.logMutation(ctx, domain.ActionDelete, doc.DocumentType, doc.ControlNo, nil, actorUserID)
	return nil
}

func (s *documentService) ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error) {
	return s.typeRepo.ListTypes(ctx)
}

// requireTypeReference enforces the type-specific reference number on the
// full-replace incoming update.
func requireTypeReference(documentType, adaNo, orNo, poNo string) error {
	missing := ""
	switch documentType {
	case domain.DocTypeDisbursementVoucher:
		if adaNo == "" {
			missing = "adaNo"
		}
	case domain.DocTypeOfficialReceipt:
		if orNo == "" {
			missing = "orNo"
		}
	case domain.DocTypePurchaseOrder:
		if poNo == "" {
			missing = "poNo"
		}
	}
	if missing != "" {
		return fmt.Errorf("%w: %s is required", apperrors.ErrValidation, missing)
	}
	return nil
}

func countNonEmpty(items []string) int {
	n := 0
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			n++
		}
	}
	return n
}
