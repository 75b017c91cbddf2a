package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/doctrackph/doctrack-backend/internal/apperrors"
	"github.com/doctrackph/doctrack-backend/internal/core/domain"
	portsrepo "github.com/doctrackph/doctrack-backend/internal/core/ports/repositories"
	"github.com/doctrackph/doctrack-backend/internal/models"
	"github.com/doctrackph/doctrack-backend/internal/utils/controlno"
)

const pgUniqueViolation = "23505"

type PgxDocumentRepository struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) portsrepo.DocumentRepository {
	return &PgxDocumentRepository{db: db}
}

var _ portsrepo.DocumentRepository = (*PgxDocumentRepository)(nil)

// --- line item jsonb helpers ---

func marshalStrings(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

func marshalDecimals(values []decimal.Decimal) ([]byte, error) {
	if values == nil {
		values = []decimal.Decimal{}
	}
	return json.Marshal(values)
}

func unmarshalStrings(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode particulars: %w", err)
	}
	return values, nil
}

func unmarshalDecimals(data []byte) ([]decimal.Decimal, error) {
	if len(data) == 0 {
		return []decimal.Decimal{}, nil
	}
	var values []decimal.Decimal
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode line item numbers: %w", err)
	}
	return values, nil
}

// --- sequence allocation ---

// allocateSequenceQuery atomically takes the next control-number sequence
// for a (ledger, month). The first allocation of a month seeds the counter
// from what the ledger already holds, so months with imported rows continue
// counting instead of restarting at 1. Later allocations increment the
// counter row; the per-ledger unique index on control_no is the backstop.
func allocateSequenceQuery(ledger domain.Ledger) string {
	return fmt.Sprintf(`
        INSERT INTO control_counters (ledger, year_month, last_seq)
        VALUES ($1, $2, (
            SELECT COALESCE(MAX((substring(control_no FROM '[^-]+$'))::bigint), 0) + 1
            FROM %s
            WHERE control_no LIKE $2 || '-%%'
        ))
        ON CONFLICT (ledger, year_month)
        DO UPDATE SET last_seq = control_counters.last_seq + 1
        RETURNING last_seq;
    `, ledgerTable(ledger))
}

func ledgerTable(ledger domain.Ledger) string {
	if ledger == domain.LedgerOutgoing {
		return "outgoing"
	}
	return "incoming"
}

func (r *PgxDocumentRepository) allocateSequence(ctx context.Context, tx pgx.Tx, ledger domain.Ledger, yearMonth string) (int64, error) {
	var seq int64
	err := tx.QueryRow(ctx, allocateSequenceQuery(ledger), string(ledger), yearMonth).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s sequence for %s: %w", ledger, yearMonth, err)
	}
	return seq, nil
}

func (r *PgxDocumentRepository) FindMaxSequence(ctx context.Context, ledger domain.Ledger, yearMonth string) (*int64, error) {
	query := fmt.Sprintf(`
        SELECT MAX((substring(control_no FROM '[^-]+$'))::bigint)
        FROM %s
        WHERE control_no LIKE $1 || '-%%';
    `, ledgerTable(ledger))

	var maxSeq *int64
	if err := r.db.QueryRow(ctx, query, yearMonth).Scan(&maxSeq); err != nil {
		return nil, fmt.Errorf("failed to find max %s sequence for %s: %w", ledger, yearMonth, err)
	}
	return maxSeq, nil
}

// --- incoming ledger ---

const incomingColumns = `
    i.id, i.control_no, i.date_received, i.date_of_ada, i.document_type_id, d.document_type,
    i.ada_no, i.jev_no, i.or_no, i.po_no, i.description,
    i.particulars, i.qty, i.amount, i.total_amount::text,
    i.payee, i.nature_of_payment, i.agency, i.status, i.storage_file,
    i.created_at, i.created_by, i.last_updated_at, i.last_updated_by`

func scanIncoming(row pgx.Row) (*models.IncomingDocument, error) {
	var m models.IncomingDocument
	err := row.Scan(
		&m.ID, &m.ControlNo, &m.DateReceived, &m.DateOfAda, &m.DocumentTypeID, &m.DocumentType,
		&m.AdaNo, &m.JevNo, &m.OrNo, &m.PoNo, &m.Description,
		&m.Particulars, &m.Qty, &m.Amount, &m.TotalAmount,
		&m.Payee, &m.NatureOfPayment, &m.Agency, &m.Status, &m.StorageFile,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func toDomainIncoming(m *models.IncomingDocument) (*domain.Document, error) {
	particulars, err := unmarshalStrings(m.Particulars)
	if err != nil {
		return nil, err
	}
	quantities, err := unmarshalDecimals(m.Qty)
	if err != nil {
		return nil, err
	}
	amounts, err := unmarshalDecimals(m.Amount)
	if err != nil {
		return nil, err
	}
	total, err := decimal.NewFromString(m.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to decode total amount %q: %w", m.TotalAmount, err)
	}

	return &domain.Document{
		ID:              m.ID,
		ControlNo:       m.ControlNo,
		DocumentType:    m.DocumentType,
		DocumentTypeID:  m.DocumentTypeID,
		Particulars:     particulars,
		Quantities:      quantities,
		Amounts:         amounts,
		TotalAmount:     total,
		Description:     m.Description,
		Agency:          m.Agency,
		Status:          m.Status,
		StorageFile:     m.StorageFile,
		DateReceived:    m.DateReceived,
		DateOfAda:       m.DateOfAda,
		AdaNo:           m.AdaNo,
		JevNo:           m.JevNo,
		OrNo:            m.OrNo,
		PoNo:            m.PoNo,
		Payee:           m.Payee,
		NatureOfPayment: m.NatureOfPayment,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

func (r *PgxDocumentRepository) CreateIncoming(ctx context.Context, doc domain.Document, yearMonth string) (*domain.Document, error) {
	particulars, err := marshalStrings(doc.Particulars)
	if err != nil {
		return nil, err
	}
	qty, err := marshalDecimals(doc.Quantities)
	if err != nil {
		return nil, err
	}
	amount, err := marshalDecimals(doc.Amounts)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	seq, err := r.allocateSequence(ctx, tx, domain.LedgerIncoming, yearMonth)
	if err != nil {
		return nil, err
	}
	doc.ControlNo = controlno.Format(yearMonth, seq)

	query := `
        INSERT INTO incoming (
            control_no, date_received, date_of_ada, document_type_id,
            ada_no, jev_no, or_no, po_no, description,
            particulars, qty, amount, total_amount,
            payee, nature_of_payment, agency, status, storage_file,
            created_at, created_by, last_updated_at, last_updated_by
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9,
            $10, $11, $12, $13::numeric,
            $14, $15, $16, $17, $18, $19, $20, $21, $22
        )
        RETURNING id;
    `
	err = tx.QueryRow(ctx, query,
		doc.ControlNo, doc.DateReceived, doc.DateOfAda, doc.DocumentTypeID,
		doc.AdaNo, doc.JevNo, doc.OrNo, doc.PoNo, doc.Description,
		particulars, qty, amount, doc.TotalAmount.String(),
		doc.Payee, doc.NatureOfPayment, doc.Agency, doc.Status, doc.StorageFile,
		doc.CreatedAt, doc.CreatedBy, doc.LastUpdatedAt, doc.LastUpdatedBy,
	).Scan(&doc.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: control number %s already assigned", apperrors.ErrDuplicate, doc.ControlNo)
		}
		return nil, fmt.Errorf("failed to insert incoming document: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit incoming insert: %w", err)
	}
	return &doc, nil
}

func (r *PgxDocumentRepository) FindIncomingByID(ctx context.Context, id int64) (*domain.Document, error) {
	query := `
        SELECT` + incomingColumns + `
        FROM incoming i
        JOIN documents d ON d.id = i.document_type_id
        WHERE i.id = $1;
    `
	m, err := scanIncoming(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find incoming document %d: %w", id, err)
	}
	return toDomainIncoming(m)
}

func (r *PgxDocumentRepository) ListIncoming(ctx context.Context) ([]domain.Document, error) {
	query := `
        SELECT` + incomingColumns + `
        FROM incoming i
        JOIN documents d ON d.id = i.document_type_id
        ORDER BY i.id DESC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query incoming documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		m, err := scanIncoming(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incoming document: %w", err)
		}
		doc, err := toDomainIncoming(m)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

func (r *PgxDocumentRepository) UpdateIncoming(ctx context.Context, doc domain.Document) error {
	particulars, err := marshalStrings(doc.Particulars)
	if err != nil {
		return err
	}
	qty, err := marshalDecimals(doc.Quantities)
	if err != nil {
		return err
	}
	amount, err := marshalDecimals(doc.Amounts)
	if err != nil {
		return err
	}

	query := `
        UPDATE incoming SET
            date_of_ada = $1,
            document_type_id = $2,
            ada_no = $3,
            jev_no = $4,
            or_no = $5,
            po_no = $6,
            description = $7,
            particulars = $8,
            qty = $9,
            amount = $10,
            total_amount = $11::numeric,
            payee = $12,
            nature_of_payment = $13,
            agency = $14,
            status = $15,
            storage_file = $16,
            last_updated_at = $17,
            last_updated_by = $18
        WHERE id = $19;
    `
	tag, err := r.db.Exec(ctx, query,
		doc.DateOfAda, doc.DocumentTypeID,
		doc.AdaNo, doc.JevNo, doc.OrNo, doc.PoNo, doc.Description,
		particulars, qty, amount, doc.TotalAmount.String(),
		doc.Payee, doc.NatureOfPayment, doc.Agency, doc.Status, doc.StorageFile,
		doc.LastUpdatedAt, doc.LastUpdatedBy, doc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incoming document %d: %w", doc.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDocumentRepository) DeleteIncoming(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM incoming WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incoming document %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDocumentRepository) CountIncoming(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM incoming;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count incoming documents: %w", err)
	}
	return count, nil
}

// --- outgoing ledger ---

const outgoingColumns = `
    o.id, o.control_no, o.date_released, o.document_type_id, d.document_type,
    o.description, o.particulars, o.qty, o.amount, o.total_amount::text,
    o.agency, o.status, o.received_by, o.storage_file,
    o.created_at, o.created_by, o.last_updated_at, o.last_updated_by`

func scanOutgoing(row pgx.Row) (*models.OutgoingDocument, error) {
	var m models.OutgoingDocument
	err := row.Scan(
		&m.ID, &m.ControlNo, &m.DateReleased, &m.DocumentTypeID, &m.DocumentType,
		&m.Description, &m.Particulars, &m.Qty, &m.Amount, &m.TotalAmount,
		&m.Agency, &m.Status, &m.ReceivedBy, &m.StorageFile,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func toDomainOutgoing(m *models.OutgoingDocument) (*domain.Document, error) {
	particulars, err := unmarshalStrings(m.Particulars)
	if err != nil {
		return nil, err
	}
	quantities, err := unmarshalDecimals(m.Qty)
	if err != nil {
		return nil, err
	}
	amounts, err := unmarshalDecimals(m.Amount)
	if err != nil {
		return nil, err
	}
	total, err := decimal.NewFromString(m.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to decode total amount %q: %w", m.TotalAmount, err)
	}

	return &domain.Document{
		ID:             m.ID,
		ControlNo:      m.ControlNo,
		DocumentType:   m.DocumentType,
		DocumentTypeID: m.DocumentTypeID,
		Particulars:    particulars,
		Quantities:     quantities,
		Amounts:        amounts,
		TotalAmount:    total,
		Description:    m.Description,
		Agency:         m.Agency,
		Status:         m.Status,
		StorageFile:    m.StorageFile,
		DateReleased:   m.DateReleased,
		ReceivedBy:     m.ReceivedBy,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

func (r *PgxDocumentRepository) CreateOutgoing(ctx context.Context, doc domain.Document, yearMonth string) (*domain.Document, error) {
	particulars, err := marshalStrings(doc.Particulars)
	if err != nil {
		return nil, err
	}
	qty, err := marshalDecimals(doc.Quantities)
	if err != nil {
		return nil, err
	}
	amount, err := marshalDecimals(doc.Amounts)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	seq, err := r.allocateSequence(ctx, tx, domain.LedgerOutgoing, yearMonth)
	if err != nil {
		return nil, err
	}
	doc.ControlNo = controlno.Format(yearMonth, seq)

	query := `
        INSERT INTO outgoing (
            control_no, date_released, document_type_id, description,
            particulars, qty, amount, total_amount,
            agency, status, received_by, storage_file,
            created_at, created_by, last_updated_at, last_updated_by
        ) VALUES (
            $1, $2, $3, $4,
            $5, $6, $7, $8::numeric,
            $9, $10, $11, $12, $13, $14, $15, $16
        )
        RETURNING id;
    `
	err = tx.QueryRow(ctx, query,
		doc.ControlNo, doc.DateReleased, doc.DocumentTypeID, doc.Description,
		particulars, qty, amount, doc.TotalAmount.String(),
		doc.Agency, doc.Status, doc.ReceivedBy, doc.StorageFile,
		doc.CreatedAt, doc.CreatedBy, doc.LastUpdatedAt, doc.LastUpdatedBy,
	).Scan(&doc.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: control number %s already assigned", apperrors.ErrDuplicate, doc.ControlNo)
		}
		return nil, fmt.Errorf("failed to insert outgoing document: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit outgoing insert: %w", err)
	}
	return &doc, nil
}

func (r *PgxDocumentRepository) FindOutgoingByID(ctx context.Context, id int64) (*domain.Document, error) {
	query := `
        SELECT` + outgoingColumns + `
        FROM outgoing o
        JOIN documents d ON d.id = o.document_type_id
        WHERE o.id = $1;
    `
	m, err := scanOutgoing(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find outgoing document %d: %w", id, err)
	}
	return toDomainOutgoing(m)
}

func (r *PgxDocumentRepository) ListOutgoing(ctx context.Context) ([]domain.Document, error) {
	query := `
        SELECT` + outgoingColumns + `
        FROM outgoing o
        JOIN documents d ON d.id = o.document_type_id
        ORDER BY o.id DESC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query outgoing documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		m, err := scanOutgoing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outgoing document: %w", err)
		}
		doc, err := toDomainOutgoing(m)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

func (r *PgxDocumentRepository) UpdateOutgoing(ctx context.Context, doc domain.Document) error {
	particulars, err := marshalStrings(doc.Particulars)
	if err != nil {
		return err
	}
	qty, err := marshalDecimals(doc.Quantities)
	if err != nil {
		return err
	}
	amount, err := marshalDecimals(doc.Amounts)
	if err != nil {
		return err
	}

	query := `
        UPDATE outgoing SET
            date_released = $1,
            document_type_id = $2,
            description = $3,
            particulars = $4,
            qty = $5,
            amount = $6,
            total_amount = $7::numeric,
            agency = $8,
            status = $9,
            received_by = $10,
            storage_file = $11,
            last_updated_at = $12,
            last_updated_by = $13
        WHERE id = $14;
    `
	tag, err := r.db.Exec(ctx, query,
		doc.DateReleased, doc.DocumentTypeID, doc.Description,
		particulars, qty, amount, doc.TotalAmount.String(),
		doc.Agency, doc.Status, doc.ReceivedBy, doc.StorageFile,
		doc.LastUpdatedAt, doc.LastUpdatedBy, doc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update outgoing document %d: %w", doc.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDocumentRepository) DeleteOutgoing(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM outgoing WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete outgoing document %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDocumentRepository) CountOutgoing(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM outgoing;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count outgoing documents: %w", err)
	}
	return count, nil
}
