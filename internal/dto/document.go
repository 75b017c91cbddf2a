package dto

import (
	"github.com/doctrackph/doctrack-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomingRequest carries a new incoming document. The date received
// and control number are assigned server-side.
type CreateIncomingRequest struct {
	DocumentType    string        `json:"documentType" binding:"required"`
	DateOfAda       string        `json:"dateOfAda"`
	AdaNo           string        `json:"adaNo"`
	JevNo           string        `json:"jevNo"`
	OrNo            string        `json:"orNo"`
	PoNo            string        `json:"poNo"`
	Description     string        `json:"description"`
	Items           []string      `json:"items"`
	Quantities      []LooseNumber `json:"quantities"`
	Amounts         []LooseNumber `json:"amounts"`
	Payee           string        `json:"payee"`
	NatureOfPayment string        `json:"natureOfPayment"`
	Agency          string        `json:"agency"`
	Status          string        `json:"status"`
	StorageFile     string        `json:"storageFile"`
}

// UpdateIncomingRequest is a full-field replacement of an incoming document.
// This is the stricter of the register's two historical update contracts:
// dateOfAda, documentType, agency and status are always required, plus the
// type-specific reference number and at least one non-empty particular.
type UpdateIncomingRequest struct {
	DateOfAda       string        `json:"dateOfAda" binding:"required"`
	DocumentType    string        `json:"documentType" binding:"required"`
	AdaNo           string        `json:"adaNo"`
	JevNo           string        `json:"jevNo"`
	OrNo            string        `json:"orNo"`
	PoNo            string        `json:"poNo"`
	Description     string        `json:"description"`
	Items           []string      `json:"items"`
	Quantities      []LooseNumber `json:"quantities"`
	Amounts         []LooseNumber `json:"amounts"`
	Payee           string        `json:"payee"`
	NatureOfPayment string        `json:"natureOfPayment"`
	Agency          string        `json:"agency" binding:"required"`
	Status          string        `json:"status" binding:"required"`
	StorageFile     string        `json:"storageFile"`
}

// CreateOutgoingRequest carries a new outgoing document. The release date
// and control number are assigned server-side.
type CreateOutgoingRequest struct {
	DocumentType string        `json:"documentType" binding:"required"`
	Description  string        `json:"description"`
	Items        []string      `json:"items" binding:"required,min=1"`
	Quantities   []LooseNumber `json:"quantities"`
	Amounts      []LooseNumber `json:"amounts"`
	Agency       string        `json:"agency" binding:"required"`
	Status       string        `json:"status" binding:"required"`
	ReceivedBy   string        `json:"receivedBy" binding:"required"`
	StorageFile  string        `json:"storageFile"`
}

// UpdateOutgoingRequest is a partial update: only fields present in the
// payload are touched. Particulars are replaced only when items, quantities
// and amounts are all provided, and the total is recomputed then.
type UpdateOutgoingRequest struct {
	DocumentType *string        `json:"documentType"`
	DateReleased *string        `json:"dateReleased"`
	Description  *string        `json:"description"`
	Items        *[]string      `json:"items"`
	Quantities   *[]LooseNumber `json:"quantities"`
	Amounts      *[]LooseNumber `json:"amounts"`
	Agency       *string        `json:"agency"`
	Status       *string        `json:"status"`
	ReceivedBy   *string        `json:"receivedBy"`
	StorageFile  *string        `json:"storageFile"`
}

// DocumentResponse is the wire shape of a register document.
type DocumentResponse struct {
	ID           int64             `json:"id"`
	ControlNo    string            `json:"controlNo"`
	DocumentType string            `json:"documentType"`
	Particulars  []string          `json:"particulars"`
	Quantities   []decimal.Decimal `json:"quantities"`
	Amounts      []decimal.Decimal `json:"amounts"`
	TotalAmount  decimal.Decimal   `json:"totalAmount"`
	Description  string            `json:"description"`
	Agency       string            `json:"agency"`
	Status       string            `json:"status"`
	StorageFile  string            `json:"storageFile"`

	DateReceived    string `json:"dateReceived,omitempty"`
	DateOfAda       string `json:"dateOfAda,omitempty"`
	AdaNo           string `json:"adaNo,omitempty"`
	JevNo           string `json:"jevNo,omitempty"`
	OrNo            string `json:"orNo,omitempty"`
	PoNo            string `json:"poNo,omitempty"`
	Payee           string `json:"payee,omitempty"`
	NatureOfPayment string `json:"natureOfPayment,omitempty"`

	DateReleased string `json:"dateReleased,omitempty"`
	ReceivedBy   string `json:"receivedBy,omitempty"`
}

// ToDocumentResponse converts a domain document to its wire shape.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:              d.ID,
		ControlNo:       d.ControlNo,
		DocumentType:    d.DocumentType,
		Particulars:     d.Particulars,
		Quantities:      d.Quantities,
		Amounts:         d.Amounts,
		TotalAmount:     d.TotalAmount,
		Description:     d.Description,
		Agency:          d.Agency,
		Status:          d.Status,
		StorageFile:     d.StorageFile,
		DateReceived:    d.DateReceived,
		DateOfAda:       d.DateOfAda,
		AdaNo:           d.AdaNo,
		JevNo:           d.JevNo,
		OrNo:            d.OrNo,
		PoNo:            d.PoNo,
		Payee:           d.Payee,
		NatureOfPayment: d.NatureOfPayment,
		DateReleased:    d.DateReleased,
		ReceivedBy:      d.ReceivedBy,
	}
}

// ListDocumentsResponse wraps a ledger listing.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

// ToListDocumentsResponse converts a slice of domain documents.
func ToListDocumentsResponse(docs []domain.Document) ListDocumentsResponse {
	out := make([]DocumentResponse, len(docs))
	for i := range docs {
		out[i] = ToDocumentResponse(&docs[i])
	}
	return ListDocumentsResponse{Documents: out}
}

// DocumentTypeResponse is one entry of the type reference table.
type DocumentTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"documentType"`
}

// ListDocumentTypesResponse wraps the type reference listing.
type ListDocumentTypesResponse struct {
	DocumentTypes []DocumentTypeResponse `json:"documentTypes"`
}

// ToListDocumentTypesResponse converts a slice of domain document types.
func ToListDocumentTypesResponse(types []domain.DocumentType) ListDocumentTypesResponse {
	out := make([]DocumentTypeResponse, len(types))
	for i, t := range types {
		out[i] = DocumentTypeResponse{ID: t.ID, Name: t.Name}
	}
	return ListDocumentTypesResponse{DocumentTypes: out}
}
