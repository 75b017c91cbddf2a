package domain

import "github.com/shopspring/decimal"

// Ledger identifies one of the two document registers. Each ledger has its
// own control-number sequence space.
type Ledger string

const (
	LedgerIncoming Ledger = "incoming"
	LedgerOutgoing Ledger = "outgoing"
)

// Known document type names that carry type-specific reference numbers.
const (
	DocTypeDisbursementVoucher = "Disbursement Voucher"
	DocTypeOfficialReceipt     = "Official Receipt"
	DocTypePurchaseOrder       = "Purchase Order"
)

// DocumentType is an entry in the document type reference table.
type DocumentType struct {
	ID   int64  `json:"id"`
	Name string `json:"documentType"`
}

// Document is a register entry in either ledger. Incoming and outgoing
// documents share a common shape; the variant-specific fields are simply
// unused for the other ledger.
//
// Particulars, Quantities and Amounts are index-aligned; entries missing
// from the shorter lists are treated as zero rather than rejected.
type Document struct {
	ID           int64  `json:"id"`
	ControlNo    string `json:"controlNo"`
	DocumentType string `json:"documentType"`

	// DocumentTypeID is the resolved reference-table ID for DocumentType.
	DocumentTypeID int64 `json:"-"`

	Particulars []string          `json:"particulars"`
	Quantities  []decimal.Decimal `json:"quantities"`
	Amounts     []decimal.Decimal `json:"amounts"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`

	Description string `json:"description"`
	Agency      string `json:"agency"`
	Status      string `json:"status"`
	StorageFile string `json:"storageFile"`

	// Incoming-only fields.
	DateReceived    string `json:"dateReceived,omitempty"`
	DateOfAda       string `json:"dateOfAda,omitempty"`
	AdaNo           string `json:"adaNo,omitempty"`
	JevNo           string `json:"jevNo,omitempty"`
	OrNo            string `json:"orNo,omitempty"`
	PoNo            string `json:"poNo,omitempty"`
	Payee           string `json:"payee,omitempty"`
	NatureOfPayment string `json:"natureOfPayment,omitempty"`

	// Outgoing-only fields.
	DateReleased string `json:"dateReleased,omitempty"`
	ReceivedBy   string `json:"receivedBy,omitempty"`

	AuditFields
}

// CommonTrackedFields is the fixed order in which shared document fields
// are compared and reported in audit log descriptions.
var CommonTrackedFields = []string{
	"controlNo",
	"dateReleased",
	"documentType",
	"description",
	"agency",
	"status",
	"receivedBy",
	"storageFile",
}

// IncomingTrackedFields extends the comparison list for the incoming ledger.
var IncomingTrackedFields = []string{
	"dateOfAda",
	"adaNo",
	"jevNo",
	"orNo",
	"poNo",
	"payee",
	"natureOfPayment",
}

// TrackedFieldValue returns the raw value of a tracked scalar field.
func (d Document) TrackedFieldValue(field string) string {
	switch field {
	case "controlNo":
		return d.ControlNo
	case "dateReleased":
		return d.DateReleased
	case "documentType":
		return d.DocumentType
	case "description":
		return d.Description
	case "agency":
		return d.Agency
	case "status":
		return d.Status
	case "receivedBy":
		return d.ReceivedBy
	case "storageFile":
		return d.StorageFile
	case "dateOfAda":
		return d.DateOfAda
	case "adaNo":
		return d.AdaNo
	case "jevNo":
		return d.JevNo
	case "orNo":
		return d.OrNo
	case "poNo":
		return d.PoNo
	case "payee":
		return d.Payee
	case "natureOfPayment":
		return d.NatureOfPayment
	}
	return ""
}
