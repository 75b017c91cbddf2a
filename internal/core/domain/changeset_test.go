package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doctrackph/doctrack-backend/internal/core/domain"
)

func TestTrackChanges_NoChanges(t *testing.T) {
	doc := domain.Document{
		ControlNo:    "2024-05-001",
		DocumentType: domain.DocTypeDisbursementVoucher,
		Agency:       "Provincial Treasury",
		Status:       "Received",
		Particulars:  []string{"Office supplies"},
	}

	cs := domain.TrackChanges(domain.LedgerIncoming, doc, doc)

	assert.True(t, cs.IsEmpty())
	assert.Empty(t, cs.Fields)
	assert.False(t, cs.ParticularsUpdated)
}

func TestTrackChanges_ScalarChange(t *testing.T) {
	original := domain.Document{
		ControlNo: "2024-05-001",
		Status:    "Received",
	}
	updated := original
	updated.Status = "Released"

	cs := domain.TrackChanges(domain.LedgerOutgoing, original, updated)

	assert.Len(t, cs.Fields, 1)
	assert.Equal(t, domain.FieldChange{From: "Received", To: "Released"}, cs.Fields["status"])
	assert.False(t, cs.ParticularsUpdated)
}

func TestTrackChanges_EmptyValuesUseSentinel(t *testing.T) {
	original := domain.Document{ControlNo: "2024-05-002"}
	updated := original
	updated.Agency = "Provincial Treasury"
	updated.StorageFile = ""

	cs := domain.TrackChanges(domain.LedgerOutgoing, original, updated)

	assert.Equal(t, domain.FieldChange{From: "(empty)", To: "Provincial Treasury"}, cs.Fields["agency"])

	// Clearing a value renders the sentinel on the destination side.
	cleared := domain.TrackChanges(domain.LedgerOutgoing, updated, original)
	assert.Equal(t, domain.FieldChange{From: "Provincial Treasury", To: "(empty)"}, cleared.Fields["agency"])
}

func TestTrackChanges_IncomingFieldsOnlyTrackedForIncoming(t *testing.T) {
	original := domain.Document{ControlNo: "2024-05-003"}
	updated := original
	updated.Payee = "Juan dela Cruz"

	incoming := domain.TrackChanges(domain.LedgerIncoming, original, updated)
	assert.Equal(t, domain.FieldChange{From: "(empty)", To: "Juan dela Cruz"}, incoming.Fields["payee"])

	outgoing := domain.TrackChanges(domain.LedgerOutgoing, original, updated)
	assert.True(t, outgoing.IsEmpty())
}

func TestTrackChanges_ParticularsRequireScalarChange(t *testing.T) {
	original := domain.Document{
		ControlNo:   "2024-05-004",
		Status:      "Received",
		Particulars: []string{"Bond paper"},
	}

	// Particulars-only edit: nothing is reported.
	itemsOnly := original
	itemsOnly.Particulars = []string{"Bond paper", "Staplers"}
	cs := domain.TrackChanges(domain.LedgerIncoming, original, itemsOnly)
	assert.True(t, cs.IsEmpty())
	assert.False(t, cs.ParticularsUpdated)

	// Particulars change alongside a scalar change: the marker is set.
	both := itemsOnly
	both.Status = "Released"
	cs = domain.TrackChanges(domain.LedgerIncoming, original, both)
	assert.Len(t, cs.Fields, 1)
	assert.True(t, cs.ParticularsUpdated)
}

func TestTrackChanges_ReorderedParticularsCount(t *testing.T) {
	original := domain.Document{
		Status:      "Received",
		Particulars: []string{"A", "B"},
	}
	updated := original
	updated.Status = "Released"
	updated.Particulars = []string{"B", "A"}

	cs := domain.TrackChanges(domain.LedgerIncoming, original, updated)
	assert.True(t, cs.ParticularsUpdated)
}
