package domain

// EmptyFieldSentinel is how absent values are rendered in change sets and
// audit log descriptions. The inclusion check itself compares raw values.
const EmptyFieldSentinel = "(empty)"

// FieldChange records a single field transition.
type FieldChange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ChangeSet is a field-level diff between two versions of a document,
// used to build audit log descriptions.
type ChangeSet struct {
	Fields             map[string]FieldChange `json:"fields"`
	ParticularsUpdated bool                   `json:"particularsUpdated,omitempty"`
}

// IsEmpty reports whether the change set carries nothing worth logging.
func (c ChangeSet) IsEmpty() bool {
	return len(c.Fields) == 0 && !c.ParticularsUpdated
}

// TrackChanges diffs two versions of a document over the fixed comparison
// list: the common fields, then the incoming-only fields when the document
// belongs to the incoming ledger.
//
// The particulars list is compared structurally. Matching the register's
// long-standing behaviour, ParticularsUpdated is only set when at least one
// scalar field changed as well; a particulars-only edit yields an empty
// change set.
func TrackChanges(ledger Ledger, original, updated Document) ChangeSet {
	cs := ChangeSet{Fields: make(map[string]FieldChange)}

	fields := CommonTrackedFields
	if ledger == LedgerIncoming {
		fields = append(append([]string{}, fields...), IncomingTrackedFields...)
	}

	for _, field := range fields {
		from := original.TrackedFieldValue(field)
		to := updated.TrackedFieldValue(field)
		if from != to {
			cs.Fields[field] = FieldChange{
				From: orEmptySentinel(from),
				To:   orEmptySentinel(to),
			}
		}
	}

	if len(cs.Fields) > 0 && !equalParticulars(original.Particulars, updated.Particulars) {
		cs.ParticularsUpdated = true
	}

	return cs
}

func orEmptySentinel(v string) string {
	if v == "" {
		return EmptyFieldSentinel
	}
	return v
}

func equalParticulars(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
