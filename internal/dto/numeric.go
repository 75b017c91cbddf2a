package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// LooseNumber is the register's permissive numeric input type: it accepts a
// JSON number, a numeric-looking string, or null, and coerces anything else
// to zero instead of rejecting the payload. Quantities and amounts arrive
// from spreadsheet-ish UIs and are deliberately lenient.
type LooseNumber struct {
	value decimal.Decimal
}

// NewLooseNumber wraps a decimal for use in request fixtures.
func NewLooseNumber(d decimal.Decimal) LooseNumber {
	return LooseNumber{value: d}
}

// Decimal returns the coerced value.
func (n LooseNumber) Decimal() decimal.Decimal {
	return n.value
}

// UnmarshalJSON implements the coercion policy: number or numeric string
// parses as-is, everything else (null, "", "x", objects) becomes 0.
func (n *LooseNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		n.value = decimal.Zero
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			n.value = decimal.Zero
			return nil
		}
		raw = s
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		n.value = decimal.Zero
		return nil
	}
	n.value = d
	return nil
}

// MarshalJSON renders the value as a JSON number.
func (n LooseNumber) MarshalJSON() ([]byte, error) {
	return []byte(n.value.String()), nil
}

// Decimals unwraps a slice of loose numbers.
func Decimals(ns []LooseNumber) []decimal.Decimal {
	ds := make([]decimal.Decimal, len(ns))
	for i, n := range ns {
		ds[i] = n.Decimal()
	}
	return ds
}
