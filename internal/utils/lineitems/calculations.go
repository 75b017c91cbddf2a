// Package lineitems computes document totals from the parallel
// particulars/quantities/amounts lists.
package lineitems

import "github.com/shopspring/decimal"

// Total computes the document total: the sum over every particular of
// quantity times amount, rounded to 2 decimal places (half away from zero).
//
// The lists are index-aligned with items; quantities or amounts shorter
// than items are treated as zero-filled at the missing indices. Callers are
// expected to have already coerced non-numeric inputs to zero.
func Total(items []string, quantities, amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(at(quantities, i).Mul(at(amounts, i)))
	}
	return total.Round(2)
}

func at(values []decimal.Decimal, i int) decimal.Decimal {
	if i >= len(values) {
		return decimal.Zero
	}
	return values[i]
}
