package lineitems_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/doctrackph/doctrack-backend/internal/utils/lineitems"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name       string
		items      []string
		quantities []decimal.Decimal
		amounts    []decimal.Decimal
		want       string
	}{
		{
			name:       "single line",
			items:      []string{"Bond paper"},
			quantities: []decimal.Decimal{d("3")},
			amounts:    []decimal.Decimal{d("2.50")},
			want:       "7.5",
		},
		{
			name:       "multiple lines",
			items:      []string{"Bond paper", "Staplers"},
			quantities: []decimal.Decimal{d("3"), d("2")},
			amounts:    []decimal.Decimal{d("2.50"), d("120")},
			want:       "247.5",
		},
		{
			name:  "no lines",
			items: nil,
			want:  "0",
		},
		{
			name:       "short quantity list treated as zero",
			items:      []string{"A", "B"},
			quantities: []decimal.Decimal{d("2")},
			amounts:    []decimal.Decimal{d("5"), d("7")},
			want:       "10",
		},
		{
			name:       "short amount list treated as zero",
			items:      []string{"A", "B"},
			quantities: []decimal.Decimal{d("2"), d("3")},
			amounts:    []decimal.Decimal{d("5")},
			want:       "10",
		},
		{
			name:       "rounds to two decimal places",
			items:      []string{"A"},
			quantities: []decimal.Decimal{d("3")},
			amounts:    []decimal.Decimal{d("0.125")},
			want:       "0.38",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineitems.Total(tt.items, tt.quantities, tt.amounts)
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}
