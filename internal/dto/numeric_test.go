package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctrackph/doctrack-backend/internal/dto"
)

func TestLooseNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "json number", input: `3.25`, want: "3.25"},
		{name: "integer", input: `7`, want: "7"},
		{name: "negative", input: `-1.5`, want: "-1.5"},
		{name: "numeric string", input: `"12.75"`, want: "12.75"},
		{name: "null", input: `null`, want: "0"},
		{name: "empty string", input: `""`, want: "0"},
		{name: "non-numeric string", input: `"abc"`, want: "0"},
		{name: "boolean", input: `true`, want: "0"},
		{name: "object", input: `{"v":1}`, want: "0"},
		{name: "array", input: `[1]`, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n dto.LooseNumber
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.True(t, n.Decimal().Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", n.Decimal(), tt.want)
		})
	}
}

func TestLooseNumber_InSlice(t *testing.T) {
	var quantities []dto.LooseNumber
	payload := `[3, "2.5", "x", null]`
	require.NoError(t, json.Unmarshal([]byte(payload), &quantities))

	ds := dto.Decimals(quantities)
	require.Len(t, ds, 4)
	assert.True(t, ds[0].Equal(decimal.NewFromInt(3)))
	assert.True(t, ds[1].Equal(decimal.RequireFromString("2.5")))
	assert.True(t, ds[2].IsZero())
	assert.True(t, ds[3].IsZero())
}

func TestLooseNumber_MarshalJSON(t *testing.T) {
	n := dto.NewLooseNumber(decimal.RequireFromString("4.2"))
	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, "4.2", string(out))
}
