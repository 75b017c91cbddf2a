package controlno_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctrackph/doctrack-backend/internal/utils/controlno"
)

func TestYearMonth(t *testing.T) {
	ts := time.Date(2024, time.May, 17, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-05", controlno.YearMonth(ts))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		yearMonth string
		seq       int64
		want      string
	}{
		{name: "first of the month", yearMonth: "2024-05", seq: 1, want: "2024-05-001"},
		{name: "double digit", yearMonth: "2024-05", seq: 11, want: "2024-05-011"},
		{name: "triple digit", yearMonth: "2024-12", seq: 999, want: "2024-12-999"},
		{name: "beyond padding width", yearMonth: "2024-12", seq: 1000, want: "2024-12-1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, controlno.Format(tt.yearMonth, tt.seq))
		})
	}
}

func TestNext(t *testing.T) {
	assert.Equal(t, int64(1), controlno.Next(nil))

	zero := int64(0)
	assert.Equal(t, int64(1), controlno.Next(&zero))

	ten := int64(10)
	assert.Equal(t, int64(11), controlno.Next(&ten))
}

func TestSequence(t *testing.T) {
	seq, err := controlno.Sequence("2024-05-011")
	require.NoError(t, err)
	assert.Equal(t, int64(11), seq)

	seq, err = controlno.Sequence("2024-05-1000")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), seq)

	_, err = controlno.Sequence("no hyphen here")
	assert.Error(t, err)

	_, err = controlno.Sequence("2024-05-")
	assert.Error(t, err)

	_, err = controlno.Sequence("2024-05-abc")
	assert.Error(t, err)
}

func TestFormat_RoundTripsThroughSequence(t *testing.T) {
	for _, seq := range []int64{1, 9, 10, 99, 100, 999, 1000} {
		controlNo := controlno.Format("2024-05", seq)
		got, err := controlno.Sequence(controlNo)
		require.NoError(t, err)
		assert.Equal(t, seq, got)
	}
}
