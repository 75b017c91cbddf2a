// Package controlno formats the per-month sequential control numbers
// assigned to register documents.
package controlno

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// YearMonth renders the ledger month prefix for a point in time, e.g. "2024-05".
func YearMonth(t time.Time) string {
	return t.Format("2006-01")
}

// Format builds a control number from a "YYYY-MM" prefix and a sequence.
// The sequence is zero-padded to three digits; wider sequences render in
// full, padding never truncates.
func Format(yearMonth string, seq int64) string {
	return fmt.Sprintf("%s-%03d", yearMonth, seq)
}

// Next derives the next sequence from the maximum already assigned within
// a month, or 1 when the month has no documents yet.
func Next(maxSeq *int64) int64 {
	if maxSeq == nil || *maxSeq < 1 {
		return 1
	}
	return *maxSeq + 1
}

// Sequence extracts the numeric suffix of a control number: the text after
// the last hyphen, parsed as an unsigned integer.
func Sequence(controlNo string) (int64, error) {
	idx := strings.LastIndex(controlNo, "-")
	if idx < 0 || idx == len(controlNo)-1 {
		return 0, fmt.Errorf("control number %q has no sequence suffix", controlNo)
	}
	seq, err := strconv.ParseUint(controlNo[idx+1:], 10, 63)
	if err != nil {
		return 0, fmt.Errorf("control number %q has a non-numeric sequence suffix: %w", controlNo, err)
	}
	return int64(seq), nil
}
