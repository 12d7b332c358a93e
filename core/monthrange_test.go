package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthRangeContains(t *testing.T) {
	r := MonthRange{FromYear: 2024, FromMonth: 1, ToYear: 2024, ToMonth: 6}

	tests := []struct {
		name     string
		year     int
		month    int
		expected bool
	}{
		{"inside", 2024, 3, true},
		{"at lower bound", 2024, 1, true},
		{"at upper bound", 2024, 6, true},
		{"month after range", 2024, 7, false},
		{"year before range", 2023, 12, false},
		{"year after range", 2025, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Contains(tt.year, tt.month))
		})
	}
}

func TestMonthRangeContains_AcrossYears(t *testing.T) {
	r := MonthRange{FromYear: 2023, FromMonth: 11, ToYear: 2024, ToMonth: 2}

	assert.True(t, r.Contains(2023, 11))
	assert.True(t, r.Contains(2023, 12))
	assert.True(t, r.Contains(2024, 1))
	assert.True(t, r.Contains(2024, 2))
	assert.False(t, r.Contains(2023, 10))
	assert.False(t, r.Contains(2024, 3))
}

func TestMonthRangeContains_UpperBoundEqualsRecord(t *testing.T) {
	// Record (2024, 3) matches to=(2024, 3) but not to=(2024, 2).
	record := struct{ year, month int }{2024, 3}

	inclusive := MonthRange{FromYear: 2024, FromMonth: 1, ToYear: 2024, ToMonth: 3}
	assert.True(t, inclusive.Contains(record.year, record.month))

	exclusive := MonthRange{FromYear: 2024, FromMonth: 1, ToYear: 2024, ToMonth: 2}
	assert.False(t, exclusive.Contains(record.year, record.month))
}
