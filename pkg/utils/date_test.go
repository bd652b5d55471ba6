package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSerial(t *testing.T) {
	tests := []struct {
		name     string
		serial   float64
		expected time.Time
	}{
		{
			name:     "Serial da época Unix",
			serial:   25569,
			expected: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Data de consulta da planilha operacional",
			serial:   45684,
			expected: time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Serial com hora do dia é truncado para a data",
			serial:   45684.75,
			expected: time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Serial anterior à época Unix",
			serial:   25568,
			expected: time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromSerial(tt.serial))
		})
	}
}

func TestFromSerial_ConsecutiveDays(t *testing.T) {
	for serial := 40000.0; serial < 47000; serial += 37 {
		current := FromSerial(serial)
		next := FromSerial(serial + 1)

		assert.Equal(t, current.AddDate(0, 0, 1), next, "serial %v", serial)
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-02-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("01/02/2025")
	assert.Error(t, err)
}

func TestFirstDayHelpers(t *testing.T) {
	now := time.Date(2025, 8, 13, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), FirstDayOfMonth(now))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), FirstDayOfYear(now))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 66.67, RoundWithTwoDecimalPlace(66.666666))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
