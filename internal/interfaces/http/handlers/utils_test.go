package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDateRange(t *testing.T) {
	cases := []struct {
		name     string
		from     string
		to       string
		expected []string
	}{
		{
			name:     "intervalo de três dias",
			from:     "2026-03-09",
			to:       "2026-03-11",
			expected: []string{"2026-03-09", "2026-03-10", "2026-03-11"},
		},
		{
			name:     "mesmo dia",
			from:     "2026-03-09",
			to:       "2026-03-09",
			expected: []string{"2026-03-09"},
		},
		{
			name:     "virada de mês",
			from:     "2026-02-27",
			to:       "2026-03-02",
			expected: []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"},
		},
		{
			name:     "intervalo invertido",
			from:     "2026-03-11",
			to:       "2026-03-09",
			expected: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, err := time.Parse("2006-01-02", tc.from)
			require.NoError(t, err)
			to, err := time.Parse("2006-01-02", tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, GenerateDateRange(from, to))
		})
	}
}

func TestGenerateDateRangeZeroDates(t *testing.T) {
	assert.Empty(t, GenerateDateRange(time.Time{}, time.Now()))
	assert.Empty(t, GenerateDateRange(time.Now(), time.Time{}))
}

func TestParseDateQuery(t *testing.T) {
	parsed, err := parseDateQuery("2026-03-09")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())

	parsed, err = parseDateQuery("2026-03-09T14:30:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, 14, parsed.Hour())

	parsed, err = parseDateQuery("")
	require.NoError(t, err)
	assert.True(t, parsed.IsZero())

	_, err = parseDateQuery("09/03/2026")
	assert.Error(t, err)
}
