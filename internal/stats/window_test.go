package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mastowrap/mastowrap/internal/core/model"
)

func TestYearWindowContains(t *testing.T) {
	window := NewYearWindow(2024, time.UTC)

	tests := []struct {
		name     string
		instant  time.Time
		expected bool
	}{
		{
			name:     "first instant of the year",
			instant:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "last second of Dec 31",
			instant:  time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
			expected: true,
		},
		{
			name:     "last second of the previous year",
			instant:  time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC),
			expected: false,
		},
		{
			name:     "first instant of the next year",
			instant:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "mid-year",
			instant:  time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, window.Contains(tt.instant))
		})
	}
}

func TestFilterYear(t *testing.T) {
	window := NewYearWindow(2024, time.UTC)
	posts := []model.Post{
		{Id: "1", CreatedAt: "2024-03-10T08:00:00Z"},
		{Id: "2", CreatedAt: "2023-12-31T23:59:59Z"},
		{Id: "3", CreatedAt: "2024-12-31T23:59:59Z"},
		{Id: "4", CreatedAt: "not-a-timestamp"},
		{Id: "5", CreatedAt: "2025-01-01T00:00:00Z"},
		{Id: "6", CreatedAt: "2024-01-01T00:00:00Z"},
	}

	filtered := FilterYear(posts, window)

	require.Len(t, filtered, 3)
	// Relative order is preserved
	assert.Equal(t, "1", filtered[0].Id)
	assert.Equal(t, "3", filtered[1].Id)
	assert.Equal(t, "6", filtered[2].Id)
}

func TestFilterYearEmpty(t *testing.T) {
	window := NewYearWindow(2024, time.UTC)
	assert.Empty(t, FilterYear(nil, window))
	assert.Empty(t, FilterYear([]model.Post{{Id: "1", CreatedAt: "2019-06-01T00:00:00Z"}}, window))
}

func TestFilterYearRespectsOffsets(t *testing.T) {
	window := NewYearWindow(2024, time.UTC)
	// 2024-01-01T01:00:00+02:00 is 2023-12-31T23:00:00Z, outside the window
	posts := []model.Post{
		{Id: "1", CreatedAt: "2024-01-01T01:00:00+02:00"},
		{Id: "2", CreatedAt: "2024-01-01T01:00:00Z"},
	}

	filtered := FilterYear(posts, window)

	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].Id)
}
