package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mastowrap/mastowrap/internal/core/model"
)

func TestBucketizeFixedOrder(t *testing.T) {
	h := Bucketize(nil)

	require.Len(t, h.Months, 12)
	require.Len(t, h.Hours, 24)
	require.Len(t, h.Weekdays, 7)

	assert.Equal(t, "Jan", h.Months[0].Label)
	assert.Equal(t, "Dec", h.Months[11].Label)
	assert.Equal(t, "00", h.Hours[0].Label)
	assert.Equal(t, "23", h.Hours[23].Label)
	assert.Equal(t, "Sun", h.Weekdays[0].Label)
	assert.Equal(t, "Sat", h.Weekdays[6].Label)

	for _, bucket := range h.Months {
		assert.Zero(t, bucket.Count)
	}
}

func TestBucketizeCounts(t *testing.T) {
	posts := []model.Post{
		// 2024-03-04 is a Monday
		{Id: "1", CreatedAt: "2024-03-04T09:00:00Z"},
		{Id: "2", CreatedAt: "2024-03-04T09:30:00Z"},
		{Id: "3", CreatedAt: "2024-07-14T22:00:00Z"}, // a Sunday
		{Id: "4", CreatedAt: "bogus"},
	}

	h := Bucketize(posts)

	assert.Equal(t, 2, h.Months[2].Count)  // Mar
	assert.Equal(t, 1, h.Months[6].Count)  // Jul
	assert.Equal(t, 2, h.Hours[9].Count)
	assert.Equal(t, 1, h.Hours[22].Count)
	assert.Equal(t, 2, h.Weekdays[1].Count) // Mon
	assert.Equal(t, 1, h.Weekdays[0].Count) // Sun

	total := 0
	for _, bucket := range h.Months {
		total += bucket.Count
	}
	assert.Equal(t, 3, total, "unparseable timestamps are skipped")
}

func TestBusiest(t *testing.T) {
	tests := []struct {
		name     string
		buckets  []Bucket
		expected Bucket
	}{
		{
			name:     "empty input",
			buckets:  nil,
			expected: Bucket{},
		},
		{
			name: "clear winner",
			buckets: []Bucket{
				{Label: "Jan", Count: 2},
				{Label: "Feb", Count: 9},
				{Label: "Mar", Count: 4},
			},
			expected: Bucket{Label: "Feb", Count: 9},
		},
		{
			name: "tie resolves to the earlier bucket",
			buckets: []Bucket{
				{Label: "Jan", Count: 3},
				{Label: "Feb", Count: 5},
				{Label: "Mar", Count: 5},
			},
			expected: Bucket{Label: "Feb", Count: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Busiest(tt.buckets))
		})
	}
}

func TestBusiestDoesNotMutateInput(t *testing.T) {
	buckets := []Bucket{
		{Label: "Jan", Count: 1},
		{Label: "Feb", Count: 9},
	}
	Busiest(buckets)
	assert.Equal(t, "Jan", buckets[0].Label)
}
