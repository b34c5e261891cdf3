package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mastowrap/mastowrap/internal/core/model"
)

func strptr(s string) *string { return &s }

func TestAggregate(t *testing.T) {
	posts := []model.Post{
		{
			Id:              "1",
			CreatedAt:       "2024-01-01T10:00:00Z",
			Content:         "<p>hello fediverse world</p>",
			FavouritesCount: 10,
			ReblogsCount:    3,
			RepliesCount:    2,
		},
		{
			Id:        "2",
			CreatedAt: "2024-01-02T10:00:00Z",
			Content:   "<p>boosting</p>",
			Reblog:    &model.RebloggedStatus{Id: "other"},
			// Counters on a boost belong to the boosted author
			FavouritesCount: 500,
			ReblogsCount:    500,
		},
		{
			Id:               "3",
			CreatedAt:        "2024-01-03T10:00:00Z",
			Content:          "<p>nice photo</p>",
			InReplyToId:      strptr("42"),
			FavouritesCount:  5,
			MediaAttachments: []model.MediaAttachment{{Id: "m1", Type: "image"}},
		},
	}

	stats := Aggregate(posts)

	assert.Equal(t, 3, stats.TotalPosts)
	assert.Equal(t, 2, stats.OriginalPosts)
	assert.Equal(t, 1, stats.Reblogs)
	assert.Equal(t, 1, stats.Replies)
	assert.Equal(t, 1, stats.MediaPosts)
	assert.Equal(t, 1, stats.TextPosts)
	assert.Equal(t, 15, stats.FavouritesReceived)
	assert.Equal(t, 3, stats.ReblogsReceived)
	assert.Equal(t, 2, stats.RepliesReceived)
	// (3 + 2) words over 2 originals
	assert.Equal(t, 2, stats.AverageWords)
	assert.Equal(t, 3, stats.LongestStreak)
	// 3*2 + 15 + 3*0.1 + 3*5 = 36.3, truncated
	assert.Equal(t, 36, stats.ImpactScore)
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, 0, stats.TotalPosts)
	assert.Equal(t, 0, stats.AverageWords)
	assert.Equal(t, 0, stats.LongestStreak)
	assert.Equal(t, 0, stats.ImpactScore)
}

func TestLongestStreak(t *testing.T) {
	mkPosts := func(timestamps ...string) []model.Post {
		posts := make([]model.Post, len(timestamps))
		for i, ts := range timestamps {
			posts[i] = model.Post{Id: ts, CreatedAt: ts}
		}
		return posts
	}

	tests := []struct {
		name     string
		posts    []model.Post
		expected int
	}{
		{
			name:     "no posts",
			posts:    nil,
			expected: 0,
		},
		{
			name:     "single day",
			posts:    mkPosts("2024-06-01T12:00:00Z"),
			expected: 1,
		},
		{
			name:     "gap resets the run",
			posts:    mkPosts("2024-01-01T08:00:00Z", "2024-01-02T08:00:00Z", "2024-01-03T08:00:00Z", "2024-01-05T08:00:00Z"),
			expected: 3,
		},
		{
			name:     "multiple posts on one day count once",
			posts:    mkPosts("2024-01-01T08:00:00Z", "2024-01-01T20:00:00Z", "2024-01-02T08:00:00Z"),
			expected: 2,
		},
		{
			name:     "order independent",
			posts:    mkPosts("2024-01-03T08:00:00Z", "2024-01-01T08:00:00Z", "2024-01-02T08:00:00Z"),
			expected: 3,
		},
		{
			name:     "longest run wins over later shorter one",
			posts:    mkPosts("2024-02-01T08:00:00Z", "2024-02-02T08:00:00Z", "2024-02-03T08:00:00Z", "2024-02-04T08:00:00Z", "2024-03-01T08:00:00Z", "2024-03-02T08:00:00Z"),
			expected: 4,
		},
		{
			name:     "streak crosses a month boundary",
			posts:    mkPosts("2024-01-31T08:00:00Z", "2024-02-01T08:00:00Z"),
			expected: 2,
		},
		{
			name:     "UTC dates, not local dates",
			posts:    mkPosts("2024-01-01T23:30:00-05:00", "2024-01-02T23:30:00Z"),
			expected: 1, // first post is Jan 2 in UTC, both land on the same date
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LongestStreak(tt.posts))
		})
	}
}

func TestImpactScore(t *testing.T) {
	tests := []struct {
		name       string
		reblogs    int
		favourites int
		total      int
		streak     int
		expected   int
	}{
		{"all zero", 0, 0, 0, 0, 0},
		{"posts only truncate", 0, 0, 9, 0, 0},
		{"single post rounds down", 0, 0, 15, 0, 1},
		{"reblogs weigh double", 10, 0, 0, 0, 20},
		{"streak weighs five", 0, 0, 0, 7, 35},
		{"combined", 3, 15, 3, 3, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImpactScore(tt.reblogs, tt.favourites, tt.total, tt.streak))
		})
	}
}
