package stats

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/mastowrap/mastowrap/internal/core/model"
)

// AggregateStats holds the scalar counts derived from one year of posts.
type AggregateStats struct {
	TotalPosts    int `json:"totalPosts"`
	OriginalPosts int `json:"originalPosts"`
	Reblogs       int `json:"reblogs"`
	Replies       int `json:"replies"`
	MediaPosts    int `json:"mediaPosts"`
	TextPosts     int `json:"textPosts"`

	FavouritesReceived int `json:"favouritesReceived"`
	ReblogsReceived    int `json:"reblogsReceived"`
	RepliesReceived    int `json:"repliesReceived"`

	AverageWords  int `json:"averageWords"`
	LongestStreak int `json:"longestStreak"`
	ImpactScore   int `json:"impactScore"`
}

// Aggregate computes the full scalar summary over an already
// year-filtered post set. Engagement sums cover originals only: boosts
// and replies report the boosted author's counters, not this account's.
func Aggregate(posts []model.Post) AggregateStats {
	stats := AggregateStats{TotalPosts: len(posts)}

	wordTotal := 0
	for i := range posts {
		post := &posts[i]
		if post.IsReply() {
			stats.Replies++
		}
		if post.IsReblog() {
			stats.Reblogs++
			continue
		}

		stats.OriginalPosts++
		if post.HasMedia() {
			stats.MediaPosts++
		}
		stats.FavouritesReceived += post.FavouritesCount
		stats.ReblogsReceived += post.ReblogsCount
		stats.RepliesReceived += post.RepliesCount
		wordTotal += len(strings.Fields(StripMarkup(post.Content)))
	}
	stats.TextPosts = stats.OriginalPosts - stats.MediaPosts

	if stats.OriginalPosts > 0 {
		stats.AverageWords = wordTotal / stats.OriginalPosts
	}

	stats.LongestStreak = LongestStreak(posts)
	stats.ImpactScore = ImpactScore(stats.ReblogsReceived, stats.FavouritesReceived, stats.TotalPosts, stats.LongestStreak)

	return stats
}

// LongestStreak returns the longest run of consecutive UTC calendar
// dates with at least one post. The result depends only on the set of
// unique dates, not on input order.
func LongestStreak(posts []model.Post) int {
	seen := make(map[string]struct{})
	var dates []string
	for i := range posts {
		created, err := posts[i].CreatedTime()
		if err != nil {
			continue
		}
		day := created.UTC().Format("2006-01-02")
		if _, ok := seen[day]; !ok {
			seen[day] = struct{}{}
			dates = append(dates, day)
		}
	}
	if len(dates) == 0 {
		return 0
	}

	sort.Strings(dates)

	longest := 1
	current := 1
	for i := 1; i < len(dates); i++ {
		prev, _ := parseDay(dates[i-1])
		next, _ := parseDay(dates[i])
		if next.Sub(prev).Hours() == 24 {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}
	return longest
}

func parseDay(day string) (time.Time, error) {
	return time.Parse("2006-01-02", day)
}

// ImpactScore combines reach and consistency into one number:
// reblogs weigh double, favourites weigh single, plus a tenth of a
// point per post and five points per streak day. Truncated, not
// rounded.
func ImpactScore(reblogsReceived, favourites, totalPosts, streak int) int {
	score := float64(reblogsReceived)*2 +
		float64(favourites) +
		float64(totalPosts)*0.1 +
		float64(streak)*5
	return int(math.Floor(score))
}
