package stats

import (
	"fmt"
	"time"

	"github.com/mastowrap/mastowrap/internal/core/model"
	"github.com/mastowrap/mastowrap/internal/util"
)

// YearWindow bounds one calendar year. End is inclusive through the
// last instant of Dec 31.
type YearWindow struct {
	Year  int
	Start time.Time
	End   time.Time
}

// NewYearWindow builds the window for a year in the given location.
func NewYearWindow(year int, loc *time.Location) YearWindow {
	return YearWindow{
		Year:  year,
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		End:   time.Date(year, time.December, 31, 23, 59, 59, 0, loc),
	}
}

// Contains reports whether t falls inside the window, inclusive on
// both ends.
func (w YearWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// FilterYear returns the posts created inside the window, preserving
// their relative order. Posts with unparseable timestamps are dropped,
// never treated as in range.
func FilterYear(posts []model.Post, window YearWindow) []model.Post {
	var filtered []model.Post
	dropped := 0
	for _, post := range posts {
		created, err := post.CreatedTime()
		if err != nil {
			util.LogDebug(fmt.Sprintf("Skip post %s: unparseable timestamp %q - %v", post.Id, post.CreatedAt, err))
			dropped++
			continue
		}
		if window.Contains(created) {
			filtered = append(filtered, post)
		}
	}
	if dropped > 0 {
		util.LogWarnf("Dropped %d posts with unparseable timestamps", dropped)
	}
	return filtered
}
