package stats

import (
	"fmt"
	"sort"

	"github.com/mastowrap/mastowrap/internal/core/model"
	"github.com/mastowrap/mastowrap/internal/util"
)

// Bucket is one labelled histogram slot.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Histograms holds the month, hour and weekday distributions. Bucket
// order is fixed (Jan..Dec, 0..23, Sun..Sat) regardless of sparsity.
type Histograms struct {
	Months   []Bucket `json:"months"`
	Hours    []Bucket `json:"hours"`
	Weekdays []Bucket `json:"weekdays"`
}

// Bucketize distributes the filtered posts into fixed-order month,
// hour and weekday buckets.
func Bucketize(posts []model.Post) Histograms {
	loc := util.GetTimeProvider().Location()

	h := Histograms{
		Months:   make([]Bucket, 12),
		Hours:    make([]Bucket, 24),
		Weekdays: make([]Bucket, 7),
	}
	for i, label := range monthLabels {
		h.Months[i] = Bucket{Label: label}
	}
	for i := 0; i < 24; i++ {
		h.Hours[i] = Bucket{Label: fmt.Sprintf("%02d", i)}
	}
	for i, label := range weekdayLabels {
		h.Weekdays[i] = Bucket{Label: label}
	}

	for i := range posts {
		created, err := posts[i].CreatedTime()
		if err != nil {
			continue
		}
		local := created.In(loc)
		h.Months[int(local.Month())-1].Count++
		h.Hours[local.Hour()].Count++
		h.Weekdays[int(local.Weekday())].Count++
	}

	return h
}

// Busiest returns the bucket with the highest count. Ties resolve to
// the first bucket in label order: the sort is stable over the
// already-ordered sequence.
func Busiest(buckets []Bucket) Bucket {
	if len(buckets) == 0 {
		return Bucket{}
	}
	ranked := make([]Bucket, len(buckets))
	copy(ranked, buckets)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked[0]
}
