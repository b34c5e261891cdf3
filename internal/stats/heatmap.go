package stats

import (
	"math"
	"time"

	"github.com/mastowrap/mastowrap/internal/core/model"
	"github.com/mastowrap/mastowrap/internal/util"
)

// heatmapWeeks is the fixed grid width: 53 week columns cover any year
// regardless of which weekday Jan 1 lands on.
const heatmapWeeks = 53

// ActivityCalendar maps ISO dates to post counts. Dates with zero
// posts are absent, not zero-valued entries.
type ActivityCalendar map[string]int

// HeatmapCell is one day slot in the rendered grid. Cells outside the
// year's valid day range have Valid unset and render as placeholders.
type HeatmapCell struct {
	Date  string `json:"date,omitempty"`
	Count int    `json:"count"`
	Level int    `json:"level"`
	Valid bool   `json:"valid"`
}

// BuildCalendar counts posts per calendar date in the configured
// timezone. Read-only after construction.
func BuildCalendar(posts []model.Post) ActivityCalendar {
	loc := util.GetTimeProvider().Location()
	calendar := make(ActivityCalendar)
	for i := range posts {
		created, err := posts[i].CreatedTime()
		if err != nil {
			continue
		}
		calendar[created.In(loc).Format("2006-01-02")]++
	}
	return calendar
}

// MaxDay returns the highest single-day post count.
func (c ActivityCalendar) MaxDay() int {
	max := 0
	for _, count := range c {
		if count > max {
			max = count
		}
	}
	return max
}

// IsLeapYear implements the Gregorian rule: divisible by 4 and either
// not divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DateForOffset maps a zero-based day-of-year offset to its calendar
// date. Offset 59 is Feb 29 in leap years and Mar 1 otherwise.
func DateForOffset(year, offset int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

// HeatLevel quantizes a day count into 6 levels relative to the year
// maximum: 0 for zero, otherwise ceil(count/max*5) clipped to [1,5].
func HeatLevel(count, max int) int {
	if count <= 0 || max <= 0 {
		return 0
	}
	level := int(math.Ceil(float64(count) / float64(max) * 5))
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return level
}

// HeatmapGrid is the fixed 7x53 rendering layout: weekday rows by
// week columns.
type HeatmapGrid = [7][heatmapWeeks]HeatmapCell

// BuildHeatmap lays the year out as a 7x53 grid, weekday rows by week
// columns, anchored so each date lands in the column of its week.
func BuildHeatmap(year int, calendar ActivityCalendar) HeatmapGrid {
	var grid HeatmapGrid

	startWeekday := int(DateForOffset(year, 0).Weekday())
	days := DaysInYear(year)
	max := calendar.MaxDay()

	for offset := 0; offset < days; offset++ {
		week := (offset + startWeekday) / 7
		if week >= heatmapWeeks {
			break
		}
		date := DateForOffset(year, offset)
		iso := date.Format("2006-01-02")
		count := calendar[iso]
		grid[int(date.Weekday())][week] = HeatmapCell{
			Date:  iso,
			Count: count,
			Level: HeatLevel(count, max),
			Valid: true,
		}
	}

	return grid
}
