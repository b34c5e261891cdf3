package report

import (
	"github.com/mastowrap/mastowrap/internal/core/model"
	"github.com/mastowrap/mastowrap/internal/enrich"
	"github.com/mastowrap/mastowrap/internal/stats"
)

// Report is the single composite the presenter consumes. Every value
// is final; nothing downstream recomputes.
type Report struct {
	Account     model.Account `json:"account"`
	Year        int           `json:"year"`
	GeneratedAt string        `json:"generatedAt"`

	Stats      stats.AggregateStats `json:"stats"`
	Persona    stats.Variant        `json:"persona"`
	Chronotype stats.Variant        `json:"chronotype"`

	Histograms     stats.Histograms `json:"histograms"`
	BusiestMonth   stats.Bucket     `json:"busiestMonth"`
	BusiestHour    stats.Bucket     `json:"busiestHour"`
	BusiestWeekday stats.Bucket     `json:"busiestWeekday"`

	Calendar stats.ActivityCalendar `json:"calendar"`
	Heatmap  stats.HeatmapGrid      `json:"heatmap"`

	TopHashtags []stats.HashtagCount `json:"topHashtags"`
	TopPosts    []stats.RankedPost   `json:"topPosts"`

	Insight  enrich.Insight `json:"insight"`
	Enriched bool           `json:"enriched"`
}
