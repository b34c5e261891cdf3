package formatter

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/mastowrap/mastowrap/internal/presentation/report"
	"github.com/mastowrap/mastowrap/internal/util"
)

const (
	defaultWidth = 80
	maxBarWidth  = 40
)

// SummaryFormatter renders the report as a terminal summary.
type SummaryFormatter struct {
	width int
}

func NewSummaryFormatter() *SummaryFormatter {
	width := defaultWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		width = w
	}
	return &SummaryFormatter{width: width}
}

func (f *SummaryFormatter) Format(r *report.Report) error {
	title := fmt.Sprintf("%s (%s) - %d in review", r.Account.Name(), r.Account.Handle(), r.Year)
	f.printHeader(title)

	fmt.Println()
	f.printStat("Posts", util.FormatCount(r.Stats.TotalPosts))
	f.printStat("Original posts", util.FormatCount(r.Stats.OriginalPosts))
	f.printStat("Boosts", util.FormatCount(r.Stats.Reblogs))
	f.printStat("Replies", util.FormatCount(r.Stats.Replies))
	f.printStat("Favourites received", util.FormatNumber(r.Stats.FavouritesReceived))
	f.printStat("Boosts received", util.FormatNumber(r.Stats.ReblogsReceived))
	f.printStat("Longest streak", fmt.Sprintf("%d days", r.Stats.LongestStreak))
	f.printStat("Impact score", util.FormatCount(r.Stats.ImpactScore))

	fmt.Println()
	fmt.Printf("%s %s - %s\n", r.Persona.Emoji, r.Persona.Name, r.Persona.Description)
	fmt.Printf("%s %s - %s\n", r.Chronotype.Emoji, r.Chronotype.Name, r.Chronotype.Description)

	fmt.Println()
	fmt.Printf("Busiest month: %s (%s posts)   Busiest hour: %s:00   Busiest day: %s\n",
		r.BusiestMonth.Label, util.FormatCount(r.BusiestMonth.Count),
		r.BusiestHour.Label, r.BusiestWeekday.Label)

	f.printMonthChart(r)
	f.printHashtags(r)
	f.printTopPosts(r)

	if r.Enriched {
		fmt.Println()
		f.printHeader("AI year in review")
		fmt.Printf("Mood: %s   Persona: %s\n", r.Insight.Mood, r.Insight.Persona)
		fmt.Printf("Traits: %s\n", strings.Join(r.Insight.Traits, ", "))
		fmt.Printf("Topics: %s\n", strings.Join(r.Insight.Topics, ", "))
		fmt.Println(r.Insight.Narrative)
		fmt.Printf("Fun fact: %s\n", r.Insight.FunFact)
	}

	return nil
}

func (f *SummaryFormatter) printHeader(title string) {
	fmt.Println(title)
	fmt.Println(strings.Repeat("─", min(runewidth.StringWidth(title), f.width)))
}

func (f *SummaryFormatter) printStat(label, value string) {
	padded := runewidth.FillRight(label, 22)
	fmt.Printf("  %s %s\n", padded, value)
}

func (f *SummaryFormatter) printMonthChart(r *report.Report) {
	max := 0
	for _, bucket := range r.Histograms.Months {
		if bucket.Count > max {
			max = bucket.Count
		}
	}
	if max == 0 {
		return
	}

	barWidth := maxBarWidth
	if f.width-20 < barWidth {
		barWidth = f.width - 20
	}

	fmt.Println()
	for _, bucket := range r.Histograms.Months {
		bar := strings.Repeat("█", bucket.Count*barWidth/max)
		fmt.Printf("  %s │%s %s\n", bucket.Label, bar, util.FormatCount(bucket.Count))
	}
}

func (f *SummaryFormatter) printHashtags(r *report.Report) {
	if len(r.TopHashtags) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Top hashtags:")
	for i, tag := range r.TopHashtags {
		fmt.Printf("  %2d. #%s (%s)\n", i+1, tag.Name, util.FormatCount(tag.Count))
	}
}

func (f *SummaryFormatter) printTopPosts(r *report.Report) {
	if len(r.TopPosts) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Top posts:")
	for i, post := range r.TopPosts {
		excerpt := runewidth.Truncate(post.Excerpt, f.width-10, "…")
		fmt.Printf("  %d. %s\n", i+1, excerpt)
		fmt.Printf("     ⭐ %s  🔁 %s  💬 %s\n",
			util.FormatNumber(post.Favourites),
			util.FormatNumber(post.Reblogs),
			util.FormatNumber(post.Replies))
	}
}
