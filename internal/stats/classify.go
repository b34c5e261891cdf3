package stats

import (
	"github.com/mastowrap/mastowrap/internal/core/model"
	"github.com/mastowrap/mastowrap/internal/util"
)

// Variant is one selected classification outcome. Name, description and
// emoji are fixed literals, never computed.
type Variant struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

var (
	personaBroadcaster = Variant{"Broadcaster", "You mostly post your own thoughts and creations.", "📣"}
	personaCurator     = Variant{"Curator", "You amplify the best of your timeline with boosts.", "🔁"}
	personaSocialite   = Variant{"Socialite", "Most of your posts are replies - you live in the conversation.", "💬"}
	personaBalancer    = Variant{"Balancer", "A healthy mix of posting, boosting, and replying.", "⚖️"}
	personaNewcomer    = Variant{"Newcomer", "Not enough posts yet to tell - next year is yours.", "🌱"}

	chronoNightOwl  = Variant{"Night Owl", "The quiet hours after midnight are your posting time.", "🦉"}
	chronoEarlyBird = Variant{"Early Bird", "You post with the sunrise, before most are awake.", "🐦"}
	chronoSlacker   = Variant{"Slacker", "Peak posting during office hours. We won't tell.", "🦥"}
	chronoRegular   = Variant{"Regular", "Your posting follows no particular clock.", "🕰️"}
)

// classifyRule pairs a predicate with its outcome. Rules are evaluated
// top to bottom; the ranges overlap before first match, so order is
// part of the contract.
type classifyRule struct {
	match   func(c ratioCounts) bool
	variant Variant
}

type ratioCounts struct {
	total     int
	originals int
	reblogs   int
	replies   int
	hours     [24]int
}

var personaRules = []classifyRule{
	{func(c ratioCounts) bool { return ratio(c.originals, c.total) > 0.6 }, personaBroadcaster},
	{func(c ratioCounts) bool { return ratio(c.reblogs, c.total) > 0.6 }, personaCurator},
	{func(c ratioCounts) bool { return ratio(c.replies, c.total) > 0.5 }, personaSocialite},
}

var chronotypeRules = []classifyRule{
	{func(c ratioCounts) bool { return ratio(hourSpan(c.hours, 0, 5), c.total) > 0.15 }, chronoNightOwl},
	{func(c ratioCounts) bool { return ratio(hourSpan(c.hours, 5, 10), c.total) > 0.30 }, chronoEarlyBird},
	{func(c ratioCounts) bool { return ratio(hourSpan(c.hours, 10, 18), c.total) > 0.60 }, chronoSlacker},
}

// ClassifyPersona maps posting ratios to exactly one persona variant.
func ClassifyPersona(posts []model.Post) Variant {
	if len(posts) == 0 {
		return personaNewcomer
	}
	counts := countRatios(posts)
	for _, rule := range personaRules {
		if rule.match(counts) {
			return rule.variant
		}
	}
	return personaBalancer
}

// ClassifyChronotype maps posting hours to exactly one chronotype
// variant. Hours are taken in the configured timezone.
func ClassifyChronotype(posts []model.Post) Variant {
	if len(posts) == 0 {
		return chronoRegular
	}
	counts := countRatios(posts)
	for _, rule := range chronotypeRules {
		if rule.match(counts) {
			return rule.variant
		}
	}
	return chronoRegular
}

func countRatios(posts []model.Post) ratioCounts {
	loc := util.GetTimeProvider().Location()
	counts := ratioCounts{total: len(posts)}
	for i := range posts {
		post := &posts[i]
		if post.IsOriginal() {
			counts.originals++
		}
		if post.IsReblog() {
			counts.reblogs++
		}
		if post.IsReply() {
			counts.replies++
		}
		created, err := post.CreatedTime()
		if err != nil {
			continue
		}
		counts.hours[created.In(loc).Hour()]++
	}
	return counts
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

func hourSpan(hours [24]int, from, to int) int {
	sum := 0
	for h := from; h < to; h++ {
		sum += hours[h]
	}
	return sum
}
