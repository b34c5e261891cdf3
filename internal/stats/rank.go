package stats

import (
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/mastowrap/mastowrap/internal/core/model"
)

const (
	topHashtagLimit = 10
	topPostLimit    = 5
	excerptRunes    = 200
)

// HashtagCount is one ranked hashtag, name lowercased.
type HashtagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RankedPost is a display-ready top post: markup stripped, excerpt
// truncated, engagement precomputed.
type RankedPost struct {
	Id         string `json:"id"`
	Excerpt    string `json:"excerpt"`
	Url        string `json:"url,omitempty"`
	CreatedAt  string `json:"createdAt"`
	Favourites int    `json:"favourites"`
	Reblogs    int    `json:"reblogs"`
	Replies    int    `json:"replies"`
	Engagement int    `json:"engagement"`
}

// TopHashtags counts lowercased tag occurrences and returns the ten
// most used. Ties keep first-encountered order via the stable sort.
func TopHashtags(posts []model.Post) []HashtagCount {
	counts := make(map[string]int)
	var order []string
	for i := range posts {
		for _, tag := range posts[i].Tags {
			name := strings.ToLower(tag.Name)
			if name == "" {
				continue
			}
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	ranked := make([]HashtagCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, HashtagCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topHashtagLimit {
		ranked = ranked[:topHashtagLimit]
	}
	return ranked
}

// TopPosts ranks the account's original posts by combined engagement
// and returns the five highest. Ties keep source order.
func TopPosts(posts []model.Post) []RankedPost {
	var ranked []RankedPost
	for i := range posts {
		post := &posts[i]
		if !post.IsOriginal() {
			continue
		}
		ranked = append(ranked, RankedPost{
			Id:         post.Id,
			Excerpt:    truncateRunes(StripMarkup(post.Content), excerptRunes),
			Url:        post.Url,
			CreatedAt:  post.CreatedAt,
			Favourites: post.FavouritesCount,
			Reblogs:    post.ReblogsCount,
			Replies:    post.RepliesCount,
			Engagement: post.Engagement(),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Engagement > ranked[j].Engagement
	})

	if len(ranked) > topPostLimit {
		ranked = ranked[:topPostLimit]
	}
	return ranked
}

// StripMarkup extracts plain text from status HTML. Block boundaries
// collapse to single spaces.
func StripMarkup(content string) string {
	if content == "" {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(content))
	var sb strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.TextToken:
			sb.Write(tokenizer.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "br", "p", "div", "li":
				sb.WriteByte(' ')
			}
		}
	}
}

// truncateRunes cuts at a fixed rune count, not at word boundaries.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
