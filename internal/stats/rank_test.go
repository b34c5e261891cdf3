package stats

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mastowrap/mastowrap/internal/core/model"
)

func tagged(id string, names ...string) model.Post {
	post := model.Post{Id: id, CreatedAt: "2024-05-01T12:00:00Z"}
	for _, name := range names {
		post.Tags = append(post.Tags, model.Tag{Name: name})
	}
	return post
}

func TestTopHashtags(t *testing.T) {
	posts := []model.Post{
		tagged("1", "GoLang", "fediverse"),
		tagged("2", "golang"),
		tagged("3", "Fediverse", "photography"),
		tagged("4", "golang"),
	}

	ranked := TopHashtags(posts)

	require.Len(t, ranked, 3)
	assert.Equal(t, HashtagCount{Name: "golang", Count: 3}, ranked[0])
	assert.Equal(t, HashtagCount{Name: "fediverse", Count: 2}, ranked[1])
	assert.Equal(t, HashtagCount{Name: "photography", Count: 1}, ranked[2])
}

func TestTopHashtagsTieOrder(t *testing.T) {
	posts := []model.Post{
		tagged("1", "beta"),
		tagged("2", "alpha"),
		tagged("3", "beta"),
		tagged("4", "alpha"),
	}

	ranked := TopHashtags(posts)

	require.Len(t, ranked, 2)
	// beta was seen first, so the tie keeps it first
	assert.Equal(t, "beta", ranked[0].Name)
	assert.Equal(t, "alpha", ranked[1].Name)
}

func TestTopHashtagsLimit(t *testing.T) {
	var posts []model.Post
	for i := 0; i < 15; i++ {
		name := fmt.Sprintf("tag%02d", i)
		// tag00 appears 15 times, tag14 once
		for j := i; j < 15; j++ {
			posts = append(posts, tagged(fmt.Sprintf("%d-%d", i, j), name))
		}
	}

	ranked := TopHashtags(posts)

	require.Len(t, ranked, 10)
	assert.Equal(t, "tag00", ranked[0].Name)
	assert.Equal(t, 15, ranked[0].Count)
	assert.Equal(t, "tag09", ranked[9].Name)
}

func TestTopHashtagsEmpty(t *testing.T) {
	assert.Empty(t, TopHashtags(nil))
	assert.Empty(t, TopHashtags([]model.Post{tagged("1")}))
}

func TestTopPosts(t *testing.T) {
	posts := []model.Post{
		{Id: "1", CreatedAt: "2024-01-01T00:00:00Z", Content: "<p>quiet</p>", FavouritesCount: 1},
		{Id: "2", CreatedAt: "2024-01-02T00:00:00Z", Content: "<p>viral</p>", FavouritesCount: 50, ReblogsCount: 20, RepliesCount: 5},
		{Id: "3", CreatedAt: "2024-01-03T00:00:00Z", Content: "<p>boost</p>", Reblog: &model.RebloggedStatus{Id: "x"}, FavouritesCount: 999},
		{Id: "4", CreatedAt: "2024-01-04T00:00:00Z", Content: "<p>steady</p>", FavouritesCount: 10},
	}

	ranked := TopPosts(posts)

	require.Len(t, ranked, 3, "boosts are excluded")
	assert.Equal(t, "2", ranked[0].Id)
	assert.Equal(t, 75, ranked[0].Engagement)
	assert.Equal(t, "viral", ranked[0].Excerpt)
	assert.Equal(t, "4", ranked[1].Id)
	assert.Equal(t, "1", ranked[2].Id)
}

func TestTopPostsTieOrder(t *testing.T) {
	posts := []model.Post{
		{Id: "a", CreatedAt: "2024-01-01T00:00:00Z", Content: "first", FavouritesCount: 5},
		{Id: "b", CreatedAt: "2024-01-02T00:00:00Z", Content: "second", FavouritesCount: 5},
	}

	ranked := TopPosts(posts)

	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Id)
	assert.Equal(t, "b", ranked[1].Id)
}

func TestTopPostsLimit(t *testing.T) {
	var posts []model.Post
	for i := 0; i < 8; i++ {
		posts = append(posts, model.Post{
			Id:              fmt.Sprintf("%d", i),
			CreatedAt:       "2024-01-01T00:00:00Z",
			Content:         "post",
			FavouritesCount: i,
		})
	}

	ranked := TopPosts(posts)

	require.Len(t, ranked, 5)
	assert.Equal(t, "7", ranked[0].Id)
}

func TestTopPostsTruncatesExcerpt(t *testing.T) {
	long := strings.Repeat("ä", 250)
	posts := []model.Post{
		{Id: "1", CreatedAt: "2024-01-01T00:00:00Z", Content: "<p>" + long + "</p>"},
	}

	ranked := TopPosts(posts)

	require.Len(t, ranked, 1)
	runes := []rune(ranked[0].Excerpt)
	assert.Len(t, runes, 201, "200 runes plus the ellipsis")
	assert.Equal(t, '…', runes[200])
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text passes through",
			input:    "no markup here",
			expected: "no markup here",
		},
		{
			name:     "paragraphs collapse to single spaces",
			input:    "<p>first</p><p>second</p>",
			expected: "first second",
		},
		{
			name:     "line breaks become spaces",
			input:    "one<br>two<br/>three",
			expected: "one two three",
		},
		{
			name:     "links keep their text",
			input:    `<p>see <a href="https://example.org">this post</a></p>`,
			expected: "see this post",
		},
		{
			name:     "entities decode",
			input:    "<p>fish &amp; chips</p>",
			expected: "fish & chips",
		},
		{
			name:     "nested lists",
			input:    "<ul><li>a</li><li>b</li></ul>",
			expected: "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripMarkup(tt.input))
		})
	}
}
