package model

import (
	"time"
)

// Post is a single status as reported by the instance API. Engagement
// counters reflect other accounts' reactions to this status.
type Post struct {
	Id               string            `json:"id"`
	CreatedAt        string            `json:"created_at"`
	Content          string            `json:"content"`
	Visibility       string            `json:"visibility,omitempty"`
	Language         string            `json:"language,omitempty"`
	Url              string            `json:"url,omitempty"`
	InReplyToId      *string           `json:"in_reply_to_id"`
	Reblog           *RebloggedStatus  `json:"reblog"`
	FavouritesCount  int               `json:"favourites_count"`
	ReblogsCount     int               `json:"reblogs_count"`
	RepliesCount     int               `json:"replies_count"`
	Tags             []Tag             `json:"tags,omitempty"`
	MediaAttachments []MediaAttachment `json:"media_attachments,omitempty"`
}

// RebloggedStatus carries the boosted status. Only its presence matters
// for classification; the nested content is never analyzed.
type RebloggedStatus struct {
	Id      string `json:"id"`
	Content string `json:"content,omitempty"`
}

type Tag struct {
	Name string `json:"name"`
	Url  string `json:"url,omitempty"`
}

type MediaAttachment struct {
	Id   string `json:"id"`
	Type string `json:"type"`
	Url  string `json:"url,omitempty"`
}

// Account is the owning account's metadata, used only for display.
type Account struct {
	Id          string `json:"id"`
	Username    string `json:"username"`
	Acct        string `json:"acct"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar,omitempty"`
	Url         string `json:"url,omitempty"`
}

// IsOriginal reports whether the post was authored by the account
// rather than boosted. A reply without a reblog marker is original.
func (p *Post) IsOriginal() bool {
	return p.Reblog == nil
}

// IsReblog reports whether the post carries a reblog marker.
func (p *Post) IsReblog() bool {
	return p.Reblog != nil
}

// IsReply reports whether the post replies to another status.
func (p *Post) IsReply() bool {
	return p.InReplyToId != nil && *p.InReplyToId != ""
}

// HasMedia reports whether the post carries at least one attachment.
func (p *Post) HasMedia() bool {
	return len(p.MediaAttachments) > 0
}

// Engagement is the combined reaction count others gave this post.
func (p *Post) Engagement() int {
	return p.FavouritesCount + p.ReblogsCount + p.RepliesCount
}

// CreatedTime parses the reported creation timestamp. The offset in the
// timestamp is preserved; callers pick the zone they aggregate in.
func (p *Post) CreatedTime() (time.Time, error) {
	return time.Parse(time.RFC3339, p.CreatedAt)
}

// Name returns the best display name available for the account.
func (a Account) Name() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	if a.Username != "" {
		return a.Username
	}
	return "Unknown"
}

// Handle returns the @-qualified account handle.
func (a Account) Handle() string {
	if a.Acct == "" {
		return "@" + a.Username
	}
	return "@" + a.Acct
}
