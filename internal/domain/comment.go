package domain

import (
	"fmt"
	"time"
)

type CommentID int64

// Comment is a categorized channel comment as served by the backend. The
// client never mutates comments; fresh data only ever arrives via a full
// category refetch.
type Comment struct {
	ID                CommentID
	PlatformCommentID string
	AuthorName        string
	AuthorAvatarURL   string
	TextOriginal      string
	VideoID           string
	Category          Category
	PublishedAt       time.Time
}

// Permalink returns the public URL of the comment on the platform.
func (c Comment) Permalink() string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s&lc=%s", c.VideoID, c.PlatformCommentID)
}
