package api

import (
	"time"

	"github.com/aadarshkt/comment-copilot/internal/domain"
)

// Wire payloads as served by the backend.

type userPayload struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	ChannelID *string `json:"channel_id"`
}

func (p userPayload) toDomain() domain.User {
	user := domain.User{ID: p.ID, Email: p.Email}
	if p.ChannelID != nil {
		user.ChannelID = *p.ChannelID
	}
	return user
}

type commentPayload struct {
	ID               int64  `json:"id"`
	YoutubeCommentID string `json:"youtube_comment_id"`
	TextOriginal     string `json:"text_original"`
	AuthorName       string `json:"author_name"`
	AuthorAvatarURL  string `json:"author_avatar_url"`
	VideoID          string `json:"video_id"`
	PublishedAt      string `json:"published_at"`
	Category         string `json:"category"`
}

func (p commentPayload) toDomain() domain.Comment {
	publishedAt, err := time.Parse(time.RFC3339, p.PublishedAt)
	if err != nil {
		// The backend emits naive isoformat timestamps for old rows.
		publishedAt, _ = time.Parse("2006-01-02T15:04:05", p.PublishedAt)
	}
	return domain.Comment{
		ID:                domain.CommentID(p.ID),
		PlatformCommentID: p.YoutubeCommentID,
		TextOriginal:      p.TextOriginal,
		AuthorName:        p.AuthorName,
		AuthorAvatarURL:   p.AuthorAvatarURL,
		VideoID:           p.VideoID,
		Category:          domain.Category(p.Category),
		PublishedAt:       publishedAt,
	}
}

type replyRequest struct {
	ReplyText string `json:"reply_text"`
}
