package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aadarshkt/comment-copilot/internal/domain"
	"github.com/aadarshkt/comment-copilot/internal/ports"
)

// ReplyService owns the single active reply draft and drives its state
// machine. Opening a draft for one comment while another is active discards
// the other's buffer; a successful send invalidates the active category so
// the reply's side effects (reclassification included) show on next read.
type ReplyService struct {
	api    ports.ChannelAPI
	cache  *CommentCache
	notify *Notifier

	mu    sync.Mutex
	draft domain.ReplyDraft
}

func NewReplyService(api ports.ChannelAPI, cache *CommentCache, notify *Notifier) *ReplyService {
	return &ReplyService{api: api, cache: cache, notify: notify}
}

// Draft returns the current draft snapshot.
func (r *ReplyService) Draft() domain.ReplyDraft {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draft
}

// Open starts an empty draft for the comment, closing any other active one.
func (r *ReplyService) Open(id domain.CommentID) domain.ReplyDraft {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draft = r.draft.Open(id)
	return r.draft
}

// Edit replaces the open draft's buffer.
func (r *ReplyService) Edit(text string) (domain.ReplyDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	draft, err := r.draft.Edit(text)
	if err != nil {
		return r.draft, err
	}
	r.draft = draft
	return r.draft, nil
}

// Cancel closes the draft and discards the buffer.
func (r *ReplyService) Cancel() domain.ReplyDraft {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draft = r.draft.Cancel()
	return r.draft
}

// Send delivers the open draft's text. A whitespace-only buffer is a silent
// no-op: no network call, no phase change, no notification. On success the
// draft closes and the category entry is invalidated; on failure the draft
// returns to Open with its buffer preserved for retry.
func (r *ReplyService) Send(ctx context.Context, category domain.Category) error {
	r.mu.Lock()
	draft, err := r.draft.BeginSend()
	if err != nil {
		r.mu.Unlock()
		if errors.Is(err, domain.ErrEmptyReply) {
			return nil
		}
		return err
	}
	r.draft = draft
	id := draft.CommentID
	text := strings.TrimSpace(draft.Text)
	r.mu.Unlock()

	sendErr := r.api.Reply(ctx, id, text)

	r.mu.Lock()
	defer r.mu.Unlock()
	if sendErr != nil {
		if reverted, revertErr := r.draft.SendFailed(); revertErr == nil {
			r.draft = reverted
		}
		r.notify.Error(replyFailureMessage(sendErr))
		return fmt.Errorf("send reply to comment %d: %w", id, sendErr)
	}

	if closed, closeErr := r.draft.SendSucceeded(); closeErr == nil {
		r.draft = closed
	}
	r.cache.Invalidate(category)
	r.notify.Success("Reply sent successfully!")
	return nil
}

func replyFailureMessage(err error) string {
	if errors.Is(err, domain.ErrCommentNotFound) {
		return "Comment not found."
	}
	if errors.Is(err, domain.ErrUnauthenticated) {
		return "Session expired. Please log in again."
	}
	return "Failed to send reply. Please try again."
}
