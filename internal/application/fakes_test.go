package application

import (
	"context"
	"sync"
	"time"

	"github.com/aadarshkt/comment-copilot/internal/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type replyCall struct {
	id   domain.CommentID
	text string
}

// stubAPI is a hand-rolled ChannelAPI double; function fields override the
// defaults, counters record traffic.
type stubAPI struct {
	mu sync.Mutex

	commentsFn    func(ctx context.Context, category domain.Category) ([]domain.Comment, error)
	commentsCalls []domain.Category

	userFn    func(ctx context.Context) (domain.User, error)
	userCalls int

	syncErr   error
	syncCalls int

	replyErr   error
	replyCalls []replyCall

	logoutErr   error
	logoutCalls int
}

func (s *stubAPI) CurrentUser(ctx context.Context) (domain.User, error) {
	s.mu.Lock()
	s.userCalls++
	fn := s.userFn
	s.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return domain.User{}, domain.ErrUnauthenticated
}

func (s *stubAPI) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutCalls++
	return s.logoutErr
}

func (s *stubAPI) Comments(ctx context.Context, category domain.Category) ([]domain.Comment, error) {
	s.mu.Lock()
	s.commentsCalls = append(s.commentsCalls, category)
	fn := s.commentsFn
	s.mu.Unlock()
	if fn != nil {
		return fn(ctx, category)
	}
	return nil, nil
}

func (s *stubAPI) SyncChannel(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncCalls++
	return s.syncErr
}

func (s *stubAPI) Reply(ctx context.Context, id domain.CommentID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replyCalls = append(s.replyCalls, replyCall{id: id, text: text})
	return s.replyErr
}

func (s *stubAPI) commentsCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.commentsCalls)
}

func (s *stubAPI) replyCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.replyCalls)
}

func fixedComments(comments ...domain.Comment) func(context.Context, domain.Category) ([]domain.Comment, error) {
	return func(context.Context, domain.Category) ([]domain.Comment, error) {
		return comments, nil
	}
}

func testComment(id int64, author string, category domain.Category) domain.Comment {
	return domain.Comment{
		ID:                domain.CommentID(id),
		PlatformCommentID: "yt-comment",
		AuthorName:        author,
		TextOriginal:      "hello there",
		VideoID:           "vid-1",
		Category:          category,
		PublishedAt:       time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}
