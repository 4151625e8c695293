package application

import (
	"context"
	"sync"
	"time"

	"github.com/aadarshkt/comment-copilot/internal/domain"
	"github.com/aadarshkt/comment-copilot/internal/ports"
)

// Snapshot is a point-in-time read of one category's cache entry. Stale data
// is still servable; Err carries the last fetch failure without clearing
// previously cached comments.
type Snapshot struct {
	Comments  []domain.Comment
	FetchedAt time.Time
	Loading   bool
	Stale     bool
	Err       error
}

func (s Snapshot) HasData() bool {
	return !s.FetchedAt.IsZero()
}

type cacheEntry struct {
	comments  []domain.Comment
	fetchedAt time.Time
	err       error
	forced    bool
}

type fetchCall struct {
	done     chan struct{}
	comments []domain.Comment
	err      error
}

// CommentCache holds one entry per category ever requested. Entries older
// than the TTL (or explicitly invalidated) are stale: still served, but the
// next fetch goes to the backend. Concurrent fetches for the same category
// share a single in-flight request.
type CommentCache struct {
	api   ports.ChannelAPI
	clock ports.Clock
	ttl   time.Duration

	mu       sync.Mutex
	entries  map[domain.Category]*cacheEntry
	inflight map[domain.Category]*fetchCall
}

func NewCommentCache(api ports.ChannelAPI, clock ports.Clock, ttl time.Duration) *CommentCache {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if ttl <= 0 {
		ttl = domain.DefaultCommentTTL
	}
	return &CommentCache{
		api:      api,
		clock:    clock,
		ttl:      ttl,
		entries:  map[domain.Category]*cacheEntry{},
		inflight: map[domain.Category]*fetchCall{},
	}
}

// Read returns the current entry without side effects. Loading is true while
// a fetch for the category is in flight.
func (c *CommentCache) Read(category domain.Category) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{Loading: c.inflight[category] != nil}
	entry := c.entries[category]
	if entry == nil {
		return snap
	}

	snap.Comments = copyComments(entry.comments)
	snap.FetchedAt = entry.fetchedAt
	snap.Err = entry.err
	snap.Stale = c.stale(entry)
	return snap
}

// NeedsFetch reports whether a read of the category should be backed by a
// fetch: the entry is missing, stale, or carries only an error.
func (c *CommentCache) NeedsFetch(category domain.Category) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := c.entries[category]
	if entry == nil {
		return c.inflight[category] == nil
	}
	if entry.fetchedAt.IsZero() {
		return c.inflight[category] == nil
	}
	return c.stale(entry) && c.inflight[category] == nil
}

// Fetch returns fresh comments for the category, going to the backend only
// when the entry is missing or stale. Callers that race on the same category
// join the single in-flight request instead of issuing a duplicate. A failed
// fetch records the error on the entry but leaves the last good data and its
// timestamp untouched.
func (c *CommentCache) Fetch(ctx context.Context, category domain.Category) ([]domain.Comment, error) {
	c.mu.Lock()
	if entry := c.entries[category]; entry != nil && !entry.fetchedAt.IsZero() && !c.stale(entry) {
		comments := copyComments(entry.comments)
		c.mu.Unlock()
		return comments, nil
	}
	if call := c.inflight[category]; call != nil {
		c.mu.Unlock()
		select {
		case <-call.done:
			return copyComments(call.comments), call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	call := &fetchCall{done: make(chan struct{})}
	c.inflight[category] = call
	c.mu.Unlock()

	comments, err := c.api.Comments(ctx, category)

	c.mu.Lock()
	delete(c.inflight, category)
	entry := c.entries[category]
	if entry == nil {
		entry = &cacheEntry{}
		c.entries[category] = entry
	}
	if err != nil {
		entry.err = err
	} else {
		entry.comments = comments
		entry.fetchedAt = c.clock.Now()
		entry.err = nil
		entry.forced = false
	}
	c.mu.Unlock()

	call.comments = comments
	call.err = err
	close(call.done)
	return copyComments(comments), err
}

// Invalidate marks the category's entry as stale. Unknown categories are a
// no-op.
func (c *CommentCache) Invalidate(category domain.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry := c.entries[category]; entry != nil {
		entry.forced = true
	}
}

// InvalidateAll marks every entry as stale.
func (c *CommentCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, entry := range c.entries {
		entry.forced = true
	}
}

func (c *CommentCache) stale(entry *cacheEntry) bool {
	if entry.forced {
		return true
	}
	if entry.fetchedAt.IsZero() {
		return true
	}
	return c.clock.Now().Sub(entry.fetchedAt) > c.ttl
}

func copyComments(comments []domain.Comment) []domain.Comment {
	if comments == nil {
		return nil
	}
	out := make([]domain.Comment, len(comments))
	copy(out, comments)
	return out
}
