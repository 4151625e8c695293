package application

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/aadarshkt/comment-copilot/internal/ports"
)

// SyncCoordinator triggers a server-side pull of the latest platform
// comments. On success every cached category is invalidated so the next read
// refetches; on failure the cache is left untouched and stays authoritative.
// Calls are independent; Pending lets the triggering surface disable
// re-entrant invocation.
type SyncCoordinator struct {
	api     ports.ChannelAPI
	cache   *CommentCache
	notify  *Notifier
	pending atomic.Bool
}

func NewSyncCoordinator(api ports.ChannelAPI, cache *CommentCache, notify *Notifier) *SyncCoordinator {
	return &SyncCoordinator{api: api, cache: cache, notify: notify}
}

func (s *SyncCoordinator) Pending() bool {
	return s.pending.Load()
}

func (s *SyncCoordinator) Sync(ctx context.Context) error {
	s.pending.Store(true)
	defer s.pending.Store(false)

	if err := s.api.SyncChannel(ctx); err != nil {
		s.notify.Error("Failed to sync comments. Please try again.")
		return fmt.Errorf("sync channel: %w", err)
	}

	// Invalidation strictly follows the observed success response.
	s.cache.InvalidateAll()
	s.notify.Success("Comments have been refreshed.")
	return nil
}
