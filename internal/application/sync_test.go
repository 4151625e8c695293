package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aadarshkt/comment-copilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncSuccessInvalidatesEveryCategoryAndNotifies(t *testing.T) {
	t.Parallel()

	clock := newFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	api := &stubAPI{commentsFn: fixedComments(testComment(1, "Alice", needsAction))}
	cache := NewCommentCache(api, clock, 2*time.Minute)
	notifier := NewNotifier(clock, 3*time.Second)
	syncer := NewSyncCoordinator(api, cache, notifier)

	_, err := cache.Fetch(context.Background(), needsAction)
	require.NoError(t, err)
	_, err = cache.Fetch(context.Background(), domain.CategoryAll)
	require.NoError(t, err)

	require.NoError(t, syncer.Sync(context.Background()))

	assert.True(t, cache.NeedsFetch(needsAction))
	assert.True(t, cache.NeedsFetch(domain.CategoryAll))

	current := notifier.Current()
	require.NotNil(t, current)
	assert.Equal(t, domain.NotificationSuccess, current.Kind)
	assert.Equal(t, "Comments have been refreshed.", current.Message)
}

func TestSyncFailureLeavesCacheUntouched(t *testing.T) {
	t.Parallel()

	clock := newFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	api := &stubAPI{commentsFn: fixedComments(testComment(1, "Alice", needsAction))}
	cache := NewCommentCache(api, clock, 2*time.Minute)
	notifier := NewNotifier(clock, 3*time.Second)
	syncer := NewSyncCoordinator(api, cache, notifier)

	_, err := cache.Fetch(context.Background(), needsAction)
	require.NoError(t, err)
	before := cache.Read(needsAction)

	api.mu.Lock()
	api.syncErr = errors.New("upstream quota exceeded")
	api.mu.Unlock()

	err = syncer.Sync(context.Background())
	require.Error(t, err)

	after := cache.Read(needsAction)
	assert.Equal(t, before.FetchedAt, after.FetchedAt, "failed sync must not touch fetchedAt")
	assert.False(t, after.Stale)
	assert.False(t, cache.NeedsFetch(needsAction))

	current := notifier.Current()
	require.NotNil(t, current)
	assert.Equal(t, domain.NotificationError, current.Kind)
}

func TestSyncRepeatedCallsAreIndependent(t *testing.T) {
	t.Parallel()

	clock := newFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	api := &stubAPI{}
	cache := NewCommentCache(api, clock, 2*time.Minute)
	notifier := NewNotifier(clock, 3*time.Second)
	syncer := NewSyncCoordinator(api, cache, notifier)

	require.NoError(t, syncer.Sync(context.Background()))
	require.NoError(t, syncer.Sync(context.Background()))

	assert.Equal(t, 2, api.syncCalls)
	assert.False(t, syncer.Pending())
}
