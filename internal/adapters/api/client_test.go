package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadarshkt/comment-copilot/internal/domain"
)

type memoryStore struct {
	values map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", domain.ErrSecretNotFound
	}
	return value, nil
}

func (s *memoryStore) Put(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func TestClientAttachesStoredSessionCookie(t *testing.T) {
	t.Parallel()

	var gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("session"); err == nil {
			gotCookie = cookie.Value
		}
		_ = json.NewEncoder(w).Encode(userPayload{ID: 1, Email: "creator@example.com"})
	}))
	defer server.Close()

	creds := newMemoryStore()
	require.NoError(t, creds.Put(context.Background(), CredentialKey, "abc.def.ghi"))

	client := New(server.URL, creds, time.Second)
	_, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", gotCookie)
}

func TestClientProceedsWithoutStoredCookie(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("session"); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(userPayload{ID: 1})
	}))
	defer server.Close()

	client := New(server.URL, newMemoryStore(), time.Second)
	_, err := client.CurrentUser(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestClientCurrentUser(t *testing.T) {
	t.Parallel()

	channel := "UC123"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/user/me", r.URL.Path)
		_ = json.NewEncoder(w).Encode(userPayload{ID: 42, Email: "creator@example.com", ChannelID: &channel})
	}))
	defer server.Close()

	client := New(server.URL, newMemoryStore(), time.Second)
	user, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: 42, Email: "creator@example.com", ChannelID: "UC123"}, user)
}

func TestClientCommentsSendsCategoryQuery(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/comments", r.URL.Path)
		assert.Equal(t, "Reply to Question", r.URL.Query().Get("category"))
		_ = json.NewEncoder(w).Encode([]commentPayload{{
			ID:               7,
			YoutubeCommentID: "UgxK",
			TextOriginal:     "How did you light this shot?",
			AuthorName:       "Bob",
			VideoID:          "abc123",
			PublishedAt:      "2026-02-27T10:30:00",
			Category:         "Reply to Question",
		}})
	}))
	defer server.Close()

	client := New(server.URL, newMemoryStore(), time.Second)
	comments, err := client.Comments(context.Background(), "Reply to Question")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, domain.CommentID(7), comments[0].ID)
	assert.Equal(t, "Bob", comments[0].AuthorName)
	assert.Equal(t, time.Date(2026, 2, 27, 10, 30, 0, 0, time.UTC), comments[0].PublishedAt)
}

func TestClientCommentsOmitsEmptyCategory(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("category"))
		_ = json.NewEncoder(w).Encode([]commentPayload{})
	}))
	defer server.Close()

	client := New(server.URL, newMemoryStore(), time.Second)
	comments, err := client.Comments(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestClientSyncChannelAcceptsAccepted(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/channel/sync", r.URL.Path)
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "sync started"})
	}))
	defer server.Close()

	client := New(server.URL, newMemoryStore(), time.Second)
	assert.NoError(t, client.SyncChannel(context.Background()))
}

func TestClientReplyPostsTrimmedText(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/comments/7/reply", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body replyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Thanks for watching!", body.ReplyText)

		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer server.Close()

	client := New(server.URL, newMemoryStore(), time.Second)
	assert.NoError(t, client.Reply(context.Background(), 7, "Thanks for watching!"))
}

func TestClientStatusErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"Not authenticated"}`, want: domain.ErrUnauthenticated},
		{name: "comment missing", status: http.StatusNotFound, body: `{"error":"Comment not found"}`, want: domain.ErrCommentNotFound},
		{name: "no channel", status: http.StatusNotFound, body: `{"error":"No channel linked"}`, want: domain.ErrNoChannel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := New(server.URL, newMemoryStore(), time.Second)
			_, err := client.Comments(context.Background(), "All")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClientSurfacesServerErrorMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer server.Close()

	client := New(server.URL, newMemoryStore(), time.Second)
	err := client.SyncChannel(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestClientHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := New(server.URL, newMemoryStore(), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.CurrentUser(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsAuthError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsAuthError(domain.ErrUnauthenticated))
	assert.False(t, IsAuthError(domain.ErrNoChannel))
	assert.False(t, IsAuthError(nil))
}

func TestParsePublishedAtFallback(t *testing.T) {
	t.Parallel()

	withZone := commentPayload{PublishedAt: "2026-02-27T10:30:00Z"}.toDomain()
	assert.Equal(t, time.Date(2026, 2, 27, 10, 30, 0, 0, time.UTC), withZone.PublishedAt)

	naive := commentPayload{PublishedAt: "2026-02-27T10:30:00"}.toDomain()
	assert.Equal(t, time.Date(2026, 2, 27, 10, 30, 0, 0, time.UTC), naive.PublishedAt)
}
