// Package api implements the backend HTTP client. Requests carry the stored
// session cookie; a 401 from any endpoint maps to domain.ErrUnauthenticated
// and is never retried here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aadarshkt/comment-copilot/internal/domain"
	"github.com/aadarshkt/comment-copilot/internal/ports"
)

const (
	// sessionCookieName is the Flask session cookie the backend issues.
	sessionCookieName = "session"

	// CredentialKey is where the cookie value lives in the credential store.
	CredentialKey = "session_cookie"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      ports.CredentialStore
}

var _ ports.ChannelAPI = (*Client)(nil)

// New builds a client for the backend at baseURL (including the /api
// prefix). The timeout bounds every request; the source this tool replaces
// had none, which left hung requests pending forever.
func New(baseURL string, creds ports.CredentialStore, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = domain.DefaultRequestTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		creds:      creds,
	}
}

// LoginURL is where the operator's browser starts the externally-managed
// OAuth flow.
func (c *Client) LoginURL() string {
	return c.baseURL + "/auth/google/login"
}

func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var payload userPayload
	if err := c.do(ctx, http.MethodGet, "/user/me", nil, nil, &payload); err != nil {
		return domain.User{}, fmt.Errorf("fetch current user: %w", err)
	}
	return payload.toDomain(), nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (c *Client) Comments(ctx context.Context, category domain.Category) ([]domain.Comment, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", string(category))
	}

	var payload []commentPayload
	if err := c.do(ctx, http.MethodGet, "/comments", query, nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch comments for %q: %w", category, err)
	}

	comments := make([]domain.Comment, 0, len(payload))
	for _, p := range payload {
		comments = append(comments, p.toDomain())
	}
	return comments, nil
}

func (c *Client) SyncChannel(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/channel/sync", nil, nil, nil); err != nil {
		return fmt.Errorf("sync channel: %w", err)
	}
	return nil
}

func (c *Client) Reply(ctx context.Context, id domain.CommentID, text string) error {
	body := replyRequest{ReplyText: text}
	path := fmt.Sprintf("/comments/%d/reply", id)
	if err := c.do(ctx, http.MethodPost, path, nil, body, nil); err != nil {
		return fmt.Errorf("reply to comment %d: %w", id, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachSession(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) attachSession(ctx context.Context, req *http.Request) {
	if c.creds == nil {
		return
	}
	value, err := c.creds.Get(ctx, CredentialKey)
	if err != nil || value == "" {
		// No stored session; let the server answer 401.
		return
	}
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: value})
}

func (c *Client) statusError(resp *http.Response) error {
	message := serverMessage(resp.Body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case http.StatusNotFound:
		if strings.Contains(strings.ToLower(message), "comment") {
			return domain.ErrCommentNotFound
		}
		return domain.ErrNoChannel
	}

	if message != "" {
		return fmt.Errorf("server responded %d: %s", resp.StatusCode, message)
	}
	return fmt.Errorf("server responded %d", resp.StatusCode)
}

func serverMessage(body io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 1<<16)).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

// IsAuthError reports whether err is the unauthenticated signal from any
// endpoint.
func IsAuthError(err error) bool {
	return errors.Is(err, domain.ErrUnauthenticated)
}
