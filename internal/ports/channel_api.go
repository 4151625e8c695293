package ports

import (
	"context"

	"github.com/aadarshkt/comment-copilot/internal/domain"
)

// ChannelAPI is the backend surface the client consumes. Every call carries
// the stored session credential; implementations map a 401 response to
// domain.ErrUnauthenticated and never retry it.
type ChannelAPI interface {
	// CurrentUser resolves the authenticated identity, or
	// domain.ErrUnauthenticated when no valid session exists.
	CurrentUser(ctx context.Context) (domain.User, error)

	// Logout clears the server-side session.
	Logout(ctx context.Context) error

	// Comments returns the ordered comment list for a category.
	Comments(ctx context.Context, category domain.Category) ([]domain.Comment, error)

	// SyncChannel asks the backend to pull the latest comments from the
	// platform. The backend queues the work; any 2xx is success.
	SyncChannel(ctx context.Context) error

	// Reply delivers reply text to a single comment.
	Reply(ctx context.Context, id domain.CommentID, text string) error
}
