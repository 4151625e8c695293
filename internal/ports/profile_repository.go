package ports

import (
	"context"

	"github.com/aadarshkt/comment-copilot/internal/domain"
)

// ProfileRepository loads and stores the client profile. Load returns a
// fully defaulted profile when none has been saved yet.
type ProfileRepository interface {
	Load(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
}
