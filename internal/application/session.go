package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aadarshkt/comment-copilot/internal/domain"
	"github.com/aadarshkt/comment-copilot/internal/ports"
)

// SessionGate owns the session state every other component reads. It issues
// one identity fetch per TTL window; a failed fetch (network trouble
// included) means "unauthenticated", never an application error, and is not
// retried until the next explicit resolve after expiry.
type SessionGate struct {
	api   ports.ChannelAPI
	clock ports.Clock
	ttl   time.Duration

	mu         sync.Mutex
	user       *domain.User
	resolved   bool
	resolvedAt time.Time
	loading    bool
}

func NewSessionGate(api ports.ChannelAPI, clock ports.Clock, ttl time.Duration) *SessionGate {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if ttl <= 0 {
		ttl = domain.DefaultSessionTTL
	}
	return &SessionGate{api: api, clock: clock, ttl: ttl}
}

// Session returns the latest snapshot without triggering a fetch. IsLoading
// is true until the first resolve settles.
func (g *SessionGate) Session() domain.Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sessionLocked()
}

func (g *SessionGate) sessionLocked() domain.Session {
	session := domain.Session{IsLoading: g.loading || !g.resolved}
	if g.user != nil {
		user := *g.user
		session.User = &user
	}
	return session
}

// Resolve returns the current session, fetching the identity when it has
// never been resolved or the last resolution is older than the TTL. The
// returned Navigation is the one-time side effect of an authentication state
// transition; callers consume it, the gate never navigates.
func (g *SessionGate) Resolve(ctx context.Context) (domain.Session, domain.Navigation) {
	g.mu.Lock()
	if g.resolved && g.clock.Now().Sub(g.resolvedAt) <= g.ttl {
		session := g.sessionLocked()
		g.mu.Unlock()
		return session, domain.NavigateNone
	}
	wasResolved := g.resolved
	wasAuthenticated := g.user != nil
	g.loading = true
	g.mu.Unlock()

	user, err := g.api.CurrentUser(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.loading = false
	g.resolved = true
	g.resolvedAt = g.clock.Now()
	if err != nil {
		// Indistinguishable from "not logged in" on purpose.
		g.user = nil
	} else {
		g.user = &user
	}

	nav := domain.NavigateNone
	nowAuthenticated := g.user != nil
	if nowAuthenticated != wasAuthenticated || !wasResolved {
		if nowAuthenticated {
			nav = domain.NavigateToTriage
		} else {
			nav = domain.NavigateToEntry
		}
	}
	return g.sessionLocked(), nav
}

// Logout clears the server session, then unconditionally clears the local
// user and forces the next Resolve to re-fetch so the client converges to
// the server's view. The local clear happens even when the server call
// fails; the error is returned for reporting only.
func (g *SessionGate) Logout(ctx context.Context) error {
	err := g.api.Logout(ctx)

	g.mu.Lock()
	g.user = nil
	g.resolved = false
	g.resolvedAt = time.Time{}
	g.mu.Unlock()

	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
