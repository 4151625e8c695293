package application

import (
	"sync"
	"time"

	"github.com/aadarshkt/comment-copilot/internal/domain"
	"github.com/aadarshkt/comment-copilot/internal/ports"
)

// Notifier holds at most one transient outcome message. A new message
// immediately supersedes an unexpired one; expiry is purely time-based, so a
// fast sequence of calls collapses to "most recent wins".
type Notifier struct {
	clock ports.Clock
	ttl   time.Duration

	mu      sync.Mutex
	current *domain.Notification
}

func NewNotifier(clock ports.Clock, ttl time.Duration) *Notifier {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if ttl <= 0 {
		ttl = domain.DefaultNotificationTTL
	}
	return &Notifier{clock: clock, ttl: ttl}
}

func (n *Notifier) Success(message string) domain.Notification {
	return n.Show(message, domain.NotificationSuccess)
}

func (n *Notifier) Error(message string) domain.Notification {
	return n.Show(message, domain.NotificationError)
}

func (n *Notifier) Show(message string, kind domain.NotificationKind) domain.Notification {
	notification := domain.Notification{
		Message:   message,
		Kind:      kind,
		ExpiresAt: n.clock.Now().Add(n.ttl),
	}

	n.mu.Lock()
	n.current = &notification
	n.mu.Unlock()
	return notification
}

// Current returns the live notification, or nil once it has expired.
func (n *Notifier) Current() *domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return nil
	}
	if n.current.Expired(n.clock.Now()) {
		n.current = nil
		return nil
	}
	notification := *n.current
	return &notification
}

// TTL is the fixed lifetime applied to every message.
func (n *Notifier) TTL() time.Duration {
	return n.ttl
}
