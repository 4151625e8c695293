package domain

import "time"

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient outcome message. At most one is live at a
// time; a newer one supersedes an unexpired one.
type Notification struct {
	Message   string
	Kind      NotificationKind
	ExpiresAt time.Time
}

func (n Notification) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}
