package domain

// User is an immutable snapshot of the authenticated identity. ChannelID is
// empty when no channel is linked to the account yet.
type User struct {
	ID        int64
	Email     string
	ChannelID string
}

// Session is the resolved (or in-flight) authentication state. User is nil
// while unauthenticated; IsLoading is true only until the first identity
// fetch settles.
type Session struct {
	User      *User
	IsLoading bool
}

func (s Session) IsAuthenticated() bool {
	return s.User != nil
}

// Navigation is the side effect a session transition asks the surrounding
// surface to perform. The core never navigates itself.
type Navigation string

const (
	NavigateNone     Navigation = ""
	NavigateToTriage Navigation = "triage"
	NavigateToEntry  Navigation = "entry"
)
