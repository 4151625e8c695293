package domain

import "time"

// Profile is the operator-editable client configuration, persisted as a TOML
// file by the profile repository. Zero values mean "use the default".
type Profile struct {
	BaseURL        string
	RequestTimeout time.Duration

	// CategoryNames is the injected workflow vocabulary ("All" excluded);
	// DefaultCategory is shown when no category parameter is supplied.
	CategoryNames   []string
	DefaultCategory string

	CommentTTL      time.Duration
	SessionTTL      time.Duration
	NotificationTTL time.Duration
}

const (
	DefaultBaseURL         = "http://localhost:5001/api"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultCommentTTL      = 2 * time.Minute
	DefaultSessionTTL      = 5 * time.Minute
	DefaultNotificationTTL = 3 * time.Second
)

// ApplyDefaults fills every unset field.
func (p *Profile) ApplyDefaults() {
	if p.BaseURL == "" {
		p.BaseURL = DefaultBaseURL
	}
	if p.RequestTimeout <= 0 {
		p.RequestTimeout = DefaultRequestTimeout
	}
	if len(p.CategoryNames) == 0 {
		p.CategoryNames = append([]string(nil), defaultCategoryNames...)
	}
	if p.DefaultCategory == "" {
		p.DefaultCategory = p.CategoryNames[0]
	}
	if p.CommentTTL <= 0 {
		p.CommentTTL = DefaultCommentTTL
	}
	if p.SessionTTL <= 0 {
		p.SessionTTL = DefaultSessionTTL
	}
	if p.NotificationTTL <= 0 {
		p.NotificationTTL = DefaultNotificationTTL
	}
}

// Vocabulary builds the category vocabulary configured by the profile.
func (p Profile) Vocabulary() (Vocabulary, error) {
	q := p
	q.ApplyDefaults()
	return NewVocabulary(q.CategoryNames, q.DefaultCategory)
}
