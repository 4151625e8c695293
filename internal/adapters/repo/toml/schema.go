package toml

import (
	"fmt"
	"time"

	"github.com/aadarshkt/comment-copilot/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int                 `toml:"version"`
	Server     serverSchema        `toml:"server"`
	Categories categoriesSchema    `toml:"categories"`
	Cache      cacheSchema         `toml:"cache"`
	Notify     notificationsSchema `toml:"notifications"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profile schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type serverSchema struct {
	BaseURL               string `toml:"base_url,omitempty"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds,omitempty"`
}

type categoriesSchema struct {
	Names   []string `toml:"names,omitempty"`
	Default string   `toml:"default,omitempty"`
}

type cacheSchema struct {
	CommentTTLSeconds int `toml:"comment_ttl_seconds,omitempty"`
	SessionTTLSeconds int `toml:"session_ttl_seconds,omitempty"`
}

type notificationsSchema struct {
	DurationSeconds int `toml:"duration_seconds,omitempty"`
}

func toSchema(profile domain.Profile) fileSchema {
	return fileSchema{
		Version: currentSchemaVersion,
		Server: serverSchema{
			BaseURL:               profile.BaseURL,
			RequestTimeoutSeconds: int(profile.RequestTimeout / time.Second),
		},
		Categories: categoriesSchema{
			Names:   profile.CategoryNames,
			Default: profile.DefaultCategory,
		},
		Cache: cacheSchema{
			CommentTTLSeconds: int(profile.CommentTTL / time.Second),
			SessionTTLSeconds: int(profile.SessionTTL / time.Second),
		},
		Notify: notificationsSchema{
			DurationSeconds: int(profile.NotificationTTL / time.Second),
		},
	}
}

func fromSchema(file fileSchema) domain.Profile {
	profile := domain.Profile{
		BaseURL:         file.Server.BaseURL,
		RequestTimeout:  time.Duration(file.Server.RequestTimeoutSeconds) * time.Second,
		CategoryNames:   file.Categories.Names,
		DefaultCategory: file.Categories.Default,
		CommentTTL:      time.Duration(file.Cache.CommentTTLSeconds) * time.Second,
		SessionTTL:      time.Duration(file.Cache.SessionTTLSeconds) * time.Second,
		NotificationTTL: time.Duration(file.Notify.DurationSeconds) * time.Second,
	}
	profile.ApplyDefaults()
	return profile
}
