package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	apiadapter "github.com/aadarshkt/comment-copilot/internal/adapters/api"
	tomlrepo "github.com/aadarshkt/comment-copilot/internal/adapters/repo/toml"
	filestore "github.com/aadarshkt/comment-copilot/internal/adapters/secrets/file"
	"github.com/aadarshkt/comment-copilot/internal/application"
	"github.com/aadarshkt/comment-copilot/internal/domain"
	"github.com/aadarshkt/comment-copilot/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	profile  domain.Profile
	vocab    domain.Vocabulary
	client   *apiadapter.Client
	creds    ports.CredentialStore
	gate     *application.SessionGate
	cache    *application.CommentCache
	notifier *application.Notifier
	syncer   *application.SyncCoordinator
	replies  *application.ReplyService
	clock    ports.Clock
}

func wireApp() (*app, error) {
	profileRepo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	profile, err := profileRepo.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	applyEnvOverrides(&profile)

	vocab, err := profile.Vocabulary()
	if err != nil {
		return nil, fmt.Errorf("build category vocabulary: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	creds := filestore.NewStore(filepath.Join(homeDir, ".commco", "credentials"))

	client := apiadapter.New(profile.BaseURL, creds, profile.RequestTimeout)
	clock := ports.SystemClock{}

	notifier := application.NewNotifier(clock, profile.NotificationTTL)
	cache := application.NewCommentCache(client, clock, profile.CommentTTL)

	return &app{
		profile:  profile,
		vocab:    vocab,
		client:   client,
		creds:    creds,
		gate:     application.NewSessionGate(client, clock, profile.SessionTTL),
		cache:    cache,
		notifier: notifier,
		syncer:   application.NewSyncCoordinator(client, cache, notifier),
		replies:  application.NewReplyService(client, cache, notifier),
		clock:    clock,
	}, nil
}

func applyEnvOverrides(profile *domain.Profile) {
	if value := os.Getenv("COMMCO_BASE_URL"); value != "" {
		profile.BaseURL = value
	}
	if value := os.Getenv("COMMCO_TIMEOUT"); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			profile.RequestTimeout = d
		}
	}
}
