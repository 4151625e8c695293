package ports

import "context"

// CredentialStore persists opaque credentials, currently just the backend
// session cookie. Get returns domain.ErrSecretNotFound (wrapped) when no
// value is stored; Delete of an absent key is not an error.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
