// Package chain composes secret stores: lookups try the primary store first
// and fall back to the secondary on a miss.
package chain

import (
	"context"
	"errors"

	envstore "github.com/bnema/dmbot/internal/adapters/secrets/env"
	filestore "github.com/bnema/dmbot/internal/adapters/secrets/file"
	"github.com/bnema/dmbot/internal/ports"
)

type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewEnvFirstWithFileFallback resolves secrets from the environment first,
// then from files under fileRoot.
func NewEnvFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(envstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}

	value, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return value, nil
	}

	return "", errors.Join(err, fallbackErr)
}
