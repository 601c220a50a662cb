// Package env resolves secrets from process environment variables, the way
// the bot's tokens are provisioned in deployment.
package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/dmbot/internal/domain"
	"github.com/bnema/dmbot/internal/ports"
)

type Store struct{}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

// Get maps a secret key to its environment variable: "discord_token" reads
// DISCORD_TOKEN.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := variableForKey(key)
	if err != nil {
		return "", err
	}

	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return "", fmt.Errorf("%w: environment variable %s is not set", domain.ErrSecretNotFound, name)
	}

	return value, nil
}

func variableForKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}

	return strings.ToUpper(strings.ReplaceAll(trimmed, "-", "_")), nil
}
