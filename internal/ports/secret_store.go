package ports

import "context"

// SecretStore resolves startup credentials by key. The bot never writes
// secrets; they are provisioned out-of-band.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
}
