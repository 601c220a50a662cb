package chain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/dmbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPrefersEnvironment(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "discord_token"), []byte("from-file"), 0o600))
	t.Setenv("DISCORD_TOKEN", "from-env")

	store, err := NewEnvFirstWithFileFallback(root)
	require.NoError(t, err)

	value, err := store.Get(context.Background(), "discord_token")
	require.NoError(t, err)
	assert.Equal(t, "from-env", value)
}

func TestGetFallsBackToFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "openai_api_key"), []byte("sk-file"), 0o600))
	t.Setenv("OPENAI_API_KEY", "")

	store, err := NewEnvFirstWithFileFallback(root)
	require.NoError(t, err)

	value, err := store.Get(context.Background(), "openai_api_key")
	require.NoError(t, err)
	assert.Equal(t, "sk-file", value)
}

func TestGetReportsBothMisses(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	store, err := NewEnvFirstWithFileFallback(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "discord_token")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestNewStoreRejectsNilStores(t *testing.T) {
	_, err := NewStore(nil, nil)
	require.Error(t, err)
}
