package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/dmbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReadsAndTrimsSecret(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "discord_token"), []byte("token-123\n"), 0o600))

	value, err := NewStore(root).Get(context.Background(), "discord_token")
	require.NoError(t, err)
	assert.Equal(t, "token-123", value)
}

func TestGetMissingSecret(t *testing.T) {
	_, err := NewStore(t.TempDir()).Get(context.Background(), "absent")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestGetRejectsTraversalKeys(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, key := range []string{"", "../escape", "/etc/passwd", "."} {
		_, err := store.Get(context.Background(), key)
		require.Error(t, err, "key %q", key)
	}
}
