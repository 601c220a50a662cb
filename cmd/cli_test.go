package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("HOME", home)

	rootCmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeStateFixture(t *testing.T, home string) {
	t.Helper()

	dir := filepath.Join(home, ".dmbot")
	require.NoError(t, os.MkdirAll(dir, 0o700))

	characters := `{
  "111": {"name": "Bram", "class": "Wizard", "items": ["Staff"]},
  "222": {"name": "Zel", "class": "", "items": []}
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "character_data.json"), []byte(characters), 0o600))

	combat := `{"ongoing": true, "turn_order": ["Zel", "Bram"], "current_index": 0}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "combat_data.json"), []byte(combat), 0o600))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestRollCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "roll", "3d1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "🎲 You rolled: 1+1+1 = 3")
}

func TestRollCommandRejectsBadExpression(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "roll", "2x20")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NdM")
}

func TestStatusCommandEmptyState(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "characters: 0")
	assert.Contains(t, stdout, "combat: idle")
}

func TestStatusCommandShowsStoredState(t *testing.T) {
	home := t.TempDir()
	writeStateFixture(t, home)

	stdout, _, err := executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "characters: 2")
	assert.Contains(t, stdout, "Bram")
	assert.Contains(t, stdout, "class: Wizard")
	assert.Contains(t, stdout, "combat: active")
	assert.Contains(t, stdout, "acting: Zel")
}

func TestStatusCommandJSONOutput(t *testing.T) {
	home := t.TempDir()
	writeStateFixture(t, home)

	stdout, _, err := executeCLI(t, home, "status", "--json")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Encounter\"")
	assert.Contains(t, stdout, "\"Bram\"")
}

func TestRunCommandRequiresDiscordToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, _, err := executeCLI(t, t.TempDir(), "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discord token")
}

func TestNarrateCommandRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, _, err := executeCLI(t, t.TempDir(), "narrate", "a", "dark", "cave")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai api key")
}

func TestConfigInitWritesDefaultFile(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote")

	data, err := os.ReadFile(filepath.Join(home, ".dmbot", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "characters_path")
	assert.Contains(t, string(data), "gpt-4")
	assert.Contains(t, string(data), "[openai]")
}

func TestConfigInitRefusesToOverwrite(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeCLI(t, home, "config", "init", "--force")
	require.NoError(t, err)
}
