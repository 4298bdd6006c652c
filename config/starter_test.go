package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStarterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".config", "sesh", "sesh.toml")

	require.NoError(t, WriteStarter(path, false))

	sessions, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StarterDocument().Session, sessions)
}

func TestWriteStarterRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sesh.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))

	err := WriteStarter(path, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExists))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(content))
}

func TestWriteStarterOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sesh.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))

	require.NoError(t, WriteStarter(path, true))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[[session]]")
	assert.Contains(t, string(content), `startup_command = "tmux new-session -A -s home"`)
}
