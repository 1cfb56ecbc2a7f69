package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadContentMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadContent(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultContent(), cfg)
}

func TestLoadContentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /srv/gamedata\n"), 0o644))

	cfg, err := LoadContent(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/gamedata", cfg.DataDir)

	// Keys absent from the file keep their defaults.
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadContentMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: [broken\n"), 0o644))

	_, err := LoadContent(path)
	require.Error(t, err)
}
