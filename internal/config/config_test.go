package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "setlist.toml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err, "expected default config file to be written")

	// the written file must load back to the same values
	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Logging, reloaded.Logging)
	assert.Equal(t, cfg.Playback, reloaded.Playback)
	assert.Empty(t, reloaded.Catalog)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setlist.toml")
	content := `
[logging]
level = "debug"
format = "json"

[playback]
shuffle_seed = 42
oldies_cutoff = 1990
genre = "pop"

[[catalog]]
title = "Imagine"
artist = "John Lennon"
genre = "Pop"
duration = 183
year = 1971

[[catalog]]
title = "Creep"
artist = "Radiohead"
genre = "Rock"
duration = 238
year = 1992
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, int64(42), cfg.Playback.ShuffleSeed)
	assert.Equal(t, 1990, cfg.Playback.OldiesCutoff)
	assert.Equal(t, "pop", cfg.Playback.Genre)
	// not in the file, keeps its default
	assert.Equal(t, "Queen", cfg.Playback.Artist)

	require.Len(t, cfg.Catalog, 2)
	assert.Equal(t, "Creep", cfg.Catalog[1].Title)
	assert.Equal(t, 1992, cfg.Catalog[1].Year)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "broken toml", content: "[logging\nlevel ="},
		{name: "bad level", content: "[logging]\nlevel = \"loud\""},
		{name: "bad format", content: "[logging]\nformat = \"xml\""},
		{name: "bad cutoff", content: "[playback]\noldies_cutoff = -1"},
		{name: "untitled song", content: "[[catalog]]\nartist = \"Nobody\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "setlist.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvShuffleSeed, "7")
	t.Setenv(EnvGenre, "Jazz")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, int64(7), cfg.Playback.ShuffleSeed)
	assert.Equal(t, "Jazz", cfg.Playback.Genre)
}

func TestApplyEnv_BadSeed(t *testing.T) {
	t.Setenv(EnvShuffleSeed, "seven")

	cfg := DefaultConfig()
	assert.Error(t, cfg.ApplyEnv())
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is fine", func(t *testing.T) {
		assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("loads variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("SETLIST_GENRE=Blues\n"), 0644))

		// register cleanup for the variable godotenv is about to set
		t.Setenv(EnvGenre, "")
		require.NoError(t, os.Unsetenv(EnvGenre))

		require.NoError(t, LoadEnvFile(path))
		assert.Equal(t, "Blues", os.Getenv(EnvGenre))
	})
}
