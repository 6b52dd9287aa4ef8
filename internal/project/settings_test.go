// Package project tests the init.yml settings snapshot.
// Related: internal/project/settings.go
// Tags: project, settings, yaml
package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRoundtrip(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	original := NewSettings("1.2.3", "amazonq")
	require.NoError(t, original.Save(root))

	loaded, err := LoadSettings(root)
	require.NoError(t, err)

	assert.Equal(t, SettingsSchemaVersion, loaded.Version)
	assert.Equal(t, "1.2.3", loaded.ToolVersion)
	assert.Equal(t, "amazonq", loaded.Agent)
	assert.WithinDuration(t, original.CreatedAt, loaded.CreatedAt, time.Second)
	assert.WithinDuration(t, original.UpdatedAt, loaded.UpdatedAt, time.Second)
}

func TestSettingsPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, filepath.Join("/proj", ".claude-workflow", "init.yml"), SettingsPath("/proj"))
}

func TestSettingsExist(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	assert.False(t, SettingsExist(root))
	require.NoError(t, NewSettings("dev", "claude").Save(root))
	assert.True(t, SettingsExist(root))
}

func TestLoadSettingsMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadSettings(t.TempDir())
	assert.Error(t, err)
}

func TestLoadSettingsRejectsInvalidYAML(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	path := SettingsPath(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("version: [unclosed\n"), 0o644))

	_, err := LoadSettings(root)
	assert.Error(t, err)
}

func TestTouchSettings(t *testing.T) {
	t.Parallel()

	t.Run("creates snapshot when missing", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()

		require.NoError(t, touchSettings(root, "dev", "claude"))

		settings, err := LoadSettings(root)
		require.NoError(t, err)
		assert.Equal(t, "claude", settings.Agent)
	})

	t.Run("preserves creation time on refresh", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()

		original := NewSettings("0.9.0", "claude")
		original.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		original.UpdatedAt = original.CreatedAt
		require.NoError(t, original.Save(root))

		require.NoError(t, touchSettings(root, "1.0.0", "claude"))

		refreshed, err := LoadSettings(root)
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", refreshed.ToolVersion)
		assert.WithinDuration(t, original.CreatedAt, refreshed.CreatedAt, time.Second)
		assert.True(t, refreshed.UpdatedAt.After(refreshed.CreatedAt))
	})
}
