package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "drawer", "config.yaml"), DefaultConfigPath())
}

func TestFlags_ConfigTarget(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	assert.Equal(t, DefaultConfigPath(), (&Flags{}).ConfigTarget())
	assert.Equal(t, "/etc/drawer.yaml", (&Flags{ConfigPath: "/etc/drawer.yaml"}).ConfigTarget())
}

func TestFlags_LoadConfig(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		f := &Flags{ConfigPath: filepath.Join(t.TempDir(), "none.yaml")}
		require.NoError(t, f.LoadConfig())
		require.NotNil(t, f.Config)
		assert.Equal(t, 60, f.Config.Animation.FPS)
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("animation: ["), 0o644))

		f := &Flags{ConfigPath: path}
		err := f.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load config")
		assert.Nil(t, f.Config)
	})
}
