package config

import (
	"os"
	"path/filepath"
	"testing"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/drawer/pkg/overlay"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Animation, cfg.Animation)
	assert.Equal(t, defaults.Slots, cfg.Slots)
	assert.True(t, cfg.ReleaseFocusOnHide)
	assert.Equal(t, ActionQuit, cfg.Keybindings["q"].Action)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Demo.Items)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
animation:
  damping: 0.6
slots:
  bottom:
    on_action: true
keybindings:
  x:
    action: toggle-center
    help: dialog
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.6, cfg.Animation.Damping)
	assert.Equal(t, 60, cfg.Animation.FPS)
	assert.True(t, cfg.Slots.Bottom.OnAction)
	assert.True(t, cfg.Slots.Bottom.OnBackdrop, "unset fields keep their default")
	assert.Equal(t, AlignCenter, cfg.Slots.Bottom.Align)
	assert.Equal(t, ActionToggleCenter, cfg.Keybindings["x"].Action)
	assert.Equal(t, ActionToggleTop, cfg.Keybindings["t"].Action)
}

func TestLoad_ZeroValuesGetDefaults(t *testing.T) {
	path := writeConfig(t, `
animation:
  fps: 0
center:
  min_scale: 0
slots:
  left:
    align: ""
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Animation.FPS)
	assert.Equal(t, overlay.DefaultMinScale, cfg.Center.MinScale)
	assert.Equal(t, AlignStart, cfg.Slots.Left.Align)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "animation: [")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
animation:
  fps: 500
center:
  min_scale: 2
`)

	_, err := Load(path)
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Equal(t, "animation.fps", fieldErrs[0].Field)
	assert.Equal(t, "center.min_scale", fieldErrs[1].Field)
}

func TestSave_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animation.Frequency = 12
	cfg.Slots.Bottom.OnAction = true

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, loaded.Animation.Frequency)
	assert.True(t, loaded.Slots.Bottom.OnAction)
}

func TestSlotConfig_Position(t *testing.T) {
	tests := []struct {
		align string
		want  lipgloss.Position
	}{
		{align: AlignStart, want: lipgloss.Left},
		{align: AlignCenter, want: lipgloss.Center},
		{align: AlignEnd, want: lipgloss.Right},
	}

	for _, tt := range tests {
		t.Run(tt.align, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotConfig{Align: tt.align}.Position())
		})
	}
}

func TestSlotsConfig_For(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, overlay.DismissPolicy{OnBackdrop: true}, cfg.Slots.For(overlay.EdgeBottom).Policy())
	assert.Equal(t, overlay.DismissPolicy{OnBackdrop: true, OnAction: true}, cfg.Slots.For(overlay.EdgeCenter).Policy())
}

func TestBackdropConfig_Style(t *testing.T) {
	style := BackdropConfig{Foreground: "#ffffff", Dim: "#000000"}.Style()
	assert.NotNil(t, style.Foreground)
	assert.NotNil(t, style.Dim)
	assert.Nil(t, style.Background)
}

func TestToggleEdge(t *testing.T) {
	edge, ok := ToggleEdge(ActionToggleLeft)
	assert.True(t, ok)
	assert.Equal(t, overlay.EdgeLeft, edge)

	_, ok = ToggleEdge(ActionQuit)
	assert.False(t, ok)
}

func TestKeyFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, nil)

	assert.Equal(t, "ctrl+c", cfg.KeyFor(ActionQuit), "first key in sorted order")
	assert.Equal(t, "esc", cfg.KeyFor(ActionDismiss))

	delete(cfg.Keybindings, "esc")
	assert.Empty(t, cfg.KeyFor(ActionDismiss))
}
