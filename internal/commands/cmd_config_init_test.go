package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/drawer/internal/core/config"
	"github.com/hay-kot/drawer/internal/printer"
)

func TestInitAnswers_Apply(t *testing.T) {
	defaults := config.DefaultConfig()

	tests := []struct {
		name    string
		mutate  func(a *initAnswers)
		wantErr string
		check   func(t *testing.T, cfg config.Config)
	}{
		{
			name:   "defaults round trip",
			mutate: func(a *initAnswers) {},
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, defaults, cfg)
			},
		},
		{
			name: "custom values",
			mutate: func(a *initAnswers) {
				a.FPS = 120
				a.Frequency = "9.5"
				a.Damping = "0.8"
				a.MinScale = "0.25"
				a.BottomCloses = true
			},
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, 120, cfg.Animation.FPS)
				assert.InDelta(t, 9.5, cfg.Animation.Frequency, 1e-9)
				assert.InDelta(t, 0.8, cfg.Animation.Damping, 1e-9)
				assert.InDelta(t, 0.25, cfg.Center.MinScale, 1e-9)
				assert.True(t, cfg.Slots.Bottom.OnAction)
			},
		},
		{
			name:    "frequency not a number",
			mutate:  func(a *initAnswers) { a.Frequency = "fast" },
			wantErr: "frequency",
		},
		{
			name:    "min scale out of range",
			mutate:  func(a *initAnswers) { a.MinScale = "2" },
			wantErr: "center.min_scale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			a := answersFrom(cfg)
			tt.mutate(&a)

			err := a.apply(&cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestFloatValidators(t *testing.T) {
	assert.NoError(t, positiveFloat("1.5"))
	assert.Error(t, positiveFloat("0"))
	assert.Error(t, positiveFloat("x"))
	assert.Error(t, positiveFloat("-1"))
}

func runConfigInit(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	ctx := printer.NewContext(context.Background(), printer.New(&out))

	app := newTestApp(&out)
	app = NewConfigInitCmd(&Flags{ConfigPath: path}).Register(app)

	err := app.Run(ctx, append([]string{"drawer", "config", "init"}, args...))
	return out.String(), err
}

func TestConfigInitCmd_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := runConfigInit(t, path, "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	want, err := config.Load("")
	require.NoError(t, err)
	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConfigInitCmd_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("animation:\n  fps: 30\n"), 0o644))

	_, err := runConfigInit(t, path, "--defaults")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runConfigInit(t, path, "--defaults", "--force")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Animation.FPS, cfg.Animation.FPS)
}

func TestInitKeys_EscAborts(t *testing.T) {
	keys := initKeys()
	assert.Contains(t, keys.Quit.Keys(), "esc")
	assert.Contains(t, keys.Quit.Keys(), "ctrl+c")
}
