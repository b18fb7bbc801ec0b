package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/drawer/internal/core/config"
	"github.com/hay-kot/drawer/internal/printer"
)

type validateOutput struct {
	Valid  bool `json:"valid"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func runConfigValidate(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	ctx := printer.NewContext(context.Background(), printer.New(&out))

	app := newTestApp(&out)
	app = NewConfigValidateCmd(&Flags{Config: cfg}).Register(app)

	err := app.Run(ctx, append([]string{"drawer", "config", "validate"}, args...))
	return out.String(), err
}

func TestConfigValidateCmd_JSON(t *testing.T) {
	cfg := config.DefaultConfig()
	out, err := runConfigValidate(t, &cfg, "--format", "json")
	require.NoError(t, err)

	var got validateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Valid)
	assert.Empty(t, got.Errors)
}

func TestConfigValidateCmd_JSONInvalid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Animation.FPS = 0

	out, err := runConfigValidate(t, &cfg, "--format", "json")
	require.NoError(t, err)

	var got validateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Valid)
	require.NotEmpty(t, got.Errors)
	assert.Equal(t, "animation.fps", got.Errors[0].Field)
}

func TestConfigValidateCmd_Text(t *testing.T) {
	cfg := config.DefaultConfig()
	out, err := runConfigValidate(t, &cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "built-in defaults")
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfigCommand_SharedParent(t *testing.T) {
	app := &cli.Command{Name: "drawer"}
	app = NewConfigValidateCmd(&Flags{}).Register(app)
	app = NewConfigInitCmd(&Flags{}).Register(app)

	require.Len(t, app.Commands, 1)
	assert.Equal(t, "config", app.Commands[0].Name)
	assert.Len(t, app.Commands[0].Commands, 2)
}

func TestValidate_Report(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Center.MinScale = 3
	cfg.Animation.Damping = 0.5

	v := validate(&cfg, "")
	assert.Equal(t, "built-in defaults", v.Source)
	assert.False(t, v.Valid)
	require.Len(t, v.Errors, 1)
	assert.Equal(t, "center.min_scale", v.Errors[0].Field)
	assert.NotEmpty(t, v.Warnings)
}

func TestConfigValidateCmd_TextInvalidExits(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Animation.FPS = 0

	out, err := runConfigValidate(t, &cfg)
	require.Error(t, err)
	assert.Contains(t, out, "animation.fps")
	assert.Contains(t, out, "1 error(s)")
}
