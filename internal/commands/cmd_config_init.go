package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/drawer/internal/core/config"
	"github.com/hay-kot/drawer/internal/printer"
	"github.com/hay-kot/drawer/internal/styles"
)

type ConfigInitCmd struct {
	flags    *Flags
	force    bool
	defaults bool
}

// NewConfigInitCmd creates a new config init command.
func NewConfigInitCmd(flags *Flags) *ConfigInitCmd {
	return &ConfigInitCmd{flags: flags}
}

// Register adds the config init command to the application.
func (cmd *ConfigInitCmd) Register(app *cli.Command) *cli.Command {
	parent := configCommand(app)
	parent.Commands = append(parent.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Write a configuration file interactively",
		UsageText: "drawer config init [--defaults] [--force]",
		Description: `Asks for the animation, backdrop and dismissal settings and writes them to
the config file (see --config).

Use --defaults to skip the questions and write the built-in defaults.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite an existing config file",
				Destination: &cmd.force,
			},
			&cli.BoolFlag{
				Name:        "defaults",
				Usage:       "write the defaults without asking",
				Destination: &cmd.defaults,
			},
		},
		Action: cmd.run,
	})
	return app
}

// initAnswers holds the form values. Numbers are kept as text while the
// form runs and parsed by apply.
type initAnswers struct {
	FPS                int
	Frequency          string
	Damping            string
	Dim                string
	MinScale           string
	BottomCloses       bool
	CenterCloses       bool
	ReleaseFocusOnHide bool
}

func answersFrom(cfg config.Config) initAnswers {
	return initAnswers{
		FPS:                cfg.Animation.FPS,
		Frequency:          strconv.FormatFloat(cfg.Animation.Frequency, 'g', -1, 64),
		Damping:            strconv.FormatFloat(cfg.Animation.Damping, 'g', -1, 64),
		Dim:                cfg.Backdrop.Dim,
		MinScale:           strconv.FormatFloat(cfg.Center.MinScale, 'g', -1, 64),
		BottomCloses:       cfg.Slots.Bottom.OnAction,
		CenterCloses:       cfg.Slots.Center.OnAction,
		ReleaseFocusOnHide: cfg.ReleaseFocusOnHide,
	}
}

// apply copies the answers into cfg and validates the result.
func (a initAnswers) apply(cfg *config.Config) error {
	var err error

	cfg.Animation.FPS = a.FPS
	if cfg.Animation.Frequency, err = strconv.ParseFloat(a.Frequency, 64); err != nil {
		return fmt.Errorf("frequency: %w", err)
	}
	if cfg.Animation.Damping, err = strconv.ParseFloat(a.Damping, 64); err != nil {
		return fmt.Errorf("damping: %w", err)
	}
	if cfg.Center.MinScale, err = strconv.ParseFloat(a.MinScale, 64); err != nil {
		return fmt.Errorf("min scale: %w", err)
	}
	cfg.Backdrop.Dim = a.Dim
	cfg.Slots.Bottom.OnAction = a.BottomCloses
	cfg.Slots.Center.OnAction = a.CenterCloses
	cfg.ReleaseFocusOnHide = a.ReleaseFocusOnHide

	return cfg.Validate()
}

func (cmd *ConfigInitCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)
	path := cmd.flags.ConfigTarget()

	if _, err := os.Stat(path); err == nil && !cmd.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	// start from the loaded defaults so the file lists the keybindings too
	base, err := config.Load("")
	if err != nil {
		return err
	}
	cfg := *base
	answers := answersFrom(cfg)

	if !cmd.defaults {
		if err := initForm(&answers).RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				p.Infof("aborted, nothing written")
				return nil
			}
			return fmt.Errorf("run form: %w", err)
		}
	}

	if err := answers.apply(&cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	p.Successf("Wrote %s", path)
	return nil
}

// initKeys lets esc abort the form as well as ctrl+c.
func initKeys() *huh.KeyMap {
	keys := huh.NewDefaultKeyMap()
	keys.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "abort"),
	)
	return keys
}

// initForm asks on stderr so stdout stays free for the written path.
func initForm(a *initAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Frames per second").
				Options(
					huh.NewOption("30", 30),
					huh.NewOption("60", 60),
					huh.NewOption("120", 120),
				).
				Value(&a.FPS),
			huh.NewInput().
				Title("Spring frequency").
				Description("Higher is faster.").
				Value(&a.Frequency).
				Validate(positiveFloat),
			huh.NewInput().
				Title("Spring damping").
				Description("1 settles without overshoot, below 1 bounces.").
				Value(&a.Damping).
				Validate(positiveFloat),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Backdrop dim color").
				Placeholder("#3b4261").
				Value(&a.Dim),
			huh.NewInput().
				Title("Center minimum scale").
				Description("Scale the center menu grows from, in (0, 1].").
				Value(&a.MinScale).
				Validate(positiveFloat),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Close the bottom sheet on OK and Cancel?").
				Value(&a.BottomCloses),
			huh.NewConfirm().
				Title("Close the center dialog on OK and Cancel?").
				Value(&a.CenterCloses),
			huh.NewConfirm().
				Title("Release input focus when a menu closes?").
				Value(&a.ReleaseFocusOnHide),
		),
	).
		WithTheme(styles.FormTheme()).
		WithKeyMap(initKeys()).
		WithProgramOptions(tea.WithOutput(os.Stderr))
}

func positiveFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if v <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}
