package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/drawer/internal/commands"
	"github.com/hay-kot/drawer/internal/printer"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	logs := &logSink{}
	if err := logs.configure("info", "", false); err != nil {
		panic(err)
	}

	p := printer.New(os.Stderr)
	ctx := printer.NewContext(context.Background(), p)

	err := newApp(&commands.Flags{}, logs).Run(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr)
		p.FatalError(err)
	}

	if ferr := logs.close(os.Stderr); ferr != nil {
		fmt.Fprintf(os.Stderr, "failed to flush logs: %v\n", ferr)
	}

	if err != nil {
		return 1
	}
	return 0
}

// newApp builds the command tree. Running it with no subcommand opens the
// demo program.
func newApp(flags *commands.Flags, logs *logSink) *cli.Command {
	app := &cli.Command{
		Name:      "drawer",
		Usage:     "Directional overlay menus for the terminal",
		UsageText: "drawer [global options] command [command options]",
		Description: `drawer slides menus in from any edge of the terminal, or grows them from
its center, over a dimmed backdrop that closes them when clicked.

Run 'drawer' with no arguments to open the demo program.
Run 'drawer frames' to trace an overlay's animation without a terminal.
Run 'drawer doc guide' for the full guide.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DRAWER_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "also write logs to this file",
				Sources:     cli.EnvVars("DRAWER_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DRAWER_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// the demo owns the terminal, so its logs wait until it exits
			demo := c.Args().Len() == 0
			if err := logs.configure(flags.LogLevel, flags.LogFile, demo); err != nil {
				return ctx, err
			}

			if err := flags.LoadConfig(); err != nil {
				return ctx, err
			}

			log.Debug().
				Str("config", flags.ConfigPath).
				Int("fps", flags.Config.Animation.FPS).
				Msg("configuration loaded")
			return ctx, nil
		},
	}

	app = commands.NewFramesCmd(flags).Register(app)
	app = commands.NewProbeCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)
	app = commands.NewConfigInitCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)
	app = commands.NewDocCmd(flags).Register(app)

	tui := commands.NewTuiCmd(flags)
	app.Flags = append(app.Flags, tui.Flags()...)
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'drawer --help' for usage", c.Args().First())
		}
		return tui.Run(ctx, c)
	}

	return app
}
