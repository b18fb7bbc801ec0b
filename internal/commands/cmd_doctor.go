package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/drawer/internal/commands/doctor"
	"github.com/hay-kot/drawer/internal/printer"
)

type DoctorCmd struct {
	flags  *Flags
	format string
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "doctor",
		Usage:     "Check the configuration, animation and terminal",
		UsageText: "drawer doctor [--format text|json]",
		Description: `Validates the configuration file, simulates the configured spring to
report how long a menu takes to settle and how far it overshoots, and
inspects the terminal the menus draw into.

Exits 1 when any check fails.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) checks() []doctor.Check {
	checks := []doctor.Check{doctor.NewConfigCheck(cmd.flags.Config, cmd.flags.ConfigPath)}
	if cmd.flags.Config != nil {
		checks = append(checks, doctor.NewAnimationCheck(cmd.flags.Config.Animation.Spring()))
	}
	return append(checks, doctor.NewTerminalCheck())
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	reports := doctor.RunAll(ctx, cmd.checks())
	tally := doctor.Count(reports)

	if cmd.format == "json" {
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Healthy bool            `json:"healthy"`
			Summary doctor.Tally    `json:"summary"`
			Checks  []doctor.Report `json:"checks"`
		}{tally.Healthy(), tally, reports})
	}

	p := printer.Ctx(ctx)
	for _, r := range reports {
		p.Section(r.Name)
		for _, f := range r.Findings {
			p.Item(findingLevel(f.Status), f.Label, f.Detail)
		}
		p.Printf("")
	}

	summary := fmt.Sprintf("%d passed, %d warnings, %d failed", tally.Passed, tally.Warned, tally.Failed)
	if !tally.Healthy() {
		p.Errorf("%s", summary)
		return cli.Exit("", 1)
	}
	p.Successf("%s", summary)
	return nil
}

func findingLevel(s doctor.Status) printer.Level {
	switch s {
	case doctor.StatusPass:
		return printer.LevelOK
	case doctor.StatusWarn:
		return printer.LevelWarn
	default:
		return printer.LevelFail
	}
}
