package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/drawer/internal/core/config"
	"github.com/hay-kot/drawer/internal/printer"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	parent := configCommand(app)
	parent.Commands = append(parent.Commands, &cli.Command{
		Name:        "validate",
		Usage:       "Validate configuration file",
		UsageText:   "drawer config validate [--format text|json]",
		Description: "Checks animation ranges, backdrop colors, slot alignment and keybinding actions. Text output exits 1 on errors.",
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

// configCommand returns the "config" parent command, adding it to app on
// first use.
func configCommand(app *cli.Command) *cli.Command {
	for _, c := range app.Commands {
		if c.Name == "config" {
			return c
		}
	}

	parent := &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
	}
	app.Commands = append(app.Commands, parent)
	return parent
}

type fieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validation is the outcome of validating one configuration.
type validation struct {
	Source   string                     `json:"source"`
	Valid    bool                       `json:"valid"`
	Errors   []fieldProblem             `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func validate(cfg *config.Config, path string) validation {
	v := validation{Source: path, Warnings: cfg.Warnings()}
	if _, err := os.Stat(path); path == "" || err != nil {
		v.Source = "built-in defaults"
	}

	err := cfg.ValidateDeep(path)
	v.Valid = err == nil

	var fieldErrs criterio.FieldErrors
	switch {
	case err == nil:
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			v.Errors = append(v.Errors, fieldProblem{Field: fe.Field, Message: fe.Err.Error()})
		}
	default:
		v.Errors = append(v.Errors, fieldProblem{Message: err.Error()})
	}
	return v
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.flags.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	v := validate(cmd.flags.Config, cmd.flags.ConfigPath)

	if cmd.format == "json" {
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	p := printer.Ctx(ctx)
	p.KeyValue("config", v.Source)
	p.Printf("")

	if len(v.Errors) > 0 {
		p.Section("Errors")
		for _, e := range v.Errors {
			label := e.Field
			if label == "" {
				label = "config"
			}
			p.Item(printer.LevelFail, label, e.Message)
		}
		p.Printf("")
	}

	if len(v.Warnings) > 0 {
		p.Section("Warnings")
		for _, w := range v.Warnings {
			msg := w.Message
			if w.Item != "" {
				msg = w.Item + ": " + msg
			}
			p.Item(printer.LevelWarn, w.Category, msg)
		}
		p.Printf("")
	}

	if !v.Valid {
		p.Errorf("%d error(s), %d warning(s)", len(v.Errors), len(v.Warnings))
		return cli.Exit("", 1)
	}
	if len(v.Warnings) > 0 {
		p.Successf("Configuration is valid (%d warning(s))", len(v.Warnings))
	} else {
		p.Successf("Configuration is valid")
	}
	return nil
}
