package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/drawer/internal/core/config"
)

type DocCmd struct {
	flags *Flags
	raw   bool
}

func NewDocCmd(flags *Flags) *DocCmd {
	return &DocCmd{flags: flags}
}

func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Show documentation",
		Description: `Shows documentation for drawer, rendered for the terminal.

Use 'drawer doc guide' for an overview of menus, keys and fixtures.
Use 'drawer doc config' for the configuration reference.`,
		Commands: []*cli.Command{
			{
				Name:   "guide",
				Usage:  "Show the usage guide",
				Flags:  []cli.Flag{cmd.rawFlag()},
				Action: cmd.runGuide,
			},
			{
				Name:   "config",
				Usage:  "Show the configuration reference with the default values",
				Flags:  []cli.Flag{cmd.rawFlag()},
				Action: cmd.runConfig,
			},
		},
	})
	return app
}

func (cmd *DocCmd) rawFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:        "raw",
		Usage:       "print markdown without rendering",
		Destination: &cmd.raw,
	}
}

func (cmd *DocCmd) runGuide(_ context.Context, c *cli.Command) error {
	return cmd.write(c.Root().Writer, guideMarkdown)
}

func (cmd *DocCmd) runConfig(_ context.Context, c *cli.Command) error {
	md, err := configMarkdown()
	if err != nil {
		return err
	}
	return cmd.write(c.Root().Writer, md)
}

// write renders md with glamour, or prints it as is with --raw.
func (cmd *DocCmd) write(w io.Writer, md string) error {
	if cmd.raw {
		_, err := fmt.Fprintln(w, md)
		return err
	}

	out, err := renderMarkdown(md, docWidth())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}

func renderMarkdown(md string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("tokyo-night"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func docWidth() int {
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return min(w, 100)
		}
	}
	return fallbackWidth
}

func configMarkdown() (string, error) {
	cfg := config.DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode defaults: %w", err)
	}

	var b strings.Builder
	b.WriteString(configReference)
	b.WriteString("\n## Defaults\n\n```yaml\n")
	b.Write(data)
	b.WriteString("```\n")
	return b.String(), nil
}

const guideMarkdown = `# drawer

Menus that slide in from any edge of the terminal, or grow from its center.

## Menus

| Key | Menu |
|-----|------|
| ` + "`t`" + ` | calendar sliding down from the top |
| ` + "`b`" + ` | sign in sheet rising from the bottom |
| ` + "`l`" + ` / ` + "`r`" + ` | item lists sliding in from the sides |
| ` + "`c`" + ` | sign in dialog growing from the center |
| ` + "`esc`" + ` | close the top-most menu |
| ` + "`q`" + ` | quit |

Every button on the home screen can also be clicked.

## Closing menus

- Clicking the dimmed backdrop behind a menu closes it.
- Picking a row in a side menu closes it.
- OK and Cancel close the center dialog. The bottom sheet stays open
  unless ` + "`slots.bottom.on_action`" + ` is enabled.

Several menus can be open at once. Menus opened later draw on top.

## Fixtures

` + "`drawer frames`" + ` and ` + "`drawer probe`" + ` read content fixtures: Go templates
rendered with the viewport size as ` + "`.Width`" + ` and ` + "`.Height`" + `.

| Function | Result |
|----------|--------|
| ` + "`block W H FILL`" + ` | a W by H rectangle |
| ` + "`lines N S`" + ` | S on N rows |
| ` + "`repeat N S`" + ` | S repeated N times |
| ` + "`percent P N`" + ` | P percent of N |
| ` + "`sub A B`" + ` | A minus B |

Example, a side menu a third of the screen wide:

` + "```" + `
{{ block (percent 33 .Width) .Height "▌" }}
` + "```" + `
`

const configReference = `# Configuration

drawer reads ` + "`$XDG_CONFIG_HOME/drawer/config.yaml`" + ` (override with ` + "`--config`" + `
or ` + "`DRAWER_CONFIG`" + `). Missing values fall back to the defaults below.

| Key | Meaning |
|-----|---------|
| ` + "`animation.fps`" + ` | frames per second, 1 to 240 |
| ` + "`animation.frequency`" + ` | spring speed, greater than 0 |
| ` + "`animation.damping`" + ` | 1 settles without overshoot, below 1 bounces |
| ` + "`backdrop.foreground`" + ` | text color of the dimmed screen at rest |
| ` + "`backdrop.dim`" + ` | color the screen text fades to |
| ` + "`backdrop.background`" + ` | backdrop fill, empty keeps the terminal's |
| ` + "`center.min_scale`" + ` | scale the center menu grows from, (0, 1] |
| ` + "`slots.<edge>.on_backdrop`" + ` | backdrop clicks close the menu |
| ` + "`slots.<edge>.on_action`" + ` | OK and Cancel close the menu |
| ` + "`slots.<edge>.align`" + ` | start, center or end along the edge |
| ` + "`demo.items`" + ` | rows in each side menu |
| ` + "`demo.seed`" + ` | fixes the generated item labels, 0 draws new ones |
| ` + "`keybindings`" + ` | key to ` + "`{action, help}`" + `, merged over the defaults |
| ` + "`release_focus_on_hide`" + ` | blur inputs when their menu closes |

Keybinding actions: ` + "`toggle-top`" + `, ` + "`toggle-bottom`" + `, ` + "`toggle-left`" + `,
` + "`toggle-right`" + `, ` + "`toggle-center`" + `, ` + "`dismiss`" + `, ` + "`quit`" + `.
`
