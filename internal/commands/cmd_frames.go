package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/drawer/internal/printer"
	"github.com/hay-kot/drawer/pkg/overlay"
)

// maxTraceFrames bounds a single transition so a spring that never
// settles cannot hang the command.
const maxTraceFrames = 10_000

type FramesCmd struct {
	flags    *Flags
	viewport viewportFlags
	edge     string
	content  string
	format   string
}

// NewFramesCmd creates a new frames command.
func NewFramesCmd(flags *Flags) *FramesCmd {
	return &FramesCmd{flags: flags}
}

// Register adds the frames command to the application.
func (cmd *FramesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "frames",
		Usage:     "Trace an overlay's open and close animation frame by frame",
		UsageText: "drawer frames [--edge left] [--content fixture.txt] [--width N --height N]",
		Description: `Runs one overlay headlessly and prints its position on every animation
frame while it opens and then closes again.

Edge overlays report their signed offset along the slide axis; the center
overlay reports its scale. Both report backdrop opacity.

The content is a fixture template (see 'drawer doc guide'). Without
--content a block shaped like the demo program's slot is used.

Examples:
  drawer frames --edge left
  drawer frames --edge center --format json
  drawer frames --edge bottom --content fixtures/sheet.txt --width 120 --height 40`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "edge",
				Aliases:     []string{"e"},
				Usage:       "overlay edge (top, bottom, left, right, center)",
				Value:       string(overlay.EdgeLeft),
				Destination: &cmd.edge,
			},
			&cli.StringFlag{
				Name:        "content",
				Usage:       "path to a content fixture template",
				Destination: &cmd.content,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		}, cmd.viewport.flags()...),
		Action: cmd.run,
	})
	return app
}

// frameRow is one line of a trace.
type frameRow struct {
	Phase   string  `json:"phase"`
	Frame   int     `json:"frame"`
	Offset  int     `json:"offset"`
	Scale   float64 `json:"scale"`
	Opacity float64 `json:"opacity"`
	Visible bool    `json:"visible"`
}

func (cmd *FramesCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.flags.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	edge, err := overlay.ParseEdge(cmd.edge)
	if err != nil {
		return err
	}

	viewport, err := cmd.viewport.resolve()
	if err != nil {
		return err
	}

	content, err := renderFixture(cmd.content, edge, viewport)
	if err != nil {
		return err
	}

	rows := traceOverlay(cmd.flags.Config.HostOptions(), cmd.flags.Config.Options(edge), edge, content, viewport)

	if cmd.format == "json" {
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	p := printer.New(c.Root().Writer)
	p.Section(fmt.Sprintf("%s overlay", edge))
	p.KeyValue("viewport", fmt.Sprintf("%dx%d", viewport.Width, viewport.Height))
	p.KeyValue("frames", len(rows))
	p.Printf("")

	valueHeader := "OFFSET"
	if edge == overlay.EdgeCenter {
		valueHeader = "SCALE"
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		value := strconv.Itoa(r.Offset)
		if edge == overlay.EdgeCenter {
			value = strconv.FormatFloat(r.Scale, 'f', 3, 64)
		}
		table = append(table, []string{
			r.Phase,
			strconv.Itoa(r.Frame),
			value,
			strconv.FormatFloat(r.Opacity, 'f', 3, 64),
			strconv.FormatBool(r.Visible),
		})
	}
	p.Table([]string{"PHASE", "FRAME", valueHeader, "OPACITY", "VISIBLE"}, table)

	return nil
}

// traceOverlay registers content on a fresh host, opens it, lets it
// settle, closes it and lets it settle again, recording every frame.
func traceOverlay(hostOpts, opts []overlay.Option, edge overlay.Edge, content string, viewport overlay.Size) []frameRow {
	hostOpts = append(hostOpts, overlay.WithLogger(log.Logger))
	host := overlay.NewHost(hostOpts...)
	flag := overlay.NewFlag(false)
	o := host.Register(edge, flag, overlay.Static(content), opts...)

	host.Update(tea.WindowSizeMsg{Width: viewport.Width, Height: viewport.Height})
	// the first render measures the content
	host.View("")
	host.Sync()

	rows := []frameRow{sample(o, "rest", 0)}

	for _, phase := range []struct {
		name  string
		value bool
	}{
		{name: "open", value: true},
		{name: "close", value: false},
	} {
		flag.Set(phase.value)
		rows = append(rows, drive(host, o, host.Sync(), phase.name)...)
	}

	return rows
}

// drive runs cmd and every command it produces, feeding frame messages to
// host. It returns one row per frame that changed the overlay.
func drive(host *overlay.Host, o overlay.Overlay, cmd tea.Cmd, phase string) []frameRow {
	var (
		rows  []frameRow
		queue = []tea.Cmd{cmd}
		last  = sample(o, phase, 0)
	)

	for frames := 0; len(queue) > 0 && frames < maxTraceFrames; {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case overlay.FrameMsg:
			frames++
			follow, _ := host.Update(msg)
			queue = append(queue, follow)

			row := sample(o, phase, frames)
			if row.Offset != last.Offset || row.Scale != last.Scale || row.Opacity != last.Opacity || row.Visible != last.Visible {
				rows = append(rows, row)
				last = row
			}
		}
	}

	return rows
}

func sample(o overlay.Overlay, phase string, frame int) frameRow {
	row := frameRow{
		Phase:   phase,
		Frame:   frame,
		Opacity: o.Backdrop().Opacity(),
		Visible: o.Visible(),
		Scale:   1,
	}

	switch v := o.(type) {
	case *overlay.EdgeOverlay:
		off := v.Offset()
		row.Offset = off.Y
		if v.Edge().Horizontal() {
			row.Offset = off.X
		}
	case *overlay.CenterOverlay:
		row.Scale = v.Scale()
	}

	return row
}
