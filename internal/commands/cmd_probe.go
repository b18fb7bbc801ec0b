package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/drawer/internal/printer"
	"github.com/hay-kot/drawer/pkg/overlay"
	"github.com/hay-kot/drawer/pkg/tmpl"
)

type ProbeCmd struct {
	flags    *Flags
	viewport viewportFlags
	format   string
}

// NewProbeCmd creates a new probe command.
func NewProbeCmd(flags *Flags) *ProbeCmd {
	return &ProbeCmd{flags: flags}
}

// Register adds the probe command to the application.
func (cmd *ProbeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "probe",
		Usage:     "Measure content fixtures and print their hidden offsets",
		UsageText: "drawer probe [--width N --height N] <glob>...",
		Description: `Renders every fixture template matching the given globs, measures it the
way an overlay does, and prints where each edge overlay would rest while
hidden.

Globs support ** for recursive matching.

Examples:
  drawer probe 'fixtures/*.txt'
  drawer probe --width 120 --height 40 'fixtures/**/*.tmpl'`,
		Flags: append([]cli.Flag{
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

// probeResult is the measurement of one fixture.
type probeResult struct {
	File   string               `json:"file"`
	Size   overlay.Size         `json:"size"`
	Hidden map[overlay.Edge]int `json:"hidden"`
	Fits   bool                 `json:"fits"`
	Error  string               `json:"error,omitempty"`
}

func (cmd *ProbeCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one glob is required")
	}

	viewport, err := cmd.viewport.resolve()
	if err != nil {
		return err
	}

	files, err := expandGlobs(c.Args().Slice())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no fixtures matched %v", c.Args().Slice())
	}

	results := make([]probeResult, 0, len(files))
	for _, f := range files {
		results = append(results, probeFixture(f, viewport))
	}

	if cmd.format == "json" {
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	p := printer.New(c.Root().Writer)
	p.KeyValue("viewport", fmt.Sprintf("%dx%d", viewport.Width, viewport.Height))
	p.Printf("")

	slideEdges := []overlay.Edge{overlay.EdgeTop, overlay.EdgeBottom, overlay.EdgeLeft, overlay.EdgeRight}

	rows := make([][]string, 0, len(results))
	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
			rows = append(rows, []string{r.File, "-", "-", "-", "-", "-", printer.Cell(printer.LevelFail, r.Error)})
			continue
		}

		row := []string{r.File, fmt.Sprintf("%dx%d", r.Size.Width, r.Size.Height)}
		for _, e := range slideEdges {
			row = append(row, strconv.Itoa(r.Hidden[e]))
		}
		if r.Fits {
			row = append(row, printer.Cell(printer.LevelOK, "ok"))
		} else {
			row = append(row, printer.Cell(printer.LevelWarn, "larger than viewport"))
		}
		rows = append(rows, row)
	}
	p.Table([]string{"FIXTURE", "SIZE", "TOP", "BOTTOM", "LEFT", "RIGHT", "STATUS"}, rows)

	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// expandGlobs returns the sorted, de-duplicated files matching patterns.
// Directories are skipped.
func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			files = append(files, filepath.Clean(m))
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

func probeFixture(path string, viewport overlay.Size) probeResult {
	result := probeResult{File: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	content, err := tmpl.Render(string(data), tmpl.Viewport{Width: viewport.Width, Height: viewport.Height})
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Size = overlay.NewSizeProbe().Measure(content)
	result.Fits = result.Size.Width <= viewport.Width && result.Size.Height <= viewport.Height
	result.Hidden = make(map[overlay.Edge]int, 4)
	for _, e := range []overlay.Edge{overlay.EdgeTop, overlay.EdgeBottom, overlay.EdgeLeft, overlay.EdgeRight} {
		off := overlay.HiddenOffset(e, result.Size, viewport)
		if e.Horizontal() {
			result.Hidden[e] = off.X
		} else {
			result.Hidden[e] = off.Y
		}
	}

	return result
}
