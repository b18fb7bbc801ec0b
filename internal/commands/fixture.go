package commands

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/drawer/pkg/overlay"
	"github.com/hay-kot/drawer/pkg/tmpl"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// defaultFixtures is the content used by the headless commands when no
// fixture file is given, shaped like the demo program's slots.
var defaultFixtures = map[overlay.Edge]string{
	overlay.EdgeTop:    `{{ block .Width 9 "▀" }}`,
	overlay.EdgeBottom: `{{ block .Width 10 "▄" }}`,
	overlay.EdgeLeft:   `{{ block 32 .Height "▌" }}`,
	overlay.EdgeRight:  `{{ block 32 .Height "▐" }}`,
	overlay.EdgeCenter: `{{ block 40 10 "█" }}`,
}

// viewportFlags are the --width and --height flags shared by the headless
// commands.
type viewportFlags struct {
	width  int
	height int
}

func (v *viewportFlags) flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "width",
			Usage:       "viewport width in cells (default: terminal width)",
			Destination: &v.width,
		},
		&cli.IntFlag{
			Name:        "height",
			Usage:       "viewport height in cells (default: terminal height)",
			Destination: &v.height,
		},
	}
}

// resolve fills unset dimensions from the terminal attached to stdout, or
// 80x24 when there is none.
func (v *viewportFlags) resolve() (overlay.Size, error) {
	size := overlay.Size{Width: v.width, Height: v.height}
	if size.Width < 0 || size.Height < 0 {
		return overlay.Size{}, fmt.Errorf("viewport cannot be negative, got %dx%d", size.Width, size.Height)
	}

	if size.Width == 0 || size.Height == 0 {
		w, h := fallbackWidth, fallbackHeight
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			if tw, th, err := term.GetSize(fd); err == nil {
				w, h = tw, th
			}
		}
		if size.Width == 0 {
			size.Width = w
		}
		if size.Height == 0 {
			size.Height = h
		}
	}

	return size, nil
}

// renderFixture reads the fixture template at path and renders it for
// viewport. An empty path renders the default fixture for edge.
func renderFixture(path string, edge overlay.Edge, viewport overlay.Size) (string, error) {
	src := defaultFixtures[edge]
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read fixture: %w", err)
		}
		src = string(data)
	}

	out, err := tmpl.Render(src, tmpl.Viewport{Width: viewport.Width, Height: viewport.Height})
	if err != nil {
		return "", fmt.Errorf("render fixture %q: %w", path, err)
	}
	return out, nil
}
