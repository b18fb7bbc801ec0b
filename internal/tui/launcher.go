package tui

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/drawer/pkg/overlay"
)

// launchButton is one of the buttons on the home screen that opens a slot.
type launchButton struct {
	edge  overlay.Edge
	label string
	color color.Color
}

// launchRows mirrors the home screen layout: left and right, then center,
// then top and bottom.
var launchRows = [][]launchButton{
	{
		{edge: overlay.EdgeLeft, label: "Menu Left", color: colorBlue},
		{edge: overlay.EdgeRight, label: "Menu Right", color: colorGreen},
	},
	{
		{edge: overlay.EdgeCenter, label: "Menu Center", color: colorPurple},
	},
	{
		{edge: overlay.EdgeTop, label: "Menu Top", color: colorOrange},
		{edge: overlay.EdgeBottom, label: "Menu Bottom", color: colorRed},
	},
}

const (
	launchGap     = 4
	launchRowStep = 2
)

func launchLayerID(edge overlay.Edge) string {
	return "launch-" + string(edge)
}

// launcherLayers lays the buttons out centered in width, starting at row
// top. keyFor supplies the key shown on each button.
func launcherLayers(width, top int, keyFor func(overlay.Edge) string) []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	y := top
	for _, row := range launchRows {
		rendered := make([]string, len(row))
		total := launchGap * (len(row) - 1)
		for i, b := range row {
			label := b.label
			if k := keyFor(b.edge); k != "" {
				label += " " + launcherKeyStyle.Background(b.color).Render("["+k+"]")
			}
			rendered[i] = launcherButtonStyle.Background(b.color).Render(label)
			total += lipgloss.Width(rendered[i])
		}

		x := max(0, (width-total)/2)
		for i, b := range row {
			layers = append(layers, lipgloss.NewLayer(rendered[i]).
				X(x).Y(y).Z(1).
				ID(launchLayerID(b.edge)))
			x += lipgloss.Width(rendered[i]) + launchGap
		}
		y += launchRowStep
	}

	return layers
}

// launcherHit returns the slot whose button is at (x, y).
func launcherHit(layers []*lipgloss.Layer, x, y int) (overlay.Edge, bool) {
	hit := lipgloss.NewCompositor(layers...).Hit(x, y)
	if hit.Empty() {
		return "", false
	}
	for _, edge := range overlay.Edges {
		if hit.ID() == launchLayerID(edge) {
			return edge, true
		}
	}
	return "", false
}
