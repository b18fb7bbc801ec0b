package overlay

import (
	"math"

	lipgloss "charm.land/lipgloss/v2"
)

// Size is a width/height pair in terminal cells.
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether no extent is known yet.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Offset is a signed translation in terminal cells.
type Offset struct {
	X int
	Y int
}

// HiddenOffset returns the off-screen resting offset for an edge. The
// magnitude is the content's extent plus the viewport's extent along the
// slide axis, so content is fully off-screen even before the first
// measurement arrives. Center has no hidden offset.
func HiddenOffset(edge Edge, measured, viewport Size) Offset {
	sign := edge.outward()
	if edge.Horizontal() {
		return Offset{X: sign * (measured.Width + viewport.Width)}
	}
	return Offset{Y: sign * (measured.Height + viewport.Height)}
}

// RestingOffset is the offset an edge overlay settles at for the given
// presentation state.
func RestingOffset(edge Edge, presented bool, measured, viewport Size) Offset {
	if presented {
		return Offset{}
	}
	return HiddenOffset(edge, measured, viewport)
}

// axisValue picks the component of o that moves for the edge.
func axisValue(edge Edge, o Offset) int {
	if edge.Horizontal() {
		return o.X
	}
	return o.Y
}

// axisOffset builds an Offset with v on the edge's slide axis.
func axisOffset(edge Edge, v int) Offset {
	if edge.Horizontal() {
		return Offset{X: v}
	}
	return Offset{Y: v}
}

// Anchor returns the top-left cell of content flush against its edge with
// no offset applied. align positions the content on the cross axis.
func Anchor(edge Edge, content, viewport Size, align lipgloss.Position) (x, y int) {
	cross := func(space int) int {
		if space <= 0 {
			return 0
		}
		return int(math.Round(float64(space) * float64(align)))
	}

	switch edge {
	case EdgeTop:
		return cross(viewport.Width - content.Width), 0
	case EdgeBottom:
		return cross(viewport.Width - content.Width), viewport.Height - content.Height
	case EdgeLeft:
		return 0, cross(viewport.Height - content.Height)
	case EdgeRight:
		return viewport.Width - content.Width, cross(viewport.Height - content.Height)
	default:
		return (viewport.Width - content.Width) / 2, (viewport.Height - content.Height) / 2
	}
}

// defaultAlign is the cross-axis alignment used when none is configured:
// top and bottom menus are centered horizontally, side menus hug the top.
func defaultAlign(edge Edge) lipgloss.Position {
	if edge.Horizontal() {
		return lipgloss.Top
	}
	return lipgloss.Center
}

// scaledSize returns the cell extent of s drawn at the given scale.
func scaledSize(s Size, scale float64) Size {
	return Size{
		Width:  int(math.Ceil(float64(s.Width) * scale)),
		Height: int(math.Ceil(float64(s.Height) * scale)),
	}
}
