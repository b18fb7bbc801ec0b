package overlay

import (
	"math"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
)

// EdgeOverlay slides content in from the top, bottom, left or right edge.
// Its offset is a pure function of the flag, the measured content size and
// the viewport; the spring only decides how it gets there.
type EdgeOverlay struct {
	*core
	align lipgloss.Position
}

var _ Overlay = (*EdgeOverlay)(nil)

// NewEdgeOverlay creates an overlay for one of the four edges. Passing
// EdgeCenter is a programming error; use NewCenterOverlay instead.
func NewEdgeOverlay(edge Edge, flag *Flag, content Content, opts ...Option) *EdgeOverlay {
	o := buildOptions(opts...)
	align := defaultAlign(edge)
	if o.align != nil {
		align = *o.align
	}

	e := &EdgeOverlay{
		core:  newCore(edge, flag, content, o),
		align: align,
	}
	e.motion = NewMotion(o.spring, 0)
	return e
}

// Offset returns the current translation from the presented position.
func (e *EdgeOverlay) Offset() Offset {
	return axisOffset(e.edge, int(math.Round(e.motion.Position())))
}

// Target returns the offset the overlay is heading to.
func (e *EdgeOverlay) Target() Offset {
	return RestingOffset(e.edge, e.presented, e.probe.Size(), e.viewport)
}

// Visible implements Overlay.
func (e *EdgeOverlay) Visible() bool {
	if e.backdrop.Opacity() > 0 {
		return true
	}
	size := e.probe.Size()
	if size.IsZero() {
		return false
	}
	x, y := e.origin(e.viewport)
	return x < e.viewport.Width && y < e.viewport.Height &&
		x+size.Width > 0 && y+size.Height > 0
}

func (e *EdgeOverlay) sync(viewport Size) tea.Cmd {
	e.render()
	if viewport != e.viewport {
		e.viewport = viewport
		e.dirty = true
	}
	if !e.dirty {
		return nil
	}
	e.dirty = false

	presented, changed := e.observe()
	target := float64(axisValue(e.edge, e.Target()))

	switch {
	case !e.initialized:
		e.initialized = true
		e.motion.Jump(target)
	case !presented && !changed && e.motion.Settled():
		// Parked off-screen: a new measurement or viewport only moves
		// content that nobody can see.
		e.motion.Jump(target)
	default:
		if e.motion.Retarget(target) {
			e.fade()
			return e.start()
		}
	}

	e.fade()
	return nil
}

func (e *EdgeOverlay) frame(msg FrameMsg) tea.Cmd {
	cmd := e.advance(msg)
	e.fade()
	return cmd
}

// fade derives the backdrop opacity from how far the content has travelled
// toward its hidden offset.
func (e *EdgeOverlay) fade() {
	hidden := float64(axisValue(e.edge, HiddenOffset(e.edge, e.probe.Size(), e.viewport)))
	if hidden == 0 {
		if e.presented {
			e.backdrop.setOpacity(1)
		} else {
			e.backdrop.setOpacity(0)
		}
		return
	}
	e.backdrop.setOpacity(1 - e.motion.Position()/hidden)
}

// origin is the top-left cell of the content with the current offset.
func (e *EdgeOverlay) origin(viewport Size) (x, y int) {
	x, y = Anchor(e.edge, e.probe.Size(), viewport, e.align)
	off := e.Offset()
	return x + off.X, y + off.Y
}

func (e *EdgeOverlay) layers(base string, viewport Size, z int) []*lipgloss.Layer {
	var out []*lipgloss.Layer
	if l := e.backdropLayer(base, viewport, z); l != nil {
		out = append(out, l)
	}
	x, y := e.origin(viewport)
	if l := e.contentLayer(e.rendered, x, y, viewport, z+1); l != nil {
		out = append(out, l)
	}
	return out
}
