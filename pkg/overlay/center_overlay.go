package overlay

import (
	"math"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
)

// CenterOverlay keeps its content centered and transitions by visibility
// and uniform scale instead of sliding.
type CenterOverlay struct {
	*core
	minScale float64
}

var _ Overlay = (*CenterOverlay)(nil)

// NewCenterOverlay creates the center slot overlay.
func NewCenterOverlay(flag *Flag, content Content, opts ...Option) *CenterOverlay {
	o := buildOptions(opts...)
	c := &CenterOverlay{
		core:     newCore(EdgeCenter, flag, content, o),
		minScale: o.minScale,
	}
	c.motion = NewMotion(o.spring, 0)
	return c
}

// progress is the motion position clamped to [0, 1].
func (c *CenterOverlay) progress() float64 {
	return math.Min(1, math.Max(0, c.motion.Position()))
}

// Scale returns the current scale, between the minimum scale and 1.
func (c *CenterOverlay) Scale() float64 {
	return c.minScale + (1-c.minScale)*c.progress()
}

// MinScale returns the scale used while hidden.
func (c *CenterOverlay) MinScale() float64 {
	return c.minScale
}

// Visible implements Overlay. Content is drawn while presented or while
// still shrinking away.
func (c *CenterOverlay) Visible() bool {
	return c.motion.Position() > 0 || c.motion.Target() > 0
}

func (c *CenterOverlay) sync(viewport Size) tea.Cmd {
	c.render()
	c.viewport = viewport
	if !c.dirty {
		return nil
	}
	c.dirty = false

	presented, _ := c.observe()
	target := 0.0
	if presented {
		target = 1
	}

	if !c.initialized {
		c.initialized = true
		c.motion.Jump(target)
		c.fade()
		return nil
	}

	if c.motion.Retarget(target) {
		c.fade()
		return c.start()
	}
	c.fade()
	return nil
}

func (c *CenterOverlay) frame(msg FrameMsg) tea.Cmd {
	cmd := c.advance(msg)
	c.fade()
	return cmd
}

func (c *CenterOverlay) fade() {
	c.backdrop.setOpacity(c.progress())
}

// origin is the top-left cell of the full-size content.
func (c *CenterOverlay) origin(viewport Size) (x, y int) {
	return Anchor(EdgeCenter, c.probe.Size(), viewport, lipgloss.Center)
}

func (c *CenterOverlay) layers(base string, viewport Size, z int) []*lipgloss.Layer {
	var out []*lipgloss.Layer
	if l := c.backdropLayer(base, viewport, z); l != nil {
		out = append(out, l)
	}
	if !c.Visible() {
		return out
	}

	size := c.probe.Size()
	window := scaledSize(size, c.Scale())
	content := cropCenter(c.rendered, size, window)
	x, y := Anchor(EdgeCenter, window, viewport, lipgloss.Center)
	if l := c.contentLayer(content, x, y, viewport, z+1); l != nil {
		out = append(out, l)
	}
	return out
}
