// Package overlay slides menus in from the edges of a Bubble Tea program,
// or pops them up in the center, above whatever the program already draws.
//
// Each overlay is driven by a caller-owned Flag. The engine measures the
// overlay's content, parks it off-screen by its own extent plus the
// viewport's when the flag is false, and springs it into place when the
// flag turns true. A dimmed backdrop follows the same animation and clears
// the flag when clicked.
//
// All types in this package are meant to be used from a single Bubble Tea
// update loop and are not safe for concurrent use.
package overlay

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"
)

// Overlay is one registered menu slot. It is implemented by EdgeOverlay
// and CenterOverlay.
type Overlay interface {
	// ID identifies the overlay in FrameMsg and hit tests.
	ID() int
	// Edge returns the slot the overlay was registered for.
	Edge() Edge
	// Flag returns the presentation flag the overlay observes.
	Flag() *Flag
	// Presented returns the flag value observed at the last Sync.
	Presented() bool
	// Visible reports whether any part of the overlay is on screen.
	Visible() bool
	// Backdrop returns the overlay's dimming layer.
	Backdrop() *Backdrop
	// Action is called by content buttons (OK, Cancel and the like). It
	// dismisses only when the overlay's DismissPolicy allows it.
	Action() bool

	render() string
	sync(viewport Size) tea.Cmd
	frame(msg FrameMsg) tea.Cmd
	layers(base string, viewport Size, z int) []*lipgloss.Layer
	origin(viewport Size) (x, y int)
}

// core holds the state shared by edge and center overlays.
type core struct {
	id   int
	tag  int
	edge Edge

	flag     *Flag
	content  Content
	probe    *SizeProbe
	backdrop *Backdrop
	motion   *Motion
	opts     options
	log      zerolog.Logger

	rendered    string
	viewport    Size
	presented   bool
	initialized bool
	animating   bool
	dirty       bool
	unsubscribe []func()
}

func newCore(edge Edge, flag *Flag, content Content, opts options) *core {
	c := &core{
		id:       nextID(),
		edge:     edge,
		flag:     flag,
		content:  content,
		probe:    NewSizeProbe(),
		backdrop: NewBackdrop(flag, opts.backdrop, opts.dismiss.OnBackdrop),
		opts:     opts,
		dirty:    true,
	}
	c.log = opts.logger.With().
		Str("component", "overlay").
		Str("edge", string(edge)).
		Int("id", c.id).
		Logger()

	c.unsubscribe = append(c.unsubscribe,
		flag.Subscribe(func(bool) { c.dirty = true }),
		c.probe.Subscribe(func(Size) { c.dirty = true }),
	)
	return c
}

// ID implements Overlay.
func (c *core) ID() int { return c.id }

// Edge implements Overlay.
func (c *core) Edge() Edge { return c.edge }

// Flag implements Overlay.
func (c *core) Flag() *Flag { return c.flag }

// Presented implements Overlay.
func (c *core) Presented() bool { return c.presented }

// Backdrop implements Overlay.
func (c *core) Backdrop() *Backdrop { return c.backdrop }

// Measured returns the content's last measured size.
func (c *core) Measured() Size { return c.probe.Size() }

// Animating reports whether a frame loop is running.
func (c *core) Animating() bool { return c.animating }

// Action implements Overlay.
func (c *core) Action() bool {
	if !c.opts.dismiss.OnAction {
		return false
	}
	return c.flag.Set(false)
}

// Close detaches the overlay from its flag and probe.
func (c *core) Close() {
	for _, fn := range c.unsubscribe {
		fn()
	}
	c.unsubscribe = nil
}

// render draws the content and feeds it through the probe.
func (c *core) render() string {
	c.rendered = c.content.View()
	c.probe.Measure(c.rendered)
	return c.rendered
}

// observe reads the flag and reports whether it changed since the last
// observation. Hide hooks run here, once per observed transition.
func (c *core) observe() (presented, changed bool) {
	presented = c.flag.Get()
	changed = presented != c.presented
	c.presented = presented

	if changed && c.initialized {
		c.log.Debug().Bool("presented", presented).Msg("transition")
		if !presented {
			for _, fn := range c.opts.onHide {
				fn(c.edge)
			}
		}
	}
	return presented, changed
}

// start begins a frame loop unless one is already running. A running loop
// picks up the new target on its next frame.
func (c *core) start() tea.Cmd {
	if c.animating {
		return nil
	}
	c.animating = true
	c.tag++
	return frame(c.id, c.tag, c.motion.Interval())
}

// advance steps the motion for msg and schedules the next frame.
func (c *core) advance(msg FrameMsg) tea.Cmd {
	if msg.ID != c.id || msg.tag != c.tag || !c.animating {
		return nil
	}

	if c.motion.Step() {
		c.animating = false
		c.log.Debug().Float64("position", c.motion.Position()).Msg("settled")
		return nil
	}

	c.tag++
	return frame(c.id, c.tag, c.motion.Interval())
}

func layerID(id int, part string) string {
	return fmt.Sprintf("overlay-%d-%s", id, part)
}

// backdropLayer renders the dimming layer; it only gets a hit-test ID
// while it is interactive so hidden backdrops never swallow clicks.
func (c *core) backdropLayer(base string, viewport Size, z int) *lipgloss.Layer {
	rendered := c.backdrop.Render(base, viewport)
	if rendered == "" {
		return nil
	}
	l := lipgloss.NewLayer(rendered).Z(z)
	if c.backdrop.Interactive() {
		l.ID(layerID(c.id, partBackdrop))
	}
	return l
}

// contentLayer clips content drawn at (x, y) to the viewport. Content is
// only clickable while presented.
func (c *core) contentLayer(content string, x, y int, viewport Size, z int) *lipgloss.Layer {
	visible, vx, vy, ok := clipBlock(content, x, y, viewport)
	if !ok {
		return nil
	}
	l := lipgloss.NewLayer(visible).X(vx).Y(vy).Z(z)
	if c.presented {
		l.ID(layerID(c.id, partContent))
	}
	return l
}

const (
	partBackdrop = "backdrop"
	partContent  = "content"
)
