package overlay

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"
)

// Region is the part of an overlay hit by a click.
type Region int

const (
	RegionNone Region = iota
	RegionBackdrop
	RegionContent
)

// Hit is the result of a hit test.
type Hit struct {
	Overlay Overlay
	Region  Region
	// X and Y are relative to the overlay content's top-left cell when
	// Region is RegionContent.
	X, Y int
}

// Host composes overlays above base content. Registrations are drawn in
// order, later ones on top, and never coordinate with each other.
//
// Overlays observe flag writes only in Sync. A flag written without a
// following Sync stays unobserved, and View keeps drawing the old state.
type Host struct {
	overlays []Overlay
	viewport Size
	opts     []Option
	log      zerolog.Logger
}

// NewHost creates a host. opts become the defaults of every registration.
func NewHost(opts ...Option) *Host {
	o := buildOptions(opts...)
	return &Host{
		opts: opts,
		log:  o.logger.With().Str("component", "overlay-host").Logger(),
	}
}

// Register adds an overlay for edge driven by flag. EdgeCenter produces a
// CenterOverlay, every other edge an EdgeOverlay.
func (h *Host) Register(edge Edge, flag *Flag, content Content, opts ...Option) Overlay {
	all := slices.Concat(h.opts, opts)

	var o Overlay
	if edge == EdgeCenter {
		o = NewCenterOverlay(flag, content, all...)
	} else {
		o = NewEdgeOverlay(edge, flag, content, all...)
	}

	h.overlays = append(h.overlays, o)
	h.log.Debug().Str("edge", string(edge)).Int("id", o.ID()).Msg("registered overlay")
	return o
}

// Overlays returns the registered overlays in z-order, bottom first.
func (h *Host) Overlays() []Overlay {
	return h.overlays
}

// Viewport returns the current viewport extent.
func (h *Host) Viewport() Size {
	return h.viewport
}

// SetViewport updates the viewport extent. Call Sync afterwards.
func (h *Host) SetViewport(s Size) {
	h.viewport = s
}

// Sync lets every overlay observe flag writes and new measurements since
// the last call. Call it at the end of the program's Update; several flag
// writes in one update collapse into the last value.
func (h *Host) Sync() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(h.overlays))
	for _, o := range h.overlays {
		if cmd := o.sync(h.viewport); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update handles the messages the engine cares about. The boolean reports
// whether msg was consumed; unconsumed messages, including window size
// messages, should still be handled by the program.
func (h *Host) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.viewport = Size{Width: msg.Width, Height: msg.Height}
		return h.Sync(), false

	case FrameMsg:
		for _, o := range h.overlays {
			if o.ID() == msg.ID {
				return o.frame(msg), true
			}
		}
		return nil, true

	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button != tea.MouseLeft {
			return nil, false
		}
		return h.click(m.X, m.Y)
	}

	return nil, false
}

func (h *Host) click(x, y int) (tea.Cmd, bool) {
	hit := h.HitTest(x, y)
	switch hit.Region {
	case RegionBackdrop:
		if hit.Overlay.Backdrop().Tap() {
			h.log.Debug().Str("edge", string(hit.Overlay.Edge())).Msg("dismissed by backdrop")
		}
		return h.Sync(), true
	case RegionContent:
		click := ContentClickMsg{Edge: hit.Overlay.Edge(), X: hit.X, Y: hit.Y}
		return func() tea.Msg { return click }, true
	default:
		return nil, false
	}
}

// HitTest finds the top-most interactive overlay region at (x, y).
func (h *Host) HitTest(x, y int) Hit {
	hit := h.compose("").Hit(x, y)
	if hit.Empty() {
		return Hit{}
	}

	for _, o := range h.overlays {
		switch hit.ID() {
		case layerID(o.ID(), partBackdrop):
			return Hit{Overlay: o, Region: RegionBackdrop}
		case layerID(o.ID(), partContent):
			ox, oy := o.origin(h.viewport)
			return Hit{Overlay: o, Region: RegionContent, X: x - ox, Y: y - oy}
		}
	}
	return Hit{}
}

// Presented returns the overlays whose flag was true at the last Sync,
// bottom first.
func (h *Host) Presented() []Overlay {
	var out []Overlay
	for _, o := range h.overlays {
		if o.Presented() {
			out = append(out, o)
		}
	}
	return out
}

// DismissTop treats a key press like a backdrop click on the top-most
// presented overlay. It backs the escape key.
func (h *Host) DismissTop() bool {
	for i := len(h.overlays) - 1; i >= 0; i-- {
		o := h.overlays[i]
		if o.Presented() && o.Flag().Get() {
			return o.Backdrop().Tap()
		}
	}
	return false
}

// View draws base with every visible overlay on top.
func (h *Host) View(base string) string {
	for _, o := range h.overlays {
		o.render()
	}

	if h.viewport.Width <= 0 || h.viewport.Height <= 0 {
		return base
	}

	canvas := lipgloss.NewCanvas(h.viewport.Width, h.viewport.Height)
	return canvas.Compose(h.compose(base)).Render()
}

// compose builds the layer stack. Each overlay takes two z levels, its
// backdrop below its content.
func (h *Host) compose(base string) *lipgloss.Compositor {
	layers := []*lipgloss.Layer{lipgloss.NewLayer(base).Z(0)}
	for i, o := range h.overlays {
		layers = append(layers, o.layers(base, h.viewport, 2*i+1)...)
	}
	return lipgloss.NewCompositor(layers...)
}
