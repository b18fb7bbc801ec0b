package overlay

import lipgloss "charm.land/lipgloss/v2"

// SizeProbe measures rendered content and republishes its size whenever it
// changes. It never alters the content it observes.
type SizeProbe struct {
	size     Size
	measured bool
	bus      *Bus[Size]
}

// NewSizeProbe returns a probe with no measurement.
func NewSizeProbe() *SizeProbe {
	return &SizeProbe{bus: NewBus[Size]()}
}

// Measure records the size of content, publishing it if it differs from
// the previous measurement.
func (p *SizeProbe) Measure(content string) Size {
	w, h := lipgloss.Size(content)
	if content == "" {
		w, h = 0, 0
	}
	next := Size{Width: w, Height: h}

	if p.measured && next == p.size {
		return next
	}

	p.size = next
	p.measured = true
	p.bus.Publish(next)
	return next
}

// Size returns the last measurement, or zero before the first one.
func (p *SizeProbe) Size() Size {
	return p.size
}

// Measured reports whether at least one measurement happened.
func (p *SizeProbe) Measured() bool {
	return p.measured
}

// Subscribe registers fn for size changes.
func (p *SizeProbe) Subscribe(fn func(Size)) func() {
	return p.bus.Subscribe(fn)
}
