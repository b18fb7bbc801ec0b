package overlay

import (
	"image/color"
	"math"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// backdropSteps is the number of blend steps between clear and fully dimmed.
const backdropSteps = 16

// BackdropStyle controls how the dimming layer is painted. The base content
// is repainted in a foreground blended from Foreground toward Dim by the
// backdrop's opacity, on top of Background (nil keeps the terminal's).
type BackdropStyle struct {
	Foreground color.Color
	Dim        color.Color
	Background color.Color
}

// DefaultBackdropStyle dims toward the Tokyo Night selection gray.
func DefaultBackdropStyle() BackdropStyle {
	return BackdropStyle{
		Foreground: lipgloss.Color("#c0caf5"),
		Dim:        lipgloss.Color("#3b4261"),
		Background: lipgloss.Color("#16161e"),
	}
}

// Backdrop is the full-viewport dimming layer behind an overlay. It shares
// the overlay's flag and is the tap-to-dismiss surface.
type Backdrop struct {
	flag    *Flag
	style   BackdropStyle
	dismiss bool
	opacity float64

	fg []color.Color
}

// NewBackdrop creates a backdrop bound to flag. When dismiss is false taps
// are swallowed without closing the overlay.
func NewBackdrop(flag *Flag, style BackdropStyle, dismiss bool) *Backdrop {
	b := &Backdrop{
		flag:    flag,
		style:   style,
		dismiss: dismiss,
		fg:      lipgloss.Blend1D(backdropSteps, style.Foreground, style.Dim),
	}
	if flag.Get() {
		b.opacity = 1
	}
	return b
}

// Opacity returns the current opacity in [0, 1].
func (b *Backdrop) Opacity() float64 {
	return b.opacity
}

// setOpacity is driven by the owning overlay's motion.
func (b *Backdrop) setOpacity(v float64) {
	b.opacity = math.Min(1, math.Max(0, v))
}

// Interactive reports whether the backdrop intercepts clicks. A backdrop
// whose flag is false never does, even while it is still fading out.
func (b *Backdrop) Interactive() bool {
	return b.flag.Get()
}

// Tap handles a click on the backdrop. It is the only way the backdrop
// mutates shared state, and reports whether the flag was cleared.
func (b *Backdrop) Tap() bool {
	if !b.flag.Get() || !b.dismiss {
		return false
	}
	return b.flag.Set(false)
}

// Render repaints base as the dimmed layer. It returns "" when the
// backdrop is fully transparent.
func (b *Backdrop) Render(base string, viewport Size) string {
	if b.opacity <= 0 || viewport.Width <= 0 || viewport.Height <= 0 {
		return ""
	}

	idx := int(math.Round(b.opacity * float64(backdropSteps-1)))
	style := lipgloss.NewStyle().
		Width(viewport.Width).
		Height(viewport.Height)
	if idx < len(b.fg) {
		style = style.Foreground(b.fg[idx])
	}
	if b.style.Background != nil {
		style = style.Background(b.style.Background)
	}

	plain, _, _, ok := clipBlock(ansi.Strip(base), 0, 0, viewport)
	if !ok {
		plain = ""
	}
	lines := strings.Split(plain, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}

	return style.Render(strings.Join(lines, "\n"))
}
