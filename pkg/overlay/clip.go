package overlay

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// clipBlock crops content drawn at (x, y) to the viewport. It returns the
// visible part and its new origin; ok is false when nothing is visible.
func clipBlock(content string, x, y int, viewport Size) (visible string, vx, vy int, ok bool) {
	if content == "" || viewport.Width <= 0 || viewport.Height <= 0 {
		return "", 0, 0, false
	}

	lines := strings.Split(content, "\n")
	w, h := lipgloss.Width(content), len(lines)

	if x >= viewport.Width || y >= viewport.Height || x+w <= 0 || y+h <= 0 {
		return "", 0, 0, false
	}

	top := max(0, -y)
	bottom := min(h, viewport.Height-y)
	left := max(0, -x)
	right := min(w, viewport.Width-x)

	lines = lines[top:bottom]
	if left > 0 || right < w {
		for i, line := range lines {
			lines[i] = ansi.Cut(line, left, right)
		}
	}

	return strings.Join(lines, "\n"), x + left, y + top, true
}

// cropCenter keeps the centered window of content that is window cells
// large. It is how a uniform scale is drawn on a cell grid.
func cropCenter(content string, size, window Size) string {
	if window.Width >= size.Width && window.Height >= size.Height {
		return content
	}
	if window.Width <= 0 || window.Height <= 0 {
		return ""
	}

	lines := strings.Split(content, "\n")
	top := (size.Height - window.Height) / 2
	left := (size.Width - window.Width) / 2

	lines = lines[top : top+window.Height]
	for i, line := range lines {
		lines[i] = ansi.Cut(line, left, left+window.Width)
	}
	return strings.Join(lines, "\n")
}
