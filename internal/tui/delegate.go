package tui

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// MenuItem is one row of a side menu.
type MenuItem struct {
	Number int
	Label  string
}

// FilterValue returns the value used for filtering.
func (i MenuItem) FilterValue() string {
	return i.Label
}

// String renders the item the way it appears in status messages.
func (i MenuItem) String() string {
	return fmt.Sprintf("%d %s", i.Number, i.Label)
}

// MenuDelegate renders side menu rows, one line each.
type MenuDelegate struct {
	Styles MenuDelegateStyles
}

// MenuDelegateStyles defines the styles for the delegate.
type MenuDelegateStyles struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
}

// NewMenuDelegate creates a new menu delegate with default styles.
func NewMenuDelegate() MenuDelegate {
	return MenuDelegate{
		Styles: MenuDelegateStyles{
			Normal:   normalStyle,
			Selected: selectedStyle,
		},
	}
}

// Height returns the height of each item.
func (d MenuDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d MenuDelegate) Spacing() int {
	return 0
}

// Update handles item updates.
func (d MenuDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders a single item.
func (d MenuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok {
		return
	}

	style := d.Styles.Normal
	prefix := "  "
	if index == m.Index() {
		style = d.Styles.Selected
		prefix = "> "
	}

	line := ansi.Truncate(prefix+menuItem.String(), m.Width(), "…")
	_, _ = fmt.Fprint(w, style.Render(line))
}
