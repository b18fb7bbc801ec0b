package tui

import (
	"fmt"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
)

const (
	sideMenuWidth = 32
	// sideMenuHeader is the number of rows above the first item: the
	// border and the title.
	sideMenuHeader = 2
)

// SideMenu is the content of the left and right drawers: a full height
// list of generated items.
type SideMenu struct {
	title string
	list  list.Model
}

// NewSideMenu creates a menu with one numbered item per label.
func NewSideMenu(title string, labels []string) *SideMenu {
	items := make([]list.Item, len(labels))
	for i, label := range labels {
		items[i] = MenuItem{Number: i + 1, Label: label}
	}

	l := list.New(items, NewMenuDelegate(), sideMenuWidth-2, 1)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)

	return &SideMenu{title: title, list: l}
}

// SetHeight sizes the menu to fill height rows including its border.
func (s *SideMenu) SetHeight(height int) {
	s.list.SetSize(sideMenuWidth-2, max(1, height-sideMenuHeader-1))
}

// Update forwards navigation keys to the list.
func (s *SideMenu) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return cmd
}

// Selected returns the highlighted item.
func (s *SideMenu) Selected() (MenuItem, bool) {
	item, ok := s.list.SelectedItem().(MenuItem)
	return item, ok
}

// Click selects the item on content-local row y.
func (s *SideMenu) Click(y int) (MenuItem, bool) {
	row := y - sideMenuHeader
	if row < 0 {
		return MenuItem{}, false
	}

	items := s.list.Items()
	start, end := s.list.Paginator.GetSliceBounds(len(items))
	index := start + row
	if index >= end {
		return MenuItem{}, false
	}

	s.list.Select(index)
	return s.Selected()
}

// View renders the menu panel.
func (s *SideMenu) View() string {
	page := fmt.Sprintf("%s %d/%d", s.title, s.list.Paginator.Page+1, max(1, s.list.Paginator.TotalPages))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		sideMenuTitleStyle.Render(page),
		s.list.View(),
	)
	return sideMenuStyle.Width(sideMenuWidth).Render(content)
}
