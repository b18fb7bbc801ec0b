package tui

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/drawer/internal/core/config"
	"github.com/hay-kot/drawer/pkg/overlay"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)

	m := New(cfg)
	m.now = func() time.Time { return time.Date(2026, time.June, 15, 9, 30, 0, 0, time.UTC) }
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func press(s string) tea.KeyPressMsg {
	switch s {
	case keyEsc:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keyEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keyCtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestModel_ToggleKeysOpenSlots(t *testing.T) {
	tests := []struct {
		key  string
		edge overlay.Edge
	}{
		{key: "t", edge: overlay.EdgeTop},
		{key: "b", edge: overlay.EdgeBottom},
		{key: "l", edge: overlay.EdgeLeft},
		{key: "r", edge: overlay.EdgeRight},
		{key: "c", edge: overlay.EdgeCenter},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestModel(t)
			m = send(t, m, press(tt.key))

			assert.True(t, m.Flag(tt.edge).Get())
			presented := m.Host().Presented()
			require.Len(t, presented, 1)
			assert.Equal(t, tt.edge, presented[0].Edge())
		})
	}
}

func TestModel_EscDismissesTopMost(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press("l"))
	m = send(t, m, press("t"))

	// top is registered after left, so it is dismissed first
	m = send(t, m, press(keyEsc))
	assert.False(t, m.Flag(overlay.EdgeTop).Get())
	assert.True(t, m.Flag(overlay.EdgeLeft).Get())
	assert.Equal(t, "dismissed", m.Status())

	m = send(t, m, press(keyEsc))
	assert.False(t, m.Flag(overlay.EdgeLeft).Get())
}

func TestModel_ToggleClosesOpenSlot(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press("t"))
	m = send(t, m, press("t"))

	assert.False(t, m.Flag(overlay.EdgeTop).Get())
	assert.Contains(t, m.Status(), "closed the top menu")
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", keyCtrlC} {
		t.Run(k, func(t *testing.T) {
			m := newTestModel(t)
			next, cmd := m.Update(press(k))
			require.NotNil(t, cmd)
			assert.True(t, next.(Model).quitting)
			assert.Empty(t, next.(Model).View().Content)
		})
	}
}

func TestModel_FormTakesKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press("c"))
	require.True(t, m.center.Active())

	// "q" is typed instead of quitting while the form has focus
	m = send(t, m, press("a"))
	m = send(t, m, press("q"))
	assert.Equal(t, "aq", m.center.Email())
	assert.False(t, m.quitting)

	m = send(t, m, press(keyEsc))
	assert.False(t, m.Flag(overlay.EdgeCenter).Get())
	assert.False(t, m.center.Active(), "focus is released when the dialog closes")
}

func TestModel_MenuClickPicksAndCloses(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press("l"))

	m = send(t, m, overlay.ContentClickMsg{Edge: overlay.EdgeLeft, X: 3, Y: sideMenuHeader})
	assert.False(t, m.Flag(overlay.EdgeLeft).Get())
	assert.Contains(t, m.Status(), "picked 1 ")
	assert.Contains(t, m.Status(), "left menu")
}

func TestModel_MenuEnterPicksSelection(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press("r"))
	m = send(t, m, press("j"))
	m = send(t, m, press(keyEnter))

	assert.False(t, m.Flag(overlay.EdgeRight).Get())
	assert.Contains(t, m.Status(), "picked 2 ")
}

func TestModel_FormButtonsFollowPolicy(t *testing.T) {
	okX := formPadding

	tests := []struct {
		name     string
		key      string
		edge     overlay.Edge
		wantOpen bool
	}{
		{name: "bottom stays open", key: "b", edge: overlay.EdgeBottom, wantOpen: true},
		{name: "center closes", key: "c", edge: overlay.EdgeCenter, wantOpen: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m = send(t, m, press(tt.key))
			m = send(t, m, overlay.ContentClickMsg{Edge: tt.edge, X: okX, Y: formRowButtons})

			assert.Equal(t, tt.wantOpen, m.Flag(tt.edge).Get())
			assert.Contains(t, m.Status(), "signed in as nobody")
		})
	}
}

func TestModel_TopClickReportsDate(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press("t"))
	m = send(t, m, overlay.ContentClickMsg{Edge: overlay.EdgeTop, X: 1, Y: 1})

	assert.Equal(t, "today is Monday, June 15", m.Status())
	assert.True(t, m.Flag(overlay.EdgeTop).Get())
}

func TestModel_LauncherClickOpensSlot(t *testing.T) {
	for _, edge := range overlay.Edges {
		t.Run(string(edge), func(t *testing.T) {
			m := newTestModel(t)

			var x, y int
			found := false
			for _, l := range m.launchers() {
				if l.GetID() == launchLayerID(edge) {
					x, y, found = l.GetX()+1, l.GetY(), true
				}
			}
			require.True(t, found)

			m = send(t, m, tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
			assert.True(t, m.Flag(edge).Get())
		})
	}
}

func TestModel_ViewSetsMouseMode(t *testing.T) {
	m := newTestModel(t)
	v := m.View()

	assert.True(t, v.AltScreen)
	assert.Equal(t, tea.MouseModeCellMotion, v.MouseMode)
	assert.Contains(t, ansi.Strip(v.Content), "Menu Left")
}
