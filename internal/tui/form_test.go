package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginForm_FocusCycle(t *testing.T) {
	f := NewLoginForm(40)
	f.Focus()
	require.Equal(t, fieldEmail, f.focus)

	for _, want := range []formField{fieldPassword, fieldOK, fieldCancel, fieldEmail} {
		f.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		assert.Equal(t, want, f.focus)
	}

	f.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, fieldCancel, f.focus)
}

func TestLoginForm_EnterOnButtons(t *testing.T) {
	tests := []struct {
		name  string
		focus formField
		want  FormResult
	}{
		{name: "email moves on", focus: fieldEmail, want: FormNone},
		{name: "ok submits", focus: fieldOK, want: FormSubmit},
		{name: "cancel cancels", focus: fieldCancel, want: FormCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewLoginForm(40)
			f.Focus()
			f.focus = tt.focus

			res, _ := f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestLoginForm_ArrowsSwapButtons(t *testing.T) {
	f := NewLoginForm(40)
	f.Focus()
	f.focus = fieldOK

	f.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, fieldCancel, f.focus)
	f.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, fieldOK, f.focus)
}

func TestLoginForm_Typing(t *testing.T) {
	f := NewLoginForm(40)
	f.Focus()
	for _, r := range "me@x.io" {
		f.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	assert.Equal(t, "me@x.io", f.Email())

	f.Reset()
	assert.Empty(t, f.Email())
}

func TestLoginForm_Click(t *testing.T) {
	okWidth := lipgloss.Width(formButtonStyle.Render(labelOK))
	cancelX := formPadding + okWidth + len(buttonGap)

	tests := []struct {
		name      string
		x, y      int
		want      FormResult
		wantFocus formField
		focuses   bool
	}{
		{name: "email row", x: 5, y: formRowEmail, wantFocus: fieldEmail, focuses: true},
		{name: "password row", x: 5, y: formRowPassword, wantFocus: fieldPassword, focuses: true},
		{name: "ok", x: formPadding, y: formRowButtons, want: FormSubmit},
		{name: "cancel", x: cancelX, y: formRowButtons, want: FormCancel},
		{name: "gap between buttons", x: formPadding + okWidth, y: formRowButtons, want: FormNone},
		{name: "divider", x: 5, y: formRowEmail + 1, want: FormNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewLoginForm(40)
			res, _ := f.Click(tt.x, tt.y)
			assert.Equal(t, tt.want, res)
			assert.Equal(t, tt.focuses, f.Active())
			if tt.focuses {
				assert.Equal(t, tt.wantFocus, f.focus)
			}
		})
	}
}

func TestLoginForm_ViewLayout(t *testing.T) {
	f := NewLoginForm(40)
	view := f.View()

	// gradient bar plus the eight body rows
	assert.Equal(t, 9, lipgloss.Height(view))
	assert.Equal(t, 40, lipgloss.Width(view))

	rows := strings.Split(ansi.Strip(view), "\n")
	assert.Contains(t, rows[formRowEmail], iconEmail)
	assert.Contains(t, rows[formRowPassword], iconPassword)
	assert.Contains(t, rows[formRowButtons], labelOK)
	assert.Contains(t, rows[formRowButtons], labelCancel)
}

func TestLoginForm_MinimumWidth(t *testing.T) {
	f := NewLoginForm(4)
	assert.Equal(t, 24, lipgloss.Width(f.View()))
}
