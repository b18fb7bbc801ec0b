package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
)

// formField is the focusable element of a LoginForm.
type formField int

const (
	fieldEmail formField = iota
	fieldPassword
	fieldOK
	fieldCancel
	fieldCount
)

// FormResult reports what a key press or click did to a LoginForm.
type FormResult int

const (
	FormNone FormResult = iota
	FormSubmit
	FormCancel
)

// Row layout of the rendered form, relative to its top-left cell.
const (
	formPadding     = 2
	formRowEmail    = 2
	formRowPassword = 4
	formRowButtons  = 7
)

const (
	iconEmail    = "☀"
	iconPassword = "★"
	labelOK      = "OK"
	labelCancel  = "Cancel"
	buttonGap    = "  "
)

// LoginForm is the email and password sheet used by the bottom drawer and
// the center dialog.
type LoginForm struct {
	width    int
	email    textinput.Model
	password textinput.Model
	focus    formField
	active   bool
}

// NewLoginForm creates a form rendered width cells wide.
func NewLoginForm(width int) *LoginForm {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Prompt = ""
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128

	f := &LoginForm{email: email, password: password}
	f.SetWidth(width)
	return f
}

// SetWidth resizes the form.
func (f *LoginForm) SetWidth(width int) {
	f.width = max(width, 24)
	// padding on both sides, the icon and a space, and the cursor cell
	inputWidth := f.width - 2*formPadding - 3
	f.email.SetWidth(inputWidth)
	f.password.SetWidth(inputWidth)
}

// Focus activates the form with the email input focused.
func (f *LoginForm) Focus() tea.Cmd {
	f.active = true
	f.focus = fieldEmail
	return f.applyFocus()
}

// Blur releases keyboard focus.
func (f *LoginForm) Blur() {
	f.active = false
	f.email.Blur()
	f.password.Blur()
}

// Active reports whether the form holds keyboard focus.
func (f *LoginForm) Active() bool {
	return f.active
}

// Email returns the entered email address.
func (f *LoginForm) Email() string {
	return f.email.Value()
}

// Reset clears both inputs.
func (f *LoginForm) Reset() {
	f.email.SetValue("")
	f.password.SetValue("")
}

func (f *LoginForm) applyFocus() tea.Cmd {
	f.email.Blur()
	f.password.Blur()

	switch f.focus {
	case fieldEmail:
		return f.email.Focus()
	case fieldPassword:
		return f.password.Focus()
	}
	return nil
}

func (f *LoginForm) move(delta int) tea.Cmd {
	f.focus = formField((int(f.focus) + delta + int(fieldCount)) % int(fieldCount))
	return f.applyFocus()
}

// Update handles a message while the form is focused.
func (f *LoginForm) Update(msg tea.Msg) (FormResult, tea.Cmd) {
	if km, ok := msg.(tea.KeyPressMsg); ok {
		switch km.String() {
		case "tab", "down":
			return FormNone, f.move(1)
		case "shift+tab", "up":
			return FormNone, f.move(-1)
		case "left", "right":
			if f.focus == fieldOK || f.focus == fieldCancel {
				f.focus = fieldOK + fieldCancel - f.focus
				return FormNone, nil
			}
		case "enter":
			switch f.focus {
			case fieldOK:
				return FormSubmit, nil
			case fieldCancel:
				return FormCancel, nil
			default:
				return FormNone, f.move(1)
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldPassword:
		f.password, cmd = f.password.Update(msg)
	}
	return FormNone, cmd
}

// Click handles a click at content-local (x, y).
func (f *LoginForm) Click(x, y int) (FormResult, tea.Cmd) {
	switch y {
	case formRowEmail:
		f.active = true
		f.focus = fieldEmail
		return FormNone, f.applyFocus()
	case formRowPassword:
		f.active = true
		f.focus = fieldPassword
		return FormNone, f.applyFocus()
	case formRowButtons:
		okWidth := lipgloss.Width(formButtonStyle.Render(labelOK))
		cancelStart := formPadding + okWidth + len(buttonGap)
		cancelWidth := lipgloss.Width(formButtonStyle.Render(labelCancel))

		switch {
		case x >= formPadding && x < formPadding+okWidth:
			return FormSubmit, nil
		case x >= cancelStart && x < cancelStart+cancelWidth:
			return FormCancel, nil
		}
	}
	return FormNone, nil
}

// View renders the form.
func (f *LoginForm) View() string {
	inner := f.width - 2*formPadding
	divider := formDividerStyle.Render(strings.Repeat("─", inner))

	okStyle, cancelStyle := formButtonStyle, formButtonStyle
	if f.active {
		switch f.focus {
		case fieldOK:
			okStyle = formButtonSelectedStyle
		case fieldCancel:
			cancelStyle = formButtonSelectedStyle
		}
	}
	buttons := okStyle.Render(labelOK) + buttonGap + cancelStyle.Render(labelCancel)

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		formIconStyle.Render(iconEmail)+" "+f.email.View(),
		divider,
		formIconStyle.Render(iconPassword)+" "+f.password.View(),
		divider,
		"",
		buttons,
		"",
	)
	body = panelStyle.
		Width(f.width).
		Padding(0, formPadding).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, gradientBar(f.width), body)
}

// gradientBar draws a red to green handle bar with a centered grip.
func gradientBar(width int) string {
	colors := lipgloss.Blend1D(width, colorRed, colorOrange, colorGreen)
	grip := 3
	gripStart := (width - grip) / 2

	var b strings.Builder
	for i, c := range colors {
		cell := lipgloss.NewStyle().Background(c)
		if i >= gripStart && i < gripStart+grip {
			b.WriteString(formCapsuleStyle.Background(c).Render("━"))
			continue
		}
		b.WriteString(cell.Render(" "))
	}
	return b.String()
}
