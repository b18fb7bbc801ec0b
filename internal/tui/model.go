package tui

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/drawer/internal/core/config"
	"github.com/hay-kot/drawer/pkg/overlay"
	"github.com/hay-kot/drawer/pkg/randid"
)

// Key constants for event handling.
const (
	keyEnter = "enter"
	keyEsc   = "esc"
	keyCtrlC = "ctrl+c"
)

const (
	centerFormWidth = 40
	defaultWidth    = 80
	defaultHeight   = 24
)

// slotOrder is the registration order; later slots draw on top.
var slotOrder = []overlay.Edge{
	overlay.EdgeLeft,
	overlay.EdgeRight,
	overlay.EdgeTop,
	overlay.EdgeBottom,
	overlay.EdgeCenter,
}

// Model is the main Bubble Tea model for the demo program.
type Model struct {
	cfg     *config.Config
	host    *overlay.Host
	flags   map[overlay.Edge]*overlay.Flag
	slots   map[overlay.Edge]overlay.Overlay
	handler *KeybindingHandler
	help    help.Model
	log     zerolog.Logger

	// Slot content
	left   *SideMenu
	right  *SideMenu
	bottom *LoginForm
	center *LoginForm
	now    func() time.Time

	width    int
	height   int
	status   string
	quitting bool
}

// New creates a new demo model with all five slots registered.
func New(cfg *config.Config) Model {
	labels := randid.New(cfg.Demo.Seed)
	m := Model{
		cfg:     cfg,
		flags:   make(map[overlay.Edge]*overlay.Flag, len(slotOrder)),
		slots:   make(map[overlay.Edge]overlay.Overlay, len(slotOrder)),
		handler: NewKeybindingHandler(cfg.Keybindings),
		help:    help.New(),
		log:     log.With().Str("component", "tui").Logger(),
		left:    NewSideMenu("Left", labels.Labels(cfg.Demo.Items)),
		right:   NewSideMenu("Right", labels.Labels(cfg.Demo.Items)),
		bottom:  NewLoginForm(defaultWidth),
		center:  NewLoginForm(centerFormWidth),
		now:     time.Now,
		status:  "click a button or press its key",
	}

	m.left.SetHeight(defaultHeight)
	m.right.SetHeight(defaultHeight)

	m.help.Styles.ShortKey = helpStyle.Bold(true)
	m.help.Styles.ShortDesc = helpStyle
	m.help.Styles.ShortSeparator = helpStyle

	opts := append(cfg.HostOptions(), overlay.WithLogger(log.Logger))
	if cfg.ReleaseFocusOnHide {
		opts = append(opts, overlay.WithOnHide(m.releaseFocus))
	}
	m.host = overlay.NewHost(opts...)

	now := m.now
	contents := map[overlay.Edge]overlay.Content{
		overlay.EdgeLeft:   overlay.ContentFunc(m.left.View),
		overlay.EdgeRight:  overlay.ContentFunc(m.right.View),
		overlay.EdgeTop:    overlay.ContentFunc(func() string { return Calendar(now()) }),
		overlay.EdgeBottom: overlay.ContentFunc(m.bottom.View),
		overlay.EdgeCenter: overlay.ContentFunc(m.center.View),
	}

	for _, edge := range slotOrder {
		flag := overlay.NewFlag(false)
		m.flags[edge] = flag
		m.slots[edge] = m.host.Register(edge, flag, contents[edge], cfg.Options(edge)...)
	}

	return m
}

// Host returns the overlay host driving the slots.
func (m Model) Host() *overlay.Host {
	return m.host
}

// Flag returns the presentation flag of edge.
func (m Model) Flag(edge overlay.Edge) *overlay.Flag {
	return m.flags[edge]
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.host.Sync()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, consumed := m.host.Update(msg)
	if consumed {
		return m, cmd
	}
	cmds := []tea.Cmd{cmd}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case overlay.ContentClickMsg:
		m, cmd = m.handleContentClick(msg)
		cmds = append(cmds, cmd)

	case tea.MouseClickMsg:
		m, cmd = m.handleLauncherClick(msg.Mouse())
		cmds = append(cmds, cmd)

	case tea.KeyPressMsg:
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	default:
		// Cursor blink and similar messages go to the focused form.
		if f := m.formFor(m.focused()); f != nil {
			_, cmd = f.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Flags may have been written above; let the overlays catch up.
	cmds = append(cmds, m.host.Sync())
	return m, tea.Batch(cmds...)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.left.SetHeight(height)
	m.right.SetHeight(height)
	m.bottom.SetWidth(width)
	m.help.SetWidth(width)
}

// focused returns the top-most presented slot that takes keyboard input,
// or "" when keys should go to the home screen.
func (m Model) focused() overlay.Edge {
	presented := m.host.Presented()
	for i := len(presented) - 1; i >= 0; i-- {
		edge := presented[i].Edge()
		if m.formFor(edge) != nil || m.menuFor(edge) != nil {
			return edge
		}
	}
	return ""
}

func (m Model) formFor(edge overlay.Edge) *LoginForm {
	switch edge {
	case overlay.EdgeBottom:
		return m.bottom
	case overlay.EdgeCenter:
		return m.center
	default:
		return nil
	}
}

func (m Model) menuFor(edge overlay.Edge) *SideMenu {
	switch edge {
	case overlay.EdgeLeft:
		return m.left
	case overlay.EdgeRight:
		return m.right
	default:
		return nil
	}
}

// releaseFocus blurs a form when its slot closes.
func (m Model) releaseFocus(edge overlay.Edge) {
	if f := m.formFor(edge); f != nil && f.Active() {
		f.Blur()
		m.log.Debug().Str("edge", string(edge)).Msg("released focus")
	}
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == keyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	focused := m.focused()

	if f := m.formFor(focused); f != nil && keyStr != keyEsc {
		if !f.Active() {
			return m, f.Focus()
		}
		res, cmd := f.Update(msg)
		return m.finishForm(focused, res), cmd
	}

	if menu := m.menuFor(focused); menu != nil {
		switch keyStr {
		case keyEnter:
			if item, ok := menu.Selected(); ok {
				m = m.pick(focused, item)
			}
			return m, nil
		case "up", "down", "k", "j", "pgup", "pgdown", "home", "end":
			return m, menu.Update(msg)
		}
	}

	action, ok := m.handler.Resolve(keyStr)
	if !ok {
		return m, nil
	}

	switch action.Type {
	case ActionTypeToggle:
		return m.toggle(action.Edge)
	case ActionTypeDismiss:
		if m.host.DismissTop() {
			m.status = "dismissed"
		}
	case ActionTypeQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleLauncherClick(mouse tea.Mouse) (Model, tea.Cmd) {
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}
	edge, ok := launcherHit(m.launchers(), mouse.X, mouse.Y)
	if !ok {
		return m, nil
	}
	return m.open(edge)
}

func (m Model) handleContentClick(msg overlay.ContentClickMsg) (Model, tea.Cmd) {
	switch msg.Edge {
	case overlay.EdgeLeft, overlay.EdgeRight:
		if item, ok := m.menuFor(msg.Edge).Click(msg.Y); ok {
			m = m.pick(msg.Edge, item)
		}
	case overlay.EdgeBottom, overlay.EdgeCenter:
		res, cmd := m.formFor(msg.Edge).Click(msg.X, msg.Y)
		return m.finishForm(msg.Edge, res), cmd
	case overlay.EdgeTop:
		m.status = "today is " + m.now().Format("Monday, January 2")
	}
	return m, nil
}

func (m Model) toggle(edge overlay.Edge) (Model, tea.Cmd) {
	flag := m.flags[edge]
	if flag.Get() {
		flag.Set(false)
		m.status = fmt.Sprintf("closed the %s menu", edge)
		return m, nil
	}
	return m.open(edge)
}

func (m Model) open(edge overlay.Edge) (Model, tea.Cmd) {
	m.flags[edge].Set(true)
	m.status = fmt.Sprintf("opened the %s menu", edge)
	if f := m.formFor(edge); f != nil {
		return m, f.Focus()
	}
	return m, nil
}

// pick closes a side menu after one of its rows was chosen.
func (m Model) pick(edge overlay.Edge, item MenuItem) Model {
	m.flags[edge].Set(false)
	m.status = fmt.Sprintf("picked %s from the %s menu", item, edge)
	return m
}

// finishForm applies a form's OK or Cancel. Whether the slot closes is up
// to its dismiss policy.
func (m Model) finishForm(edge overlay.Edge, res FormResult) Model {
	f := m.formFor(edge)

	switch res {
	case FormSubmit:
		email := f.Email()
		if email == "" {
			email = "nobody"
		}
		m.status = "signed in as " + email
	case FormCancel:
		f.Reset()
		m.status = "cancelled"
	default:
		return m
	}

	if !m.slots[edge].Action() {
		m.status += fmt.Sprintf(" (the %s menu stays open)", edge)
	}
	return m
}

func (m Model) launchers() []*lipgloss.Layer {
	top := lipgloss.Height(bannerStyle.Render(banner)) + 1
	return launcherLayers(m.size().Width, top, m.handler.KeyForEdge)
}

func (m Model) size() overlay.Size {
	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}
	return overlay.Size{Width: w, Height: h}
}

// View renders the home screen with the overlays on top.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.host.View(m.renderBase()))
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderBase draws the home screen: banner, launcher buttons, status line
// and key help.
func (m Model) renderBase() string {
	size := m.size()

	layers := []*lipgloss.Layer{lipgloss.NewLayer(bannerStyle.Render(banner))}
	layers = append(layers, m.launchers()...)

	footer := lipgloss.JoinVertical(
		lipgloss.Left,
		statusStyle.Render(m.status),
		" "+m.help.ShortHelpView(m.handler.KeyBindings()),
	)
	layers = append(layers, lipgloss.NewLayer(footer).Y(max(0, size.Height-lipgloss.Height(footer))))

	return lipgloss.NewCanvas(size.Width, size.Height).
		Compose(lipgloss.NewCompositor(layers...)).
		Render()
}
