// Package config handles configuration loading and validation for drawer.
package config

import (
	"fmt"
	"os"

	lipgloss "charm.land/lipgloss/v2"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/drawer/pkg/overlay"
)

// Built-in action names for keybindings.
const (
	ActionToggleTop    = "toggle-top"
	ActionToggleBottom = "toggle-bottom"
	ActionToggleLeft   = "toggle-left"
	ActionToggleRight  = "toggle-right"
	ActionToggleCenter = "toggle-center"
	ActionDismiss      = "dismiss"
	ActionQuit         = "quit"
)

// Cross-axis alignment names for edge slots.
const (
	AlignStart  = "start"
	AlignCenter = "center"
	AlignEnd    = "end"
)

// defaultKeybindings provides built-in keybindings that users can override.
var defaultKeybindings = map[string]Keybinding{
	"t":      {Action: ActionToggleTop, Help: "top"},
	"b":      {Action: ActionToggleBottom, Help: "bottom"},
	"l":      {Action: ActionToggleLeft, Help: "left"},
	"r":      {Action: ActionToggleRight, Help: "right"},
	"c":      {Action: ActionToggleCenter, Help: "center"},
	"esc":    {Action: ActionDismiss, Help: "dismiss"},
	"q":      {Action: ActionQuit, Help: "quit"},
	"ctrl+c": {Action: ActionQuit, Help: "quit"},
}

// Config holds the application configuration.
type Config struct {
	Animation   AnimationConfig       `yaml:"animation"`
	Backdrop    BackdropConfig        `yaml:"backdrop"`
	Center      CenterConfig          `yaml:"center"`
	Slots       SlotsConfig           `yaml:"slots"`
	Demo        DemoConfig            `yaml:"demo"`
	Keybindings map[string]Keybinding `yaml:"keybindings"`
	// ReleaseFocusOnHide blurs focused inputs inside an overlay when it closes.
	ReleaseFocusOnHide bool `yaml:"release_focus_on_hide"`
}

// AnimationConfig holds the spring used by every overlay.
type AnimationConfig struct {
	FPS       int     `yaml:"fps"`
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}

// BackdropConfig holds the dimming colors as hex strings.
type BackdropConfig struct {
	Foreground string `yaml:"foreground"`
	Dim        string `yaml:"dim"`
	Background string `yaml:"background"`
}

// CenterConfig holds options specific to the center slot.
type CenterConfig struct {
	MinScale float64 `yaml:"min_scale"`
}

// SlotConfig controls dismissal and alignment for one slot.
type SlotConfig struct {
	OnBackdrop bool   `yaml:"on_backdrop"`
	OnAction   bool   `yaml:"on_action"`
	Align      string `yaml:"align"`
}

// SlotsConfig holds one SlotConfig per slot.
type SlotsConfig struct {
	Top    SlotConfig `yaml:"top"`
	Bottom SlotConfig `yaml:"bottom"`
	Left   SlotConfig `yaml:"left"`
	Right  SlotConfig `yaml:"right"`
	Center SlotConfig `yaml:"center"`
}

// DemoConfig holds options for the demo program content.
type DemoConfig struct {
	Items int `yaml:"items"`
	// Seed fixes the generated item labels; 0 draws new ones every run.
	Seed uint64 `yaml:"seed"`
}

// Keybinding defines a TUI keybinding action.
type Keybinding struct {
	Action string `yaml:"action"` // built-in action name
	Help   string `yaml:"help"`   // help text shown in TUI
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	spring := overlay.DefaultSpring()
	return Config{
		Animation: AnimationConfig{
			FPS:       spring.FPS,
			Frequency: spring.Frequency,
			Damping:   spring.Damping,
		},
		Backdrop: BackdropConfig{
			Foreground: "#c0caf5",
			Dim:        "#3b4261",
			Background: "#16161e",
		},
		Center: CenterConfig{
			MinScale: overlay.DefaultMinScale,
		},
		Slots: SlotsConfig{
			Top:    SlotConfig{OnBackdrop: true, Align: AlignCenter},
			Bottom: SlotConfig{OnBackdrop: true, Align: AlignCenter},
			Left:   SlotConfig{OnBackdrop: true, Align: AlignStart},
			Right:  SlotConfig{OnBackdrop: true, Align: AlignStart},
			Center: SlotConfig{OnBackdrop: true, OnAction: true, Align: AlignCenter},
		},
		Demo: DemoConfig{
			Items: 30,
		},
		Keybindings:        map[string]Keybinding{},
		ReleaseFocusOnHide: true,
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Animation.FPS == 0 {
		c.Animation.FPS = defaults.Animation.FPS
	}
	if c.Animation.Frequency == 0 {
		c.Animation.Frequency = defaults.Animation.Frequency
	}
	if c.Center.MinScale == 0 {
		c.Center.MinScale = defaults.Center.MinScale
	}
	if c.Demo.Items == 0 {
		c.Demo.Items = defaults.Demo.Items
	}

	slots := []struct{ cur, def *SlotConfig }{
		{&c.Slots.Top, &defaults.Slots.Top},
		{&c.Slots.Bottom, &defaults.Slots.Bottom},
		{&c.Slots.Left, &defaults.Slots.Left},
		{&c.Slots.Right, &defaults.Slots.Right},
		{&c.Slots.Center, &defaults.Slots.Center},
	}
	for _, s := range slots {
		if s.cur.Align == "" {
			s.cur.Align = s.def.Align
		}
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings override defaults for the same key.
func mergeKeybindings(defaults, user map[string]Keybinding) map[string]Keybinding {
	result := make(map[string]Keybinding, len(defaults)+len(user))

	for k, v := range defaults {
		result[k] = v
	}

	for k, v := range user {
		result[k] = v
	}

	return result
}

// Spring returns the animation settings as an overlay spring.
func (a AnimationConfig) Spring() overlay.Spring {
	return overlay.Spring{
		FPS:       a.FPS,
		Frequency: a.Frequency,
		Damping:   a.Damping,
	}
}

// Style returns the backdrop colors as an overlay style. An empty
// background keeps the terminal's own.
func (b BackdropConfig) Style() overlay.BackdropStyle {
	style := overlay.BackdropStyle{
		Foreground: lipgloss.Color(b.Foreground),
		Dim:        lipgloss.Color(b.Dim),
	}
	if b.Background != "" {
		style.Background = lipgloss.Color(b.Background)
	}
	return style
}

// For returns the slot configuration of edge.
func (s SlotsConfig) For(edge overlay.Edge) SlotConfig {
	switch edge {
	case overlay.EdgeTop:
		return s.Top
	case overlay.EdgeBottom:
		return s.Bottom
	case overlay.EdgeLeft:
		return s.Left
	case overlay.EdgeRight:
		return s.Right
	default:
		return s.Center
	}
}

// Policy returns the slot's dismissal policy.
func (s SlotConfig) Policy() overlay.DismissPolicy {
	return overlay.DismissPolicy{OnBackdrop: s.OnBackdrop, OnAction: s.OnAction}
}

// Position maps the slot's alignment name to a lipgloss position.
func (s SlotConfig) Position() lipgloss.Position {
	switch s.Align {
	case AlignStart:
		return lipgloss.Left
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

// Options returns the overlay options for edge derived from the config.
func (c *Config) Options(edge overlay.Edge) []overlay.Option {
	slot := c.Slots.For(edge)
	opts := []overlay.Option{
		overlay.WithDismissPolicy(slot.Policy()),
	}
	if edge == overlay.EdgeCenter {
		opts = append(opts, overlay.WithMinScale(c.Center.MinScale))
	} else {
		opts = append(opts, overlay.WithAlign(slot.Position()))
	}
	return opts
}

// HostOptions returns the options shared by every registration.
func (c *Config) HostOptions() []overlay.Option {
	return []overlay.Option{
		overlay.WithSpring(c.Animation.Spring()),
		overlay.WithBackdropStyle(c.Backdrop.Style()),
	}
}

// KeyFor returns the first key bound to action in sorted key order, or ""
// when nothing is bound.
func (c *Config) KeyFor(action string) string {
	for _, k := range sortedKeys(c.Keybindings) {
		if c.Keybindings[k].Action == action {
			return k
		}
	}
	return ""
}

// ToggleEdge maps a toggle action to its edge.
func ToggleEdge(action string) (overlay.Edge, bool) {
	switch action {
	case ActionToggleTop:
		return overlay.EdgeTop, true
	case ActionToggleBottom:
		return overlay.EdgeBottom, true
	case ActionToggleLeft:
		return overlay.EdgeLeft, true
	case ActionToggleRight:
		return overlay.EdgeRight, true
	case ActionToggleCenter:
		return overlay.EdgeCenter, true
	default:
		return "", false
	}
}

func isValidAction(action string) bool {
	switch action {
	case ActionToggleTop, ActionToggleBottom, ActionToggleLeft, ActionToggleRight,
		ActionToggleCenter, ActionDismiss, ActionQuit:
		return true
	default:
		return false
	}
}

func isValidAlign(align string) bool {
	switch align {
	case AlignStart, AlignCenter, AlignEnd:
		return true
	default:
		return false
	}
}
