package config

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/drawer/pkg/overlay"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks that the configuration is valid. It returns
// criterio.FieldErrors listing every invalid field.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder
	return c.validateFields(errs).ToError()
}

// ValidateDeep performs comprehensive validation of the configuration.
// Unlike Validate(), this also checks that the config file is accessible.
func (c *Config) ValidateDeep(configPath string) error {
	var errs criterio.FieldErrorsBuilder
	errs = validateFileAccess(errs, configPath)
	errs = c.validateFields(errs)
	return errs.ToError()
}

func validateFileAccess(errs criterio.FieldErrorsBuilder, configPath string) criterio.FieldErrorsBuilder {
	if configPath == "" {
		return errs
	}

	info, err := os.Stat(configPath)
	switch {
	case err == nil && info.IsDir():
		errs = errs.Append("config", fmt.Errorf("%s is a directory, not a file", configPath))
	case err != nil && !os.IsNotExist(err):
		errs = errs.Append("config", fmt.Errorf("cannot access %s: %w", configPath, err))
	}
	return errs
}

func (c *Config) validateFields(errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	if c.Animation.FPS < 1 || c.Animation.FPS > 240 {
		errs = errs.Append("animation.fps", fmt.Errorf("must be between 1 and 240, got %d", c.Animation.FPS))
	}
	if c.Animation.Frequency <= 0 {
		errs = errs.Append("animation.frequency", fmt.Errorf("must be positive, got %g", c.Animation.Frequency))
	}
	if c.Animation.Damping <= 0 {
		errs = errs.Append("animation.damping", fmt.Errorf("must be positive, got %g", c.Animation.Damping))
	}

	if !hexColor.MatchString(c.Backdrop.Foreground) {
		errs = errs.Append("backdrop.foreground", fmt.Errorf("invalid hex color %q", c.Backdrop.Foreground))
	}
	if !hexColor.MatchString(c.Backdrop.Dim) {
		errs = errs.Append("backdrop.dim", fmt.Errorf("invalid hex color %q", c.Backdrop.Dim))
	}
	if c.Backdrop.Background != "" && !hexColor.MatchString(c.Backdrop.Background) {
		errs = errs.Append("backdrop.background", fmt.Errorf("invalid hex color %q", c.Backdrop.Background))
	}

	if c.Center.MinScale <= 0 || c.Center.MinScale > 1 {
		errs = errs.Append("center.min_scale", fmt.Errorf("must be in (0, 1], got %g", c.Center.MinScale))
	}

	for _, edge := range overlay.Edges {
		slot := c.Slots.For(edge)
		if !isValidAlign(slot.Align) {
			errs = errs.Append(fmt.Sprintf("slots.%s.align", edge),
				fmt.Errorf("invalid alignment %q (use start, center or end)", slot.Align))
		}
	}

	if c.Demo.Items < 1 || c.Demo.Items > 1000 {
		errs = errs.Append("demo.items", fmt.Errorf("must be between 1 and 1000, got %d", c.Demo.Items))
	}

	for _, key := range sortedKeys(c.Keybindings) {
		kb := c.Keybindings[key]
		field := fmt.Sprintf("keybindings[%q]", key)
		if kb.Action == "" {
			errs = errs.Append(field, fmt.Errorf("action is required"))
			continue
		}
		if !isValidAction(kb.Action) {
			errs = errs.Append(field, fmt.Errorf("invalid action %q", kb.Action))
		}
	}

	return errs
}

// Warnings returns non-fatal issues with an otherwise valid configuration.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Animation.Damping < 1 {
		warnings = append(warnings, ValidationWarning{
			Category: "Animation",
			Item:     "damping",
			Message:  "spring is underdamped; menus overshoot their edge before settling",
		})
	}
	if c.Animation.FPS > 120 {
		warnings = append(warnings, ValidationWarning{
			Category: "Animation",
			Item:     "fps",
			Message:  "most terminals cannot redraw faster than 120 frames per second",
		})
	}

	for _, edge := range overlay.Edges {
		slot := c.Slots.For(edge)
		if !slot.OnBackdrop && !slot.OnAction {
			warnings = append(warnings, ValidationWarning{
				Category: "Slots",
				Item:     string(edge),
				Message:  "no dismissal enabled; the menu only closes with its toggle key",
			})
		}
	}

	if c.KeyFor(ActionQuit) == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Keybindings",
			Item:     ActionQuit,
			Message:  "no key bound to quit",
		})
	}

	return warnings
}

func sortedKeys(m map[string]Keybinding) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
