package doctor

import (
	"context"
	"errors"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/drawer/internal/core/config"
)

// ConfigCheck validates the loaded configuration and the file it came from.
type ConfigCheck struct {
	cfg  *config.Config
	path string
}

// NewConfigCheck creates a check for cfg, loaded from path.
func NewConfigCheck(cfg *config.Config, path string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, path: path}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Report {
	report := Report{Name: c.Name()}

	if c.cfg == nil {
		report.add(StatusFail, "Loaded", "configuration not loaded")
		return report
	}

	report.add(StatusPass, "Source", c.source())

	err := c.cfg.ValidateDeep(c.path)
	for _, fe := range fieldErrors(err) {
		label := fe.Field
		if label == "" {
			label = "validation"
		}
		report.add(StatusFail, label, fe.Err.Error())
	}

	for _, w := range c.cfg.Warnings() {
		label := w.Category
		if w.Item != "" {
			label += " (" + w.Item + ")"
		}
		report.add(StatusWarn, label, w.Message)
	}

	return report
}

func (c *ConfigCheck) source() string {
	if c.path == "" {
		return "built-in defaults"
	}
	if _, err := os.Stat(c.path); errors.Is(err, os.ErrNotExist) {
		return c.path + " (missing, using built-in defaults)"
	}
	return c.path
}

func fieldErrors(err error) criterio.FieldErrors {
	if err == nil {
		return nil
	}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return criterio.FieldErrors{{Err: err}}
}
