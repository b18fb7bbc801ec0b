package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Smallest terminal that fits every demo menu: the side menus are 32
// cells wide and the calendar is 10 rows tall.
const (
	MinWidth  = 40
	MinHeight = 12
)

// TerminalCheck inspects the terminal drawer will draw into.
type TerminalCheck struct {
	isTerminal func() bool
	size       func() (int, int, error)
	getenv     func(string) string
}

// NewTerminalCheck creates a check against stdout and the process
// environment.
func NewTerminalCheck() *TerminalCheck {
	fd := int(os.Stdout.Fd())
	return &TerminalCheck{
		isTerminal: func() bool { return term.IsTerminal(fd) },
		size:       func() (int, int, error) { return term.GetSize(fd) },
		getenv:     os.Getenv,
	}
}

func (c *TerminalCheck) Name() string {
	return "Terminal"
}

func (c *TerminalCheck) Run(_ context.Context) Report {
	report := Report{Name: c.Name()}

	if !c.isTerminal() {
		report.add(StatusWarn, "Interactive", "stdout is not a terminal; only the headless commands will work")
	} else {
		report.add(StatusPass, "Interactive", "")
		report.Findings = append(report.Findings, c.sizeFinding())
	}

	report.Findings = append(report.Findings, c.colorFinding())
	return report
}

func (c *TerminalCheck) sizeFinding() Finding {
	w, h, err := c.size()
	if err != nil {
		return Finding{Label: "Size", Status: StatusWarn, Detail: err.Error()}
	}

	detail := fmt.Sprintf("%dx%d", w, h)
	if w < MinWidth || h < MinHeight {
		return Finding{
			Label:  "Size",
			Status: StatusWarn,
			Detail: fmt.Sprintf("%s is smaller than %dx%d; menus will be cut off", detail, MinWidth, MinHeight),
		}
	}
	return Finding{Label: "Size", Status: StatusPass, Detail: detail}
}

func (c *TerminalCheck) colorFinding() Finding {
	colorterm := strings.ToLower(c.getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return Finding{Label: "True color", Status: StatusPass}
	}

	return Finding{
		Label:  "True color",
		Status: StatusWarn,
		Detail: "COLORTERM is not truecolor; backdrop fades are approximated",
	}
}
