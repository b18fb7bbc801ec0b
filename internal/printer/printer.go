// Package printer writes command output for drawer. Output goes through
// lipgloss, so colors are downsampled to what the destination supports and
// dropped entirely when it is not a terminal.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/hay-kot/criterio"
)

// Symbols
const (
	Check = "✔"
	Cross = "✘"
	Dot   = "•"
	Arrow = "→"
)

// Level selects the symbol and color of a status line.
type Level int

const (
	LevelInfo Level = iota
	LevelOK
	LevelWarn
	LevelFail
)

// Tokyo Night
var (
	red    = lipgloss.Color("#f7768e")
	green  = lipgloss.Color("#9ece6a")
	yellow = lipgloss.Color("#e0af68")
	gray   = lipgloss.Color("#565f89")

	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Foreground(gray)
	headerStyle  = lipgloss.NewStyle().Bold(true).PaddingRight(2)
	cellStyle    = lipgloss.NewStyle().PaddingRight(2)
	boxStyle     = lipgloss.NewStyle().Foreground(red)
)

func (l Level) style() lipgloss.Style {
	switch l {
	case LevelOK:
		return lipgloss.NewStyle().Foreground(green)
	case LevelWarn:
		return lipgloss.NewStyle().Foreground(yellow)
	case LevelFail:
		return lipgloss.NewStyle().Foreground(red)
	default:
		return labelStyle
	}
}

func (l Level) symbol() string {
	switch l {
	case LevelOK:
		return Check
	case LevelFail:
		return Cross
	default:
		return Dot
	}
}

type ctxKey struct{}

// Printer writes styled lines to a writer.
type Printer struct {
	w io.Writer
}

// New creates a Printer that writes to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a context carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(s string) {
	_, _ = lipgloss.Fprintln(p.w, s)
}

// Printf prints an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// Status prints a message prefixed with the symbol for level, both in the
// level's color.
func (p *Printer) Status(level Level, format string, args ...any) {
	p.line(level.style().Render(level.symbol() + " " + fmt.Sprintf(format, args...)))
}

func (p *Printer) Errorf(format string, args ...any)   { p.Status(LevelFail, format, args...) }
func (p *Printer) Successf(format string, args ...any) { p.Status(LevelOK, format, args...) }
func (p *Printer) Infof(format string, args ...any)    { p.Status(LevelInfo, format, args...) }
func (p *Printer) Warnf(format string, args ...any)    { p.Status(LevelWarn, format, args...) }

// Section prints a bold, underlined heading.
func (p *Printer) Section(title string) {
	p.line(sectionStyle.Render(title))
}

// Item prints an indented check line. Only the symbol is colored.
func (p *Printer) Item(level Level, label, detail string) {
	s := "  " + level.style().Render(level.symbol()) + " " + label
	if detail != "" {
		s += ": " + detail
	}
	p.line(s)
}

// KeyValue prints an indented "label: value" line with a gray label.
func (p *Printer) KeyValue(label string, value any) {
	p.line("  " + labelStyle.Render(label+":") + " " + fmt.Sprint(value))
}

// Cell returns a table cell with a colored symbol followed by msg.
func Cell(level Level, msg string) string {
	return level.style().Render(level.symbol()) + " " + msg
}

// Table prints rows under a bold header with columns aligned.
func (p *Printer) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	p.line(t.Render())
}

// FatalError prints err in a box. Field errors from configuration
// validation are listed one per line under the message that wrapped them.
// It does not exit.
func (p *Printer) FatalError(err error) {
	if err == nil {
		return
	}

	title := "Error"
	var body []string

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		title = "Validation Error"
		if prefix := wrapPrefix(err, fieldErrs); prefix != "" {
			body = append(body, labelStyle.Render(prefix), "")
		}
		for _, fe := range fieldErrs {
			s := boxStyle.Render(Cross) + " "
			if fe.Field != "" {
				s += labelStyle.Render(fe.Field + ": ")
			}
			body = append(body, s+fe.Err.Error())
		}
	} else {
		body = append(body, labelStyle.Render(err.Error()))
	}

	p.line(boxStyle.Render("╭ " + title))
	for _, s := range body {
		p.line(strings.TrimRight(boxStyle.Render("│")+" "+s, " "))
	}
	p.line(boxStyle.Render("╵"))
}

// wrapPrefix returns the text err adds in front of fieldErrs, such as
// "load config".
func wrapPrefix(err error, fieldErrs criterio.FieldErrors) string {
	full, inner := err.Error(), fieldErrs.Error()
	if idx := strings.Index(full, inner); idx > 0 {
		return strings.TrimSuffix(full[:idx], ": ")
	}
	return ""
}
