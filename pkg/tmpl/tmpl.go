// Package tmpl renders content fixtures: Go templates that produce the text
// an overlay will measure, sized relative to the viewport.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Viewport is the data passed to fixture templates.
type Viewport struct {
	Width  int
	Height int
}

// block returns a w by h rectangle filled with fill.
func block(w, h int, fill string) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	line := strings.Repeat(fill, w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = line
	}
	return strings.Join(rows, "\n")
}

// lines repeats s on n rows.
func lines(n int, s string) string {
	if n <= 0 {
		return ""
	}
	rows := make([]string, n)
	for i := range rows {
		rows[i] = s
	}
	return strings.Join(rows, "\n")
}

// percent returns p percent of n, rounded down.
func percent(p, n int) int {
	return n * p / 100
}

var funcs = template.FuncMap{
	"block":   block,
	"lines":   lines,
	"repeat":  func(n int, s string) string { return strings.Repeat(s, max(0, n)) },
	"percent": percent,
	"sub":     func(a, b int) int { return a - b },
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - block W H FILL: a W by H rectangle of FILL
//   - lines N S: S repeated on N rows
//   - repeat N S: S repeated N times on one row
//   - percent P N: P percent of N
//   - sub A B: A minus B
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
