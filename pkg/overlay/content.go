package overlay

// Content is the caller's renderable content for an overlay slot. The
// engine renders it verbatim and only looks at its measured size. Most
// bubbles components already satisfy it.
type Content interface {
	View() string
}

// ContentFunc adapts a plain function to Content.
type ContentFunc func() string

// View implements Content.
func (f ContentFunc) View() string {
	return f()
}

// Static returns Content that always renders s.
func Static(s string) Content {
	return ContentFunc(func() string { return s })
}
