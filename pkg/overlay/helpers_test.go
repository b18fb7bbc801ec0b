package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// block returns content that is exactly w cells wide and h rows tall.
func block(w, h int) string {
	line := strings.Repeat("x", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func coreOf(t *testing.T, o Overlay) *core {
	t.Helper()
	switch v := o.(type) {
	case *EdgeOverlay:
		return v.core
	case *CenterOverlay:
		return v.core
	default:
		t.Fatalf("unexpected overlay type %T", o)
		return nil
	}
}

// settle feeds frames to o until its animation stops and returns the number
// of frames delivered.
func settle(t *testing.T, h *Host, o Overlay) int {
	t.Helper()
	c := coreOf(t, o)
	frames := 0
	for c.animating {
		_, consumed := h.Update(FrameMsg{ID: c.id, tag: c.tag})
		require.True(t, consumed)
		frames++
		require.Less(t, frames, 2000, "animation did not settle")
	}
	return frames
}

// step delivers n frames without requiring the animation to finish.
func step(t *testing.T, h *Host, o Overlay, n int) {
	t.Helper()
	c := coreOf(t, o)
	for range n {
		if !c.animating {
			return
		}
		h.Update(FrameMsg{ID: c.id, tag: c.tag})
	}
}
