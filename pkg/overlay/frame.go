package overlay

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances an overlay's animation by one frame. Messages carry the
// overlay ID and a tag; frames with a stale tag are dropped so an overlay
// never runs more than one tick loop.
type FrameMsg struct {
	ID  int
	tag int
}

// ContentClickMsg reports a mouse click that landed on an overlay's
// content. X and Y are relative to the content's top-left cell.
type ContentClickMsg struct {
	Edge Edge
	X    int
	Y    int
}

func frame(id, tag int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, tag: tag}
	})
}
