package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeOverlay_LeftSlidesIn(t *testing.T) {
	h := NewHost()
	flag := NewFlag(false)
	o := h.Register(EdgeLeft, flag, Static(block(300, 800))).(*EdgeOverlay)
	h.SetViewport(Size{Width: 400, Height: 900})

	assert.Nil(t, h.Sync(), "initial placement must not animate")
	assert.Equal(t, Offset{X: -700}, o.Offset())
	assert.Equal(t, 0.0, o.Backdrop().Opacity())
	assert.False(t, o.Visible())

	flag.Set(true)
	require.NotNil(t, h.Sync())
	assert.True(t, o.Animating())

	step(t, h, o, 3)
	mid := o.Offset().X
	assert.Greater(t, mid, -700)
	assert.Less(t, mid, 0)
	assert.Greater(t, o.Backdrop().Opacity(), 0.0)

	settle(t, h, o)
	assert.Equal(t, Offset{}, o.Offset())
	assert.Equal(t, 1.0, o.Backdrop().Opacity())
	assert.True(t, o.Visible())
}

func TestEdgeOverlay_RestingOffsets(t *testing.T) {
	viewport := Size{Width: 80, Height: 24}
	content := block(20, 6)

	for _, edge := range []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight} {
		t.Run(string(edge), func(t *testing.T) {
			h := NewHost()
			flag := NewFlag(false)
			o := h.Register(edge, flag, Static(content)).(*EdgeOverlay)
			h.SetViewport(viewport)
			h.Sync()

			assert.Equal(t, HiddenOffset(edge, Size{Width: 20, Height: 6}, viewport), o.Offset())
			assert.False(t, o.Visible())

			flag.Set(true)
			h.Sync()
			settle(t, h, o)
			assert.Equal(t, Offset{}, o.Offset())

			flag.Set(false)
			h.Sync()
			settle(t, h, o)
			assert.Equal(t, HiddenOffset(edge, Size{Width: 20, Height: 6}, viewport), o.Offset())
			assert.Equal(t, 0.0, o.Backdrop().Opacity())
			assert.False(t, o.Visible())
		})
	}
}

func TestEdgeOverlay_SetTrueTwiceDoesNotAnimate(t *testing.T) {
	h := NewHost()
	flag := NewFlag(false)
	o := h.Register(EdgeBottom, flag, Static(block(10, 4)))
	h.SetViewport(Size{Width: 40, Height: 20})
	h.Sync()

	flag.Set(true)
	h.Sync()
	settle(t, h, o)

	flag.Set(true)
	assert.Nil(t, h.Sync())
	assert.False(t, coreOf(t, o).animating)
}

func TestEdgeOverlay_UndampedSpringSettles(t *testing.T) {
	h := NewHost(WithSpring(Spring{FPS: 60, Frequency: 8, Damping: 0}))
	flag := NewFlag(false)
	o := h.Register(EdgeLeft, flag, Static(block(10, 4))).(*EdgeOverlay)
	h.SetViewport(Size{Width: 40, Height: 20})
	h.Sync()

	flag.Set(true)
	require.NotNil(t, h.Sync())
	settle(t, h, o)

	assert.Equal(t, Offset{}, o.Offset())
	assert.True(t, o.Presented())
	assert.Equal(t, 1.0, o.Backdrop().Opacity())
}

func TestEdgeOverlay_RapidToggleRetargets(t *testing.T) {
	h := NewHost()
	flag := NewFlag(false)
	o := h.Register(EdgeTop, flag, Static(block(10, 4))).(*EdgeOverlay)
	h.SetViewport(Size{Width: 40, Height: 20})
	h.Sync()

	flag.Set(true)
	require.NotNil(t, h.Sync())
	step(t, h, o, 4)

	flag.Set(false)
	assert.Nil(t, h.Sync(), "retarget must reuse the running frame loop")
	step(t, h, o, 2)

	flag.Set(true)
	assert.Nil(t, h.Sync())
	settle(t, h, o)

	assert.Equal(t, Offset{}, o.Offset())
	assert.True(t, o.Presented())
	assert.Equal(t, 1.0, o.Backdrop().Opacity())
}

func TestEdgeOverlay_WritesCollapseWithinUpdate(t *testing.T) {
	hidden := 0
	h := NewHost(WithOnHide(func(Edge) { hidden++ }))
	flag := NewFlag(false)
	o := h.Register(EdgeRight, flag, Static(block(10, 4)))
	h.SetViewport(Size{Width: 40, Height: 20})
	h.Sync()

	flag.Set(true)
	flag.Set(false)
	assert.Nil(t, h.Sync())
	assert.False(t, o.Presented())
	assert.Zero(t, hidden)
}

func TestEdgeOverlay_StaleFramesAreDropped(t *testing.T) {
	h := NewHost()
	flag := NewFlag(false)
	o := h.Register(EdgeLeft, flag, Static(block(10, 4))).(*EdgeOverlay)
	h.SetViewport(Size{Width: 40, Height: 20})
	h.Sync()

	flag.Set(true)
	h.Sync()
	c := coreOf(t, o)
	stale := FrameMsg{ID: c.id, tag: c.tag}
	h.Update(stale)
	before := o.Offset()

	cmd, consumed := h.Update(stale)
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.Equal(t, before, o.Offset())
}

func TestEdgeOverlay_MeasurementArrivesLate(t *testing.T) {
	content := ""
	h := NewHost()
	flag := NewFlag(false)
	o := h.Register(EdgeLeft, flag, ContentFunc(func() string { return content })).(*EdgeOverlay)
	h.SetViewport(Size{Width: 40, Height: 20})
	h.Sync()

	assert.Equal(t, Offset{X: -40}, o.Offset())

	content = block(12, 3)
	assert.Nil(t, h.Sync(), "parked overlays snap instead of animating")
	assert.Equal(t, Offset{X: -52}, o.Offset())
	assert.Equal(t, Size{Width: 12, Height: 3}, o.Measured())
}

func TestEdgeOverlay_OnHideRunsOncePerClose(t *testing.T) {
	var edges []Edge
	h := NewHost()
	flag := NewFlag(true)
	o := h.Register(EdgeBottom, flag, Static(block(10, 4)), WithOnHide(func(e Edge) { edges = append(edges, e) }))
	h.SetViewport(Size{Width: 40, Height: 20})
	h.Sync()
	assert.Empty(t, edges, "initial state is not a transition")

	flag.Set(false)
	h.Sync()
	settle(t, h, o)
	h.Sync()

	assert.Equal(t, []Edge{EdgeBottom}, edges)
}

func TestEdgeOverlays_AreIndependent(t *testing.T) {
	h := NewHost()
	a, b := NewFlag(false), NewFlag(false)
	top := h.Register(EdgeTop, a, Static(block(30, 5))).(*EdgeOverlay)
	bottom := h.Register(EdgeBottom, b, Static(block(30, 5))).(*EdgeOverlay)
	h.SetViewport(Size{Width: 80, Height: 24})
	h.Sync()

	before := bottom.Offset()

	a.Set(true)
	h.Sync()
	settle(t, h, top)

	assert.Equal(t, Offset{}, top.Offset())
	assert.Equal(t, before, bottom.Offset())
	assert.False(t, bottom.Visible())
	assert.Equal(t, 0.0, bottom.Backdrop().Opacity())
	assert.False(t, coreOf(t, bottom).animating)
}
