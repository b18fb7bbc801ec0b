package overlay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMotion_SettlesOnTarget(t *testing.T) {
	m := NewMotion(DefaultSpring(), -40)
	require.True(t, m.Settled())

	require.True(t, m.Retarget(0))
	for i := 0; !m.Step(); i++ {
		require.Less(t, i, 1000)
	}

	assert.Equal(t, 0.0, m.Position())
	assert.True(t, m.Settled())
}

func TestMotion_NonPositiveSpringSettles(t *testing.T) {
	tests := []struct {
		name   string
		spring Spring
	}{
		{name: "zero damping", spring: Spring{FPS: 60, Frequency: 8, Damping: 0}},
		{name: "negative damping", spring: Spring{FPS: 60, Frequency: 8, Damping: -1}},
		{name: "zero frequency", spring: Spring{FPS: 60, Frequency: 0, Damping: 1}},
		{name: "zero value", spring: Spring{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMotion(tt.spring, -40)
			m.Retarget(0)
			for i := 0; !m.Step(); i++ {
				require.Less(t, i, 1000, "motion did not settle")
			}
			assert.Equal(t, 0.0, m.Position())
		})
	}
}

func TestMotion_RetargetKeepsTrajectory(t *testing.T) {
	m := NewMotion(DefaultSpring(), 0)
	m.Retarget(100)
	for range 5 {
		m.Step()
	}
	pos := m.Position()
	require.Greater(t, pos, 0.0)
	require.Less(t, pos, 100.0)

	m.Retarget(0)
	assert.Equal(t, pos, m.Position(), "retarget must not jump")
	assert.False(t, m.Settled())
}

func TestMotion_RetargetToRestingValueIsNoop(t *testing.T) {
	m := NewMotion(DefaultSpring(), 10)
	assert.False(t, m.Retarget(10))
	assert.True(t, m.Settled())
}

func TestMotion_Jump(t *testing.T) {
	m := NewMotion(DefaultSpring(), 0)
	m.Retarget(50)
	m.Step()
	m.Jump(-3)

	assert.Equal(t, -3.0, m.Position())
	assert.Equal(t, -3.0, m.Target())
	assert.True(t, m.Settled())
}

func TestSpring_Interval(t *testing.T) {
	assert.Equal(t, time.Second/60, DefaultSpring().Interval())
	assert.Equal(t, time.Second/30, Spring{FPS: 30}.Interval())
	assert.Equal(t, time.Second/60, Spring{}.Interval())
}
