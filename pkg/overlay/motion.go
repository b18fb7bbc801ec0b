package overlay

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring configures the animation physics shared by an overlay's content
// and its backdrop.
type Spring struct {
	FPS       int     // frames per second of the tick loop
	Frequency float64 // angular frequency; higher settles faster
	Damping   float64 // damping ratio; 1 is critically damped, <1 overshoots
}

// DefaultSpring is a critically damped spring at 60 frames per second.
func DefaultSpring() Spring {
	return Spring{
		FPS:       60,
		Frequency: 8.0,
		Damping:   1.0,
	}
}

// Interval is the delay between animation frames.
func (s Spring) Interval() time.Duration {
	fps := s.FPS
	if fps <= 0 {
		fps = DefaultSpring().FPS
	}
	return time.Second / time.Duration(fps)
}

// settle thresholds, in the motion's own units.
const (
	settlePosition = 0.01
	settleVelocity = 0.01
)

// Motion animates a single value toward a target with a spring. Changing
// the target mid-flight keeps the current position and velocity, so rapid
// toggles bend the existing trajectory instead of queueing a new one.
type Motion struct {
	spring   harmonica.Spring
	pos      float64
	vel      float64
	target   float64
	settled  bool
	interval time.Duration
}

// NewMotion creates a motion at rest on value. A non-positive frequency or
// damping falls back to DefaultSpring, as Interval does for FPS.
func NewMotion(cfg Spring, value float64) *Motion {
	def := DefaultSpring()
	if cfg.Frequency <= 0 {
		cfg.Frequency = def.Frequency
	}
	if cfg.Damping <= 0 {
		cfg.Damping = def.Damping
	}

	interval := cfg.Interval()
	return &Motion{
		spring:   harmonica.NewSpring(interval.Seconds(), cfg.Frequency, cfg.Damping),
		pos:      value,
		target:   value,
		settled:  true,
		interval: interval,
	}
}

// Position returns the current value.
func (m *Motion) Position() float64 {
	return m.pos
}

// Target returns the value the motion is heading to.
func (m *Motion) Target() float64 {
	return m.target
}

// Settled reports whether the motion is at rest on its target.
func (m *Motion) Settled() bool {
	return m.settled
}

// Interval is the frame duration the spring was built for.
func (m *Motion) Interval() time.Duration {
	return m.interval
}

// Retarget points the motion at target. It reports whether the motion has
// to run; retargeting to the current resting value is a no-op.
func (m *Motion) Retarget(target float64) bool {
	if target == m.target && m.settled {
		return false
	}
	m.target = target
	m.settled = m.pos == target && m.vel == 0
	return !m.settled
}

// Jump places the motion at rest on value without animating.
func (m *Motion) Jump(value float64) {
	m.pos = value
	m.vel = 0
	m.target = value
	m.settled = true
}

// Step advances the motion by one frame and reports whether it settled.
func (m *Motion) Step() bool {
	if m.settled {
		return true
	}

	m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)

	if math.Abs(m.pos-m.target) < settlePosition && math.Abs(m.vel) < settleVelocity {
		m.pos = m.target
		m.vel = 0
		m.settled = true
	}

	return m.settled
}
