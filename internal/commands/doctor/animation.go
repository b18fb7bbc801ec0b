package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/hay-kot/drawer/pkg/overlay"
)

// Limits for a spring that still feels responsive.
const (
	MaxSettle    = 2 * time.Second
	MaxOvershoot = 0.05
)

// maxSimulated bounds the simulation for springs that never settle.
const maxSimulated = 10 * time.Second

// AnimationCheck simulates the configured spring over one open transition.
type AnimationCheck struct {
	spring overlay.Spring
}

// NewAnimationCheck creates a check for spring.
func NewAnimationCheck(spring overlay.Spring) *AnimationCheck {
	return &AnimationCheck{spring: spring}
}

func (c *AnimationCheck) Name() string {
	return "Animation"
}

func (c *AnimationCheck) Run(_ context.Context) Report {
	report := Report{Name: c.Name()}

	frames, peak, settled := simulate(c.spring)
	elapsed := time.Duration(frames) * c.spring.Interval()

	switch {
	case !settled:
		report.add(StatusFail, "Settle time", fmt.Sprintf("still moving after %s", maxSimulated))
	case elapsed > MaxSettle:
		report.add(StatusWarn, "Settle time", fmt.Sprintf("%d frames (%s), menus will feel slow", frames, elapsed))
	default:
		report.add(StatusPass, "Settle time", fmt.Sprintf("%d frames (%s)", frames, elapsed))
	}

	overshoot := peak - 1
	if overshoot > MaxOvershoot {
		report.add(StatusWarn, "Overshoot", fmt.Sprintf("%.0f%% past the target", overshoot*100))
	} else {
		report.add(StatusPass, "Overshoot", fmt.Sprintf("%.1f%%", max(0, overshoot)*100))
	}

	return report
}

// simulate runs a motion from 0 to 1 and returns the frames it took, the
// largest position it reached and whether it settled.
func simulate(spring overlay.Spring) (frames int, peak float64, settled bool) {
	m := overlay.NewMotion(spring, 0)
	m.Retarget(1)

	limit := int(maxSimulated / spring.Interval())
	for frames < limit {
		frames++
		settled = m.Step()
		peak = max(peak, m.Position())
		if settled {
			break
		}
	}
	return frames, peak, settled
}
