package overlay

import (
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"
)

// DefaultMinScale is the scale a center overlay shrinks to when hidden.
const DefaultMinScale = 0.5

// DismissPolicy states which interactions close an overlay. It is chosen
// per registration rather than inferred from the content.
type DismissPolicy struct {
	// OnBackdrop closes the overlay when its backdrop is clicked.
	OnBackdrop bool
	// OnAction closes the overlay when its content calls Action.
	OnAction bool
}

// DefaultDismissPolicy closes on backdrop clicks only.
func DefaultDismissPolicy() DismissPolicy {
	return DismissPolicy{OnBackdrop: true}
}

type options struct {
	spring   Spring
	backdrop BackdropStyle
	dismiss  DismissPolicy
	align    *lipgloss.Position
	minScale float64
	onHide   []func(Edge)
	logger   zerolog.Logger
}

func defaultOptions() options {
	return options{
		spring:   DefaultSpring(),
		backdrop: DefaultBackdropStyle(),
		dismiss:  DefaultDismissPolicy(),
		minScale: DefaultMinScale,
		logger:   zerolog.Nop(),
	}
}

func buildOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a Host or a single registration. Options passed to
// NewHost apply to every registration; options passed to Register win.
type Option func(*options)

// WithSpring sets the animation physics.
func WithSpring(s Spring) Option {
	return func(o *options) {
		o.spring = s
	}
}

// WithBackdropStyle sets how the dimming layer is painted.
func WithBackdropStyle(s BackdropStyle) Option {
	return func(o *options) {
		o.backdrop = s
	}
}

// WithDismissPolicy sets which interactions close the overlay.
func WithDismissPolicy(p DismissPolicy) Option {
	return func(o *options) {
		o.dismiss = p
	}
}

// WithAlign sets the cross-axis alignment of an edge overlay. It has no
// effect on center overlays.
func WithAlign(p lipgloss.Position) Option {
	return func(o *options) {
		o.align = &p
	}
}

// WithMinScale sets the scale a center overlay shrinks to when hidden.
// Values outside (0, 1] fall back to DefaultMinScale.
func WithMinScale(scale float64) Option {
	return func(o *options) {
		if scale <= 0 || scale > 1 {
			scale = DefaultMinScale
		}
		o.minScale = scale
	}
}

// WithOnHide registers a hook that runs when a flag transition to false is
// observed, e.g. to blur a focused text input. Hooks accumulate.
func WithOnHide(fn func(Edge)) Option {
	return func(o *options) {
		o.onHide = append(o.onHide, fn)
	}
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
