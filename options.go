package gocube

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultDuration is how long one layer turn animates.
const DefaultDuration = 500 * time.Millisecond

// Option configures Engine behavior.
type Option func(*config)

type config struct {
	duration       time.Duration
	logger         *log.Logger
	bindings       Bindings
	instantInverse bool
	verify         bool
	onMove         func(Dispatch)
	onSettle       func(BlockID)
}

func defaultConfig() *config {
	return &config{
		duration:       DefaultDuration,
		logger:         log.New(io.Discard),
		bindings:       DefaultBindings(),
		instantInverse: true,
		verify:         true,
	}
}

// WithDuration sets how long each layer turn animates.
// A non-positive duration completes every animation on the next tick.
func WithDuration(d time.Duration) Option {
	return func(c *config) {
		c.duration = d
	}
}

// WithLogger sets the logger used for dispatch and settle events.
// The default logger discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBindings replaces the key bindings used by Frame.
func WithBindings(b Bindings) Option {
	return func(c *config) {
		c.bindings = b.Clone()
	}
}

// WithInstantInverse controls moves triggered with the inverse modifier.
// When enabled (default), they are applied at once without animation.
// When disabled, they animate like any other move.
func WithInstantInverse(enabled bool) Option {
	return func(c *config) {
		c.instantInverse = enabled
	}
}

// WithVerify enables or disables the consistency check after every
// dispatch. When enabled (default), a divergence between blocks and the
// aggregate state panics at the dispatch that caused it.
func WithVerify(enabled bool) Option {
	return func(c *config) {
		c.verify = enabled
	}
}

// WithMoveCallback sets a callback that fires after every dispatch,
// including rejected ones.
func WithMoveCallback(fn func(Dispatch)) Option {
	return func(c *config) {
		c.onMove = fn
	}
}

// WithSettleCallback sets a callback that fires when a block's animation
// completes.
func WithSettleCallback(fn func(BlockID)) Option {
	return func(c *config) {
		c.onSettle = fn
	}
}
