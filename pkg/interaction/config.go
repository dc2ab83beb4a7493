package interaction

import (
	"errors"
	"fmt"
	"time"
)

// Defaults for the interaction tunables.
const (
	DefaultTapMaxDuration  = 300 * time.Millisecond
	DefaultDoubleWindow    = 350 * time.Millisecond
	DefaultTapSlop         = 5.0
	DefaultZoomSensitivity = 1.01
	DefaultFilterDepth     = 1
)

// ErrInvalidConfig is wrapped by [Config.Validate] for every rejected field.
var ErrInvalidConfig = errors.New("invalid interaction config")

// Config holds the gesture and zoom tunables.
type Config struct {
	// TapMaxDuration is the longest press that still counts as a tap.
	TapMaxDuration time.Duration

	// DoubleWindow bounds the gap between the end of one tap and the
	// start of the next for a double-activation.
	DoubleWindow time.Duration

	// TapSlop is the screen-space displacement (pixels) above which a
	// press is a drag, never a tap. Duration alone misclassifies slow
	// drags, so both gates apply.
	TapSlop float64

	// ZoomSensitivity is the multiplicative scale change per wheel tick.
	// Must be > 1; wheel deltas raise it to positive or negative powers.
	ZoomSensitivity float64

	// FilterDepth is the BFS hop limit used when a double-activation on
	// a node focuses the filter.
	FilterDepth int
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		TapMaxDuration:  DefaultTapMaxDuration,
		DoubleWindow:    DefaultDoubleWindow,
		TapSlop:         DefaultTapSlop,
		ZoomSensitivity: DefaultZoomSensitivity,
		FilterDepth:     DefaultFilterDepth,
	}
}

// Validate rejects out-of-range tunables.
func (c Config) Validate() error {
	if c.TapMaxDuration <= 0 {
		return fmt.Errorf("%w: tap max duration %v must be positive", ErrInvalidConfig, c.TapMaxDuration)
	}
	if c.DoubleWindow <= 0 {
		return fmt.Errorf("%w: double window %v must be positive", ErrInvalidConfig, c.DoubleWindow)
	}
	if c.TapSlop < 0 {
		return fmt.Errorf("%w: tap slop %v is negative", ErrInvalidConfig, c.TapSlop)
	}
	if c.ZoomSensitivity <= 1 {
		return fmt.Errorf("%w: zoom sensitivity %v must be > 1", ErrInvalidConfig, c.ZoomSensitivity)
	}
	if c.FilterDepth < 0 {
		return fmt.Errorf("%w: filter depth %d is negative", ErrInvalidConfig, c.FilterDepth)
	}
	return nil
}
