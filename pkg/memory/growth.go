package memory

import (
	"errors"
	"fmt"
	"math"
)

// ErrCapacityExceeded is returned when a write would require growth beyond
// the buffer's maximum size, or when the active policy cannot produce any
// further growth.
var ErrCapacityExceeded = errors.New("memory: capacity exceeded")

// ErrGrowthNotAllowed is returned by FixedPolicy. It wraps
// ErrCapacityExceeded so callers can match either error.
var ErrGrowthNotAllowed = fmt.Errorf("memory: growth not allowed: %w", ErrCapacityExceeded)

var (
	_ GrowthPolicy = FixedPolicy{}
	_ GrowthPolicy = ExponentialPolicy{}
	_ GrowthPolicy = LinearPolicy{}
	_ GrowthPolicy = PercentagePolicy{}
)

// GrowthPolicy decides how a Memory buffer resizes when a write does not
// fit in the current allocation. Implementations must be deterministic and
// side-effect free; a policy value may be shared by any number of buffers.
type GrowthPolicy interface {
	// GrowToSize returns the new capacity for a buffer that currently
	// holds current bytes and must hold at least needed bytes. The result
	// is always in [needed, max]. Requests where needed exceeds max are an
	// error, as is a policy that permits no growth at all.
	GrowToSize(needed, current, max int) (int, error)
}

// FixedPolicy permits no growth. Writes beyond the initial allocation fail
// with ErrGrowthNotAllowed, making the buffer strictly bounded.
type FixedPolicy struct{}

// GrowToSize always fails: a fixed buffer never reallocates.
func (FixedPolicy) GrowToSize(needed, current, max int) (int, error) {
	return 0, ErrGrowthNotAllowed
}

// ExponentialPolicy doubles the current capacity on each growth, clamped to
// the buffer's maximum size.
type ExponentialPolicy struct{}

// GrowToSize returns min(max(current*2, needed), max).
func (ExponentialPolicy) GrowToSize(needed, current, max int) (int, error) {
	if needed > max {
		return 0, fmt.Errorf("memory: needed size %d exceeds max size %d: %w", needed, max, ErrCapacityExceeded)
	}
	doubled := max
	if current <= max/2 {
		doubled = current * 2
	}
	return clampGrowth(doubled, needed, max), nil
}

// LinearPolicy grows the current capacity by half on each growth, clamped
// to the buffer's maximum size.
type LinearPolicy struct{}

// GrowToSize returns min(max(current+current/2, needed), max).
func (LinearPolicy) GrowToSize(needed, current, max int) (int, error) {
	if needed > max {
		return 0, fmt.Errorf("memory: needed size %d exceeds max size %d: %w", needed, max, ErrCapacityExceeded)
	}
	grown := max
	if current <= math.MaxInt-current/2 {
		grown = current + current/2
	}
	return clampGrowth(grown, needed, max), nil
}

// DefaultGrowthPercent is the growth rate used by NewPercentagePolicy when
// no explicit rate is given.
const DefaultGrowthPercent = 10

// PercentagePolicy grows the current capacity by a fixed percentage on each
// growth, clamped to the buffer's maximum size. The rate is set at
// construction and immutable thereafter.
type PercentagePolicy struct {
	// Percent is the growth rate, e.g. 10 grows a 100-byte buffer to 110.
	Percent float64
}

// NewPercentagePolicy creates a PercentagePolicy with the given growth
// rate. A rate of zero or less falls back to DefaultGrowthPercent.
func NewPercentagePolicy(percent float64) PercentagePolicy {
	if percent <= 0 {
		percent = DefaultGrowthPercent
	}
	return PercentagePolicy{Percent: percent}
}

// GrowToSize returns min(max(current*(1+percent/100), needed), max).
func (p PercentagePolicy) GrowToSize(needed, current, max int) (int, error) {
	if needed > max {
		return 0, fmt.Errorf("memory: needed size %d exceeds max size %d: %w", needed, max, ErrCapacityExceeded)
	}
	grown := max
	if scaled := float64(current) * (1 + p.Percent/100); scaled < float64(max) {
		grown = int(scaled)
	}
	return clampGrowth(grown, needed, max), nil
}

// clampGrowth bounds a computed capacity below by needed and above by max.
func clampGrowth(v, needed, max int) int {
	if v < needed {
		v = needed
	}
	if v > max {
		v = max
	}
	return v
}
