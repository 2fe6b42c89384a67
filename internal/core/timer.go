package core

import "time"

// DefaultTickPeriod is the generation period used when none is configured.
const DefaultTickPeriod = 500 * time.Millisecond

// Repeating is an interval accumulator that fires once each time the
// accumulated frame time crosses its period.
type Repeating struct {
	period      time.Duration
	accumulator time.Duration
}

// NewRepeating constructs a timer with the given period.
func NewRepeating(period time.Duration) *Repeating {
	r := &Repeating{}
	r.SetPeriod(period)
	return r
}

// SetPeriod changes the period. Non-positive values fall back to
// DefaultTickPeriod.
func (r *Repeating) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = DefaultTickPeriod
	}
	r.period = period
}

// Period returns the current period.
func (r *Repeating) Period() time.Duration { return r.period }

// Elapsed returns the time accumulated towards the next firing.
func (r *Repeating) Elapsed() time.Duration { return r.accumulator }

// Tick adds delta to the accumulator and reports whether the timer fired.
// It fires at most once per call. Only the remainder past the last whole
// period is kept, so a long stall never queues extra firings.
func (r *Repeating) Tick(delta time.Duration) bool {
	if delta > 0 {
		r.accumulator += delta
	}
	if r.accumulator >= r.period {
		r.accumulator %= r.period
		return true
	}
	return false
}

// Reset discards any accumulated time.
func (r *Repeating) Reset() { r.accumulator = 0 }
