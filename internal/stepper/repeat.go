package stepper

import "time"

// Repeat timing defaults: the delay before the first repeat, the starting
// cadence, the fastest allowed cadence, and how long a hold takes to reach
// it.
const (
	DefaultInitialDelay  = 500 * time.Millisecond
	DefaultStartInterval = 250 * time.Millisecond
	DefaultMinInterval   = 40 * time.Millisecond
	DefaultRampDuration  = 3 * time.Second
)

// Schedule describes the cadence of a press-and-hold repeat. The interval
// between successive steps decreases monotonically with hold time, floored
// at MinInterval so the fastest repeat rate is bounded.
type Schedule struct {
	InitialDelay  time.Duration // delay between press-down and the first repeat
	StartInterval time.Duration // interval at the start of the hold
	MinInterval   time.Duration // interval floor
	RampDuration  time.Duration // hold time needed to reach the floor
}

// DefaultSchedule returns the stock acceleration curve.
func DefaultSchedule() Schedule {
	return Schedule{
		InitialDelay:  DefaultInitialDelay,
		StartInterval: DefaultStartInterval,
		MinInterval:   DefaultMinInterval,
		RampDuration:  DefaultRampDuration,
	}
}

// IntervalFor returns the repeat interval after the button has been held
// for elapsed. The cadence is recomputed from elapsed time on every timer
// firing, rather than fixed at press-down, which is what produces the
// acceleration curve.
func (s Schedule) IntervalFor(elapsed time.Duration) time.Duration {
	if elapsed <= 0 || s.RampDuration <= 0 {
		return s.StartInterval
	}
	if elapsed >= s.RampDuration {
		return s.MinInterval
	}
	span := float64(s.StartInterval - s.MinInterval)
	iv := time.Duration(float64(s.StartInterval) - span*float64(elapsed)/float64(s.RampDuration))
	if iv < s.MinInterval {
		iv = s.MinInterval
	}
	return iv
}
