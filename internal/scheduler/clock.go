package scheduler

import "time"

// Clock is the source of "now" so lifecycle logic can be tested without
// wall-clock waits.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func SystemClock() Clock {
	return systemClock{}
}
