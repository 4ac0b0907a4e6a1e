package quiz

import "time"

// Clock reports the current time. Sessions accrue elapsed time from wall
// clock deltas, so a fake clock makes every timing path testable.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
