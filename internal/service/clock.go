package service

import "time"

// Clock supplies the current instant to commands. Services never read the
// system clock directly, so tests can freeze time and duration assertions
// stay exact.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
