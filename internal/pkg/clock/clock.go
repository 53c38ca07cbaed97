package clock

import "time"

// Clocker is an injectable time source. Code that compares against
// "now" takes a Clocker so tests can pin it.
type Clocker interface {
	Now() time.Time
}

// TimeClocker reads the system clock.
type TimeClocker struct{}

func New() *TimeClocker {
	return &TimeClocker{}
}

func (*TimeClocker) Now() time.Time {
	return time.Now()
}
