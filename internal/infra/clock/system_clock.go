// Package clock provides the wall-clock implementation of the Clock service.
package clock

import (
	"time"

	"weavewhisper/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock is the constructor for systemClock.
func NewSystemClock() service.Clock {
	return systemClock{}
}

// Now returns the current wall-clock time in UTC.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
