package service

import "time"

// Clock supplies the current time. The delivery timestamp and the return window
// depend on it, so it is injected rather than read from time.Now directly,
// keeping those rules testable.
type Clock interface {
	Now() time.Time
}
