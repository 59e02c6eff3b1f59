package impl

import (
	"io"
	"log/slog"
	"time"

	"weavewhisper/config"
	"weavewhisper/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(returnWindowDays int) *config.Config {
	return &config.Config{
		Marketplace: &config.MarketplaceConfig{
			ReturnWindowDays: returnWindowDays,
		},
	}
}

// fixedClock pins Now to a single instant so delivery stamps and return-window
// checks are deterministic.
type fixedClock struct {
	now time.Time
}

func newFixedClock(now time.Time) service.Clock {
	return &fixedClock{now: now}
}

func (c *fixedClock) Now() time.Time {
	return c.now
}
