package engine

import (
	"sync"
	"time"
)

// Ticker is a periodic time source
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker with the given period
type TickerFactory func(period time.Duration) Ticker

type realTicker struct {
	*time.Ticker
}

func (t realTicker) Chan() <-chan time.Time {
	return t.C
}

// NewRealTicker is the TickerFactory backed by time.Ticker
func NewRealTicker(period time.Duration) Ticker {
	return realTicker{time.NewTicker(period)}
}

// ScheduledTimer is a cancellation handle around a running ticker.
// A nil or cancelled timer yields a nil channel, which blocks forever in a select,
// so a stopped timer can never fire into the game loop.
type ScheduledTimer struct {
	ticker    Ticker
	period    time.Duration
	stopOnce  sync.Once
	cancelled bool
}

// Schedule starts a ticker through factory and returns its handle
func Schedule(factory TickerFactory, period time.Duration) *ScheduledTimer {
	return &ScheduledTimer{
		ticker: factory(period),
		period: period,
	}
}

// C returns the tick channel, nil once cancelled
func (t *ScheduledTimer) C() <-chan time.Time {
	if t == nil || t.cancelled {
		return nil
	}
	return t.ticker.Chan()
}

// Period returns the tick period
func (t *ScheduledTimer) Period() time.Duration {
	if t == nil {
		return 0
	}
	return t.period
}

// Active reports whether the timer is still running
func (t *ScheduledTimer) Active() bool {
	return t != nil && !t.cancelled
}

// Cancel stops the ticker; safe to call repeatedly and on nil
func (t *ScheduledTimer) Cancel() {
	if t == nil {
		return
	}
	t.stopOnce.Do(func() {
		t.cancelled = true
		t.ticker.Stop()
	})
}
