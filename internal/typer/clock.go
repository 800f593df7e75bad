package typer

import (
	"context"
	"time"
)

// Clock blocks for the focus delay. Tests replace SystemClock to observe waits.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func(ctx context.Context, d time.Duration) error

func (f ClockFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// sleepContext waits d or until ctx is done. A zero delay still reports an
// already cancelled context so an interrupt never lets typing start.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SystemClock is the Clock used by Run.
var SystemClock Clock = ClockFunc(sleepContext)
