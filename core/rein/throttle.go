package rein

import (
	"context"
	"time"
)

// throttle spaces consecutive requests by at least interval, measured from
// the start of the previous request.
type throttle struct {
	interval time.Duration
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// wait blocks for max(0, interval - elapsed since start).
func (t throttle) wait(ctx context.Context, start time.Time) error {
	remaining := t.interval - t.now().Sub(start)
	if remaining <= 0 {
		return nil
	}
	return t.sleep(ctx, remaining)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
