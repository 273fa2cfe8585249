package scan

import (
	"context"
	"time"

	"github.com/buemura/zapcli/internal/zap"
)

// DefaultPollInterval is how often the readiness poller re-probes the
// daemon while waiting for it to start.
const DefaultPollInterval = 2 * time.Second

// WaitForReady blocks until the daemon answers a liveness probe. With a
// zero timeout a single probe is issued and a failure returns
// zap.ErrNotRunning immediately, no retry. With a positive timeout the
// probe is repeated every interval until it succeeds or the deadline
// passes, in which case a zap.TimeoutError is returned. Termination is
// bounded by the timeout plus one probe latency.
func WaitForReady(ctx context.Context, client zap.Client, timeout, interval time.Duration) error {
	if client.IsRunning(ctx) {
		return nil
	}
	if timeout <= 0 {
		return zap.ErrNotRunning
	}

	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return &zap.TimeoutError{After: timeout}
		}

		wait := interval
		if remaining < wait {
			wait = remaining
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		if client.IsRunning(ctx) {
			return nil
		}
	}
}
