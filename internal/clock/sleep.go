// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ErrRetriesExhausted is returned by Backoff once the policy gives up.
var ErrRetriesExhausted = errors.New("retries exhausted")

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
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

// Backoff sleeps for the next interval of policy and returns it.
func Backoff(ctx context.Context, sleep Sleeper, policy backoff.BackOff) (time.Duration, error) {
	next := policy.NextBackOff()
	if next == backoff.Stop {
		return 0, ErrRetriesExhausted
	}
	if err := sleep(ctx, next); err != nil {
		return next, err
	}
	return next, nil
}

// NewExponential returns an exponential policy allowing maxRetries waits
// between initial and maxInterval. It never stops on elapsed time.
func NewExponential(initial, maxInterval time.Duration, maxRetries int) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initial
	b.MaxInterval = maxInterval
	b.MaxElapsedTime = 0
	b.Reset()
	if maxRetries < 0 {
		maxRetries = 0
	}
	return backoff.WithMaxRetries(b, uint64(maxRetries))
}

// NewPolling returns a policy doubling from initial up to maxInterval that
// never gives up.
func NewPolling(initial, maxInterval time.Duration) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initial
	b.MaxInterval = maxInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}
