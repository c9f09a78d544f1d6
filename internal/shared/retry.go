package shared

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

// RetryOpts configures exponential backoff for [WithRetry].
type RetryOpts struct {
	MaxRetries   int           // Additional attempts after the first (default 3)
	InitialDelay time.Duration // Delay before the first retry (default 500ms)
	MaxDelay     time.Duration // Upper bound for the backoff delay (default 5s)
	Factor       float64       // Multiplier applied to the delay after each retry (default 2)
}

// DefaultRetryOpts returns the standard backoff settings used for provider calls.
func DefaultRetryOpts() RetryOpts {
	return RetryOpts{
		MaxRetries:   3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Factor:       2,
	}
}

// RetryOptsFromConfig converts a [RetryConfig] into [RetryOpts], filling in defaults for zero values.
func RetryOptsFromConfig(c RetryConfig) RetryOpts {
	opts := DefaultRetryOpts()
	if c.MaxRetries > 0 {
		opts.MaxRetries = c.MaxRetries
	}
	if c.InitialDelayMS > 0 {
		opts.InitialDelay = time.Duration(c.InitialDelayMS) * time.Millisecond
	}
	if c.MaxDelayMS > 0 {
		opts.MaxDelay = time.Duration(c.MaxDelayMS) * time.Millisecond
	}
	if c.Factor > 0 {
		opts.Factor = c.Factor
	}
	return opts
}

func (o RetryOpts) normalize() RetryOpts {
	d := DefaultRetryOpts()
	if o.MaxRetries <= 0 {
		o.MaxRetries = d.MaxRetries
	}
	if o.InitialDelay <= 0 {
		o.InitialDelay = d.InitialDelay
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = d.MaxDelay
	}
	if o.Factor <= 0 {
		o.Factor = d.Factor
	}
	return o
}

// WithRetry executes fn with bounded exponential backoff, making at most
// opts.MaxRetries+1 attempts.
//
// Each failed attempt except the last logs a warning and sleeps before the
// next try, doubling (opts.Factor) the delay up to opts.MaxDelay. The final
// error is returned unmodified. [ErrRateLimited] is a policy rejection rather
// than a transient fault and is returned immediately.
func WithRetry[T any](ctx context.Context, logger *log.Logger, fn func() (T, error), opts RetryOpts) (T, error) {
	opts = opts.normalize()
	delay := opts.InitialDelay

	var zero T
	var lastErr error

	for attempt := 0; attempt <= opts.MaxRetries; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err
		if errors.Is(err, ErrRateLimited) {
			return zero, err
		}
		if attempt == opts.MaxRetries {
			break
		}

		if logger != nil {
			logger.Warn("retrying provider call",
				"attempt", attempt+1,
				"max_retries", opts.MaxRetries,
				"delay", delay,
				"error", err)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * opts.Factor)
		if delay > opts.MaxDelay {
			delay = opts.MaxDelay
		}
	}

	return zero, lastErr
}
