// Package retry provides bounded exponential backoff for polling and
// transient-failure recovery.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Config holds backoff configuration.
type Config struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	Retryable    func(error) bool
}

// Option is a functional option for backoff configuration.
type Option func(*Config)

// Do executes op with exponential backoff. It stops on the first nil
// error, when the attempt budget is exhausted, when the context is
// cancelled, or when op returns an error that is not retryable.
func Do(ctx context.Context, op func() error, opts ...Option) error {
	cfg := &Config{
		MaxAttempts:  40,
		InitialDelay: 2 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   1.5,
		Retryable:    func(error) bool { return true },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	delay := cfg.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		lastErr = err

		if IsPermanent(err) || !cfg.Retryable(err) {
			return err
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("gave up after %d attempts: %w", attempt, ctx.Err())
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return fmt.Errorf("exhausted %d attempts: %w", cfg.MaxAttempts, lastErr)
}

// WithMaxAttempts sets the total attempt budget (first try included).
func WithMaxAttempts(n int) Option {
	return func(c *Config) { c.MaxAttempts = n }
}

// WithInitialDelay sets the delay before the second attempt.
func WithInitialDelay(d time.Duration) Option {
	return func(c *Config) { c.InitialDelay = d }
}

// WithMaxDelay caps the delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *Config) { c.MaxDelay = d }
}

// WithMultiplier sets the backoff growth factor.
func WithMultiplier(m float64) Option {
	return func(c *Config) { c.Multiplier = m }
}

// WithRetryable installs a classifier deciding whether an error is worth
// another attempt. Permanent errors short-circuit regardless.
func WithRetryable(f func(error) bool) Option {
	return func(c *Config) { c.Retryable = f }
}

// PermanentError marks an error that must not be retried.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }

func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err so Do stops immediately and returns it.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var pe *PermanentError
	return errors.As(err, &pe)
}
