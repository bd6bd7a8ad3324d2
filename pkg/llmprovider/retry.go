package llmprovider

import (
	"context"
	"fmt"
	"time"

	"coder-chat/pkg/log"
)

// AttemptFunc performs one generation attempt.
type AttemptFunc func(ctx context.Context) (Chunk, error)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// RetryConfig configures a RetryPolicy.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// RetryPolicy decides whether and how long to wait before re-issuing a failed call.
// Rate-limited calls back off exponentially (2^attempt units); timeouts and other
// endpoint errors back off linearly. MaxRetries bounds the total number of attempts.
type RetryPolicy struct {
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	sleep      SleepFunc
	l          log.Logger
}

// NewRetryPolicy creates a RetryPolicy, filling zero values with defaults.
func NewRetryPolicy(cfg RetryConfig, l log.Logger) *RetryPolicy {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.MaxDelay <= 0 || cfg.MaxDelay < cfg.BaseDelay {
		cfg.MaxDelay = DefaultMaxDelay
	}
	return &RetryPolicy{
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
		maxDelay:   cfg.MaxDelay,
		sleep:      sleepContext,
		l:          l,
	}
}

// WithSleep returns a copy of p that waits through sleep instead of a real timer.
func (p *RetryPolicy) WithSleep(sleep SleepFunc) *RetryPolicy {
	cp := *p
	cp.sleep = sleep
	return &cp
}

// MaxRetries returns the attempt bound.
func (p *RetryPolicy) MaxRetries() int {
	return p.maxRetries
}

// Execute runs fn until it succeeds, fails with a non-retryable error, or MaxRetries
// attempts have failed, in which case the returned error wraps ErrRetriesExhausted
// and the last failure.
func (p *RetryPolicy) Execute(ctx context.Context, fn AttemptFunc) (Chunk, error) {
	var lastErr error

	for attempt := 0; attempt < p.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return Chunk{}, err
		}

		chunk, err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				p.l.Infof(ctx, "%s: succeeded on attempt %d/%d", LogPrefixRetry, attempt+1, p.maxRetries)
			}
			return chunk, nil
		}

		kind := KindOf(err)
		if kind == KindCanceled || ctx.Err() != nil {
			return Chunk{}, err
		}
		if !kind.Retryable() {
			p.l.Warnf(ctx, "%s: attempt %d/%d failed with non-retryable %s: %v", LogPrefixRetry, attempt+1, p.maxRetries, kind, err)
			return Chunk{}, err
		}

		lastErr = err
		if attempt == p.maxRetries-1 {
			break
		}

		delay := p.Delay(kind, attempt)
		p.l.Warnf(ctx, "%s: attempt %d/%d failed with %s, retrying in %s: %v", LogPrefixRetry, attempt+1, p.maxRetries, kind, delay, err)

		if err := p.sleep(ctx, delay); err != nil {
			return Chunk{}, err
		}
	}

	p.l.Errorf(ctx, "%s: giving up after %d attempts: %v", LogPrefixRetry, p.maxRetries, lastErr)
	return Chunk{}, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, p.maxRetries, lastErr)
}

// Delay returns the wait before the retry that follows a failed attempt (0-based).
func (p *RetryPolicy) Delay(kind Kind, attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	// Compare against maxDelay before multiplying so large bases cannot overflow.
	if kind == KindRateLimited {
		if p.baseDelay > p.maxDelay>>attempt {
			return p.maxDelay
		}
		return p.baseDelay << attempt
	}
	if p.baseDelay > p.maxDelay/time.Duration(attempt+1) {
		return p.maxDelay
	}
	return p.baseDelay * time.Duration(attempt+1)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
