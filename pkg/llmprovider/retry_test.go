package llmprovider

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPolicy(maxRetries int) (*RetryPolicy, *recordingSleep) {
	rec := &recordingSleep{}
	p := NewRetryPolicy(RetryConfig{
		MaxRetries: maxRetries,
		BaseDelay:  time.Second,
		MaxDelay:   time.Minute,
	}, &mockLogger{}).WithSleep(rec.sleep)
	return p, rec
}

func TestRetryPolicy_RateLimitedThenSuccess(t *testing.T) {
	provider := &scriptedProvider{results: []scriptedResult{
		rateLimited(), rateLimited(), rateLimited(), ok("Done."),
	}}
	policy, rec := newTestPolicy(5)

	chunk, err := policy.Execute(context.Background(), func(ctx context.Context) (Chunk, error) {
		return provider.Generate(ctx, Request{Prompt: "p"})
	})

	require.NoError(t, err)
	assert.Equal(t, "Done.", chunk.Text)
	assert.Equal(t, 4, provider.callCount)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, rec.delays)
}

func TestRetryPolicy_ExhaustsAfterMaxRetries(t *testing.T) {
	for _, maxRetries := range []int{1, 2, 3, 6} {
		provider := &scriptedProvider{results: []scriptedResult{rateLimited()}}
		policy, rec := newTestPolicy(maxRetries)

		_, err := policy.Execute(context.Background(), func(ctx context.Context) (Chunk, error) {
			return provider.Generate(ctx, Request{Prompt: "p"})
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRetriesExhausted)
		assert.ErrorIs(t, err, ErrProviderRateLimited)
		assert.Equal(t, maxRetries, provider.callCount, "attempts must equal MaxRetries")
		assert.Len(t, rec.delays, maxRetries-1, "no wait after the final attempt")
		for i := 1; i < len(rec.delays); i++ {
			assert.GreaterOrEqual(t, rec.delays[i], rec.delays[i-1], "delays must be non-decreasing")
		}
	}
}

func TestRetryPolicy_TimeoutAndEndpointUseLinearBackoff(t *testing.T) {
	provider := &scriptedProvider{results: []scriptedResult{
		{err: &Error{Kind: KindTimeout, Err: ErrProviderTimeout}},
		{err: &Error{Kind: KindEndpoint, Status: 503, Err: errors.New("unavailable")}},
		ok("Fine."),
	}}
	policy, rec := newTestPolicy(5)

	chunk, err := policy.Execute(context.Background(), func(ctx context.Context) (Chunk, error) {
		return provider.Generate(ctx, Request{Prompt: "p"})
	})

	require.NoError(t, err)
	assert.Equal(t, "Fine.", chunk.Text)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, rec.delays)
}

func TestRetryPolicy_MalformedIsNotRetried(t *testing.T) {
	provider := &scriptedProvider{results: []scriptedResult{
		{err: &Error{Kind: KindMalformed, Err: ErrMalformedResponse}},
	}}
	policy, rec := newTestPolicy(5)

	_, err := policy.Execute(context.Background(), func(ctx context.Context) (Chunk, error) {
		return provider.Generate(ctx, Request{Prompt: "p"})
	})

	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.NotErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, 1, provider.callCount)
	assert.Empty(t, rec.delays)
}

func TestRetryPolicy_CancellationStopsBeforeNextAttempt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	policy := NewRetryPolicy(RetryConfig{MaxRetries: 5, BaseDelay: time.Second}, &mockLogger{}).
		WithSleep(func(ctx context.Context, d time.Duration) error {
			cancel()
			return ctx.Err()
		})

	_, err := policy.Execute(ctx, func(ctx context.Context) (Chunk, error) {
		calls++
		return Chunk{}, &Error{Kind: KindRateLimited, Status: 429, Err: ErrProviderRateLimited}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_DelayIsCapped(t *testing.T) {
	policy := NewRetryPolicy(RetryConfig{MaxRetries: 3, BaseDelay: time.Second, MaxDelay: 10 * time.Second}, &mockLogger{})

	assert.Equal(t, 8*time.Second, policy.Delay(KindRateLimited, 3))
	assert.Equal(t, 10*time.Second, policy.Delay(KindRateLimited, 4))
	assert.Equal(t, 10*time.Second, policy.Delay(KindRateLimited, 62))
	assert.Equal(t, 3*time.Second, policy.Delay(KindTimeout, 2))
	assert.Equal(t, 10*time.Second, policy.Delay(KindEndpoint, 20))
}

func TestRetryPolicy_DelayWithLargeBaseNeverExceedsCap(t *testing.T) {
	maxDelay := time.Duration(math.MaxInt64 / 2)
	policy := NewRetryPolicy(RetryConfig{MaxRetries: 64, BaseDelay: maxDelay / 3, MaxDelay: maxDelay}, &mockLogger{})

	for _, kind := range []Kind{KindRateLimited, KindTimeout, KindEndpoint} {
		prev := time.Duration(0)
		for attempt := 0; attempt < 70; attempt++ {
			d := policy.Delay(kind, attempt)
			require.Positive(t, d, "%s attempt %d", kind, attempt)
			require.LessOrEqual(t, d, maxDelay, "%s attempt %d", kind, attempt)
			require.GreaterOrEqual(t, d, prev, "%s attempt %d", kind, attempt)
			prev = d
		}
	}

	assert.Equal(t, maxDelay/3, policy.Delay(KindRateLimited, 0))
	assert.Equal(t, maxDelay/3*2, policy.Delay(KindRateLimited, 1))
	assert.Equal(t, maxDelay, policy.Delay(KindRateLimited, 2))
	assert.Equal(t, maxDelay, policy.Delay(KindTimeout, 3))
}

func TestSleepContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))
}
