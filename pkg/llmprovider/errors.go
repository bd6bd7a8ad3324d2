package llmprovider

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrRetriesExhausted indicates every allowed attempt failed. Terminal for the caller.
	ErrRetriesExhausted = errors.New("retries exhausted")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrMalformedResponse indicates the provider answered with an unexpected body shape
	ErrMalformedResponse = errors.New("malformed provider response")
)

// Kind classifies a failed generation call.
type Kind int

const (
	KindUnknown Kind = iota
	KindTimeout
	KindRateLimited
	KindEndpoint
	KindMalformed
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindRateLimited:
		return "rate_limited"
	case KindEndpoint:
		return "endpoint_error"
	case KindMalformed:
		return "malformed_response"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Retryable reports whether RetryPolicy may re-issue a call that failed with this kind.
func (k Kind) Retryable() bool {
	return k == KindTimeout || k == KindRateLimited || k == KindEndpoint
}

// Error is the classified failure of a single provider call.
type Error struct {
	Provider string
	Kind     Kind
	// Status is the HTTP status for KindRateLimited/KindEndpoint; zero for transport failures.
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("provider %s: %s (status %d): %v", e.Provider, e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets callers match a classified error against the package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrProviderTimeout:
		return e.Kind == KindTimeout
	case ErrProviderRateLimited:
		return e.Kind == KindRateLimited
	case ErrMalformedResponse:
		return e.Kind == KindMalformed
	}
	return false
}

// KindOf classifies err. Unclassified errors count as endpoint failures so they are
// retried within the bound rather than treated as fatal.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCanceled
	}
	return KindEndpoint
}
