package huggingface

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when a call exceeds the configured per-call timeout.
	ErrTimeout = errors.New("huggingface: request timed out")

	// ErrMalformedResponse is returned when the body is not an array of objects carrying generated_text.
	ErrMalformedResponse = errors.New("huggingface: malformed response")
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("huggingface: API error %d: %s", e.StatusCode, e.Body)
}
