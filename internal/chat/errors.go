package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyInput     = errors.New("prompt cannot be empty")
	ErrMissingSession = errors.New("session id is required")
	ErrInvalidRole    = errors.New("invalid turn role")
)
