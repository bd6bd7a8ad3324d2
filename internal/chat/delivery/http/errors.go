package http

import (
	"errors"
	"net/http"

	"coder-chat/internal/chat"
)

var errInvalidBody = errors.New("invalid request body")

// mapError translates use-case errors into an HTTP status and a client-safe message.
func (h *handler) mapError(err error) (int, error) {
	switch {
	case errors.Is(err, chat.ErrEmptyInput):
		return http.StatusBadRequest, chat.ErrEmptyInput
	case errors.Is(err, chat.ErrMissingSession):
		return http.StatusBadRequest, chat.ErrMissingSession
	default:
		return http.StatusInternalServerError, err
	}
}
