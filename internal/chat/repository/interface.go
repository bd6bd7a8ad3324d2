package repository

import (
	"context"

	"coder-chat/internal/chat"
)

// HistoryRepository is the session history store consumed by the chat core.
// Implementations keep turns in insertion order and never reorder them. A single
// writer per session id is assumed; callers serialize requests for one session.
type HistoryRepository interface {
	// Get returns a copy of the session's turns; an unknown session yields an empty history.
	Get(ctx context.Context, sessionID string) ([]chat.Turn, error)

	// Append adds turn to the end of the session's history, creating it on first contact.
	Append(ctx context.Context, sessionID string, turn chat.Turn) error

	// Clear resets the session's history to empty.
	Clear(ctx context.Context, sessionID string) error
}
