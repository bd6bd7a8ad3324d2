package memory

import (
	"context"
	"fmt"

	"coder-chat/internal/chat"
	"coder-chat/internal/chat/repository"
)

// Get returns a copy of the session's turns.
func (r *implRepository) Get(ctx context.Context, sessionID string) ([]chat.Turn, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToGet, chat.ErrMissingSession)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	turns, ok := r.sessions.Get(sessionID)
	if !ok {
		return []chat.Turn{}, nil
	}

	out := make([]chat.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

// Append adds turn to the end of the session's history.
func (r *implRepository) Append(ctx context.Context, sessionID string, turn chat.Turn) error {
	if sessionID == "" {
		return fmt.Errorf("%w: %w", repository.ErrFailedToAppend, chat.ErrMissingSession)
	}
	if !turn.Role.Valid() {
		return fmt.Errorf("%w: %w %q", repository.ErrFailedToAppend, chat.ErrInvalidRole, turn.Role)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	turns, _ := r.sessions.Get(sessionID)
	next := make([]chat.Turn, len(turns), len(turns)+1)
	copy(next, turns)
	next = append(next, turn)

	if evicted := r.sessions.Add(sessionID, next); evicted {
		r.l.Debugf(ctx, "internal.chat.repository.memory.Append: evicted least recently used session")
	}
	return nil
}

// Clear resets the session's history to empty.
func (r *implRepository) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: %w", repository.ErrFailedToClear, chat.ErrMissingSession)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions.Remove(sessionID)
	return nil
}

// Len returns the number of live sessions.
func (r *implRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.Len()
}
