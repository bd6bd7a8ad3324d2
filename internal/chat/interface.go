package chat

import (
	"context"

	"coder-chat/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Reply generates the full answer for input and returns it once generation ends.
	Reply(ctx context.Context, sc model.Scope, input ReplyInput) (ReplyOutput, error)

	// Stream generates the answer for input, calling emit for every accepted chunk.
	// The last event emitted has IsFinal set unless ctx was cancelled first.
	Stream(ctx context.Context, sc model.Scope, input StreamInput, emit func(StreamEvent) error) (ReplyOutput, error)

	// History returns the session's turns in insertion order.
	History(ctx context.Context, sc model.Scope) (HistoryOutput, error)

	// Clear resets the session's history to empty.
	Clear(ctx context.Context, sc model.Scope) error
}
