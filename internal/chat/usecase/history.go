package usecase

import (
	"context"
	"fmt"

	"coder-chat/internal/chat"
	"coder-chat/internal/model"
)

// History returns the session's turns in insertion order.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) (chat.HistoryOutput, error) {
	if sc.SessionID == "" {
		return chat.HistoryOutput{}, chat.ErrMissingSession
	}

	turns, err := uc.repo.Get(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixHistory, err)
		return chat.HistoryOutput{}, fmt.Errorf("load history: %w", err)
	}
	return chat.HistoryOutput{Turns: turns}, nil
}

// Clear resets the session's history to empty.
func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope) error {
	if sc.SessionID == "" {
		return chat.ErrMissingSession
	}

	if err := uc.repo.Clear(ctx, sc.SessionID); err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixClear, err)
		return fmt.Errorf("clear history: %w", err)
	}

	uc.l.Infof(ctx, "%s: session=%s history cleared", LogPrefixClear, sc.SessionID)
	return nil
}
