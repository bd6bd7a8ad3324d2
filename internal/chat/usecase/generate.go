package usecase

import (
	"context"
	"fmt"
	"strings"

	"coder-chat/internal/chat"
	"coder-chat/internal/chat/orchestrator"
	"coder-chat/internal/chat/prompt"
	"coder-chat/internal/model"
)

// Reply generates the whole answer before returning it.
func (uc *implUseCase) Reply(ctx context.Context, sc model.Scope, input chat.ReplyInput) (chat.ReplyOutput, error) {
	return uc.generate(ctx, sc, input.Prompt, func(chat.StreamEvent) error { return nil })
}

// Stream forwards every accepted chunk to emit as it is produced.
func (uc *implUseCase) Stream(ctx context.Context, sc model.Scope, input chat.StreamInput, emit func(chat.StreamEvent) error) (chat.ReplyOutput, error) {
	return uc.generate(ctx, sc, input.Prompt, emit)
}

// generate validates the input, windows the session history, runs the orchestrator and
// records the exchange. Nothing is recorded when the run is cancelled or emit fails.
func (uc *implUseCase) generate(ctx context.Context, sc model.Scope, userInput string, emit func(chat.StreamEvent) error) (chat.ReplyOutput, error) {
	userInput = strings.TrimSpace(userInput)
	if userInput == "" {
		return chat.ReplyOutput{}, chat.ErrEmptyInput
	}
	if sc.SessionID == "" {
		return chat.ReplyOutput{}, chat.ErrMissingSession
	}

	history, err := uc.repo.Get(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to load history: %v", LogPrefixGenerate, err)
		return chat.ReplyOutput{}, fmt.Errorf("load history: %w", err)
	}

	res, err := uc.orch.Run(ctx, orchestrator.Input{
		Window:    prompt.Window(history, uc.cfg.WindowSize),
		UserInput: userInput,
		MaxLoops:  uc.cfg.MaxLoops,
		Params:    uc.cfg.Params,
	}, emit)
	if err != nil {
		uc.l.Infof(ctx, "%s: session=%s generation stopped after %d calls: %v", LogPrefixGenerate, sc.SessionID, res.Iterations, err)
		return chat.ReplyOutput{}, err
	}

	if res.Reason != nil {
		uc.l.Warnf(ctx, "%s: session=%s aborted: %v", LogPrefixGenerate, sc.SessionID, res.Reason)
	}

	out := chat.ReplyOutput{
		Message:    res.Text,
		State:      string(res.State),
		Iterations: res.Iterations,
	}

	if err := uc.record(ctx, sc.SessionID, userInput, res.Text); err != nil {
		return out, err
	}
	return out, nil
}

func (uc *implUseCase) record(ctx context.Context, sessionID, userInput, answer string) error {
	turns := []chat.Turn{
		{Role: chat.RoleUser, Content: userInput},
		{Role: chat.RoleAssistant, Content: answer},
	}
	for _, turn := range turns {
		if err := uc.repo.Append(ctx, sessionID, turn); err != nil {
			uc.l.Errorf(ctx, "%s: failed to append %s turn: %v", LogPrefixGenerate, turn.Role, err)
			return fmt.Errorf("record %s turn: %w", turn.Role, err)
		}
	}
	return nil
}
