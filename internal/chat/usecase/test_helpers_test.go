package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"coder-chat/internal/chat"
	"coder-chat/internal/chat/orchestrator"
	"coder-chat/internal/chat/prompt"
	"coder-chat/internal/chat/repository"
	"coder-chat/internal/chat/repository/memory"
	"coder-chat/pkg/llmprovider"
	pkgLog "coder-chat/pkg/log"
)

var errStore = errors.New("store unavailable")

// stubGenerator answers with the scripted texts in order; the last one repeats.
type stubGenerator struct {
	mu      sync.Mutex
	texts   []string
	err     error
	prompts []string
}

func (g *stubGenerator) Generate(ctx context.Context, req llmprovider.Request) (llmprovider.Chunk, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.prompts = append(g.prompts, req.Prompt)
	if g.err != nil {
		return llmprovider.Chunk{}, g.err
	}
	idx := len(g.prompts) - 1
	if idx >= len(g.texts) {
		idx = len(g.texts) - 1
	}
	return llmprovider.NewChunk(g.texts[idx]), nil
}

func (g *stubGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

// failingRepo delegates to a working repository and fails the selected operations.
type failingRepo struct {
	repository.HistoryRepository
	getErr    error
	appendErr error
	clearErr  error
}

func (r *failingRepo) Get(ctx context.Context, sessionID string) ([]chat.Turn, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.HistoryRepository.Get(ctx, sessionID)
}

func (r *failingRepo) Append(ctx context.Context, sessionID string, turn chat.Turn) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	return r.HistoryRepository.Append(ctx, sessionID, turn)
}

func (r *failingRepo) Clear(ctx context.Context, sessionID string) error {
	if r.clearErr != nil {
		return r.clearErr
	}
	return r.HistoryRepository.Clear(ctx, sessionID)
}

func newMemoryRepo() repository.HistoryRepository {
	return memory.New(100, time.Hour, pkgLog.NewNop())
}

func newTestUseCase(gen orchestrator.Generator, repo repository.HistoryRepository, cfg Config) *implUseCase {
	l := pkgLog.NewNop()
	orch := orchestrator.New(gen, prompt.Builder{Preamble: "System.", IncludeAssistantTurns: true}, l)
	return New(l, repo, orch, cfg)
}
