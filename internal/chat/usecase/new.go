package usecase

import (
	"coder-chat/internal/chat"
	"coder-chat/internal/chat/orchestrator"
	"coder-chat/internal/chat/repository"
	pkgLog "coder-chat/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.HistoryRepository
	orch *orchestrator.Orchestrator
	cfg  Config
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.HistoryRepository,
	orch *orchestrator.Orchestrator,
	cfg Config,
) *implUseCase {
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = DefaultWindowSize
	}
	if cfg.MaxLoops <= 0 {
		cfg.MaxLoops = orchestrator.DefaultMaxLoops
	}
	return &implUseCase{
		l:    l,
		repo: repo,
		orch: orch,
		cfg:  cfg,
	}
}
