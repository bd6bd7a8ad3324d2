package orchestrator

import (
	"coder-chat/internal/chat/prompt"
	pkgLog "coder-chat/pkg/log"
)

type Orchestrator struct {
	gen     Generator
	builder prompt.Builder
	l       pkgLog.Logger
}

func New(gen Generator, builder prompt.Builder, l pkgLog.Logger) *Orchestrator {
	return &Orchestrator{
		gen:     gen,
		builder: builder,
		l:       l,
	}
}
