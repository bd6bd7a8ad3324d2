package usecase

import "coder-chat/internal/chat/orchestrator"

// Config tunes how much history is sent and how long generation may run.
type Config struct {
	// WindowSize is K, the number of most recent turns rendered into the prompt.
	WindowSize int
	MaxLoops   int
	Params     orchestrator.Params
}

// DefaultWindowSize is used when Config.WindowSize is not positive.
const DefaultWindowSize = 10
