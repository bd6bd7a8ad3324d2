package orchestrator

import (
	"context"

	"coder-chat/internal/chat"
	"coder-chat/pkg/llmprovider"
)

// Generator performs one logical generation call with retries already applied.
// *llmprovider.Manager satisfies it.
type Generator interface {
	Generate(ctx context.Context, req llmprovider.Request) (llmprovider.Chunk, error)
}

// Emitter receives every accepted chunk as it is produced. A non-nil error stops the run.
type Emitter func(chat.StreamEvent) error

// State is the generation loop state.
type State string

const (
	StateGenerating State = "generating"
	StateContinuing State = "continuing"
	StateDone       State = "done"
	StateAborted    State = "aborted"
)

// Params are the sampling parameters sent with every call.
type Params struct {
	MaxTokens         int
	ContextWindow     int
	MinResponseTokens int
	Temperature       float64
	TopP              float64
	Stop              []string
}

// DefaultParams returns the sampling parameters used when none are configured.
func DefaultParams() Params {
	return Params{
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
		Stop:        []string{DefaultStop},
	}
}

// Input is one request to answer.
type Input struct {
	Window    []chat.Turn
	UserInput string
	// MaxLoops bounds provider calls; zero or less selects DefaultMaxLoops.
	MaxLoops int
	Params   Params
}

// Result is the outcome of a run.
type Result struct {
	// Text is the concatenation of every emitted event.
	Text       string
	State      State
	Iterations int
	// Reason explains an Aborted state. Nil when Done.
	Reason error
}
