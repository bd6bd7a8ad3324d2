package orchestrator

import (
	"context"
	"sync"

	"coder-chat/internal/chat"
	"coder-chat/pkg/llmprovider"
)

// scriptedGenerator returns the scripted results in order; the last one repeats.
type scriptedGenerator struct {
	mu      sync.Mutex
	results []scriptedResult
	prompts []string
	reqs    []llmprovider.Request
}

type scriptedResult struct {
	text string
	err  error
}

func (g *scriptedGenerator) Generate(ctx context.Context, req llmprovider.Request) (llmprovider.Chunk, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := len(g.prompts)
	if idx >= len(g.results) {
		idx = len(g.results) - 1
	}
	g.prompts = append(g.prompts, req.Prompt)
	g.reqs = append(g.reqs, req)

	r := g.results[idx]
	if r.err != nil {
		return llmprovider.Chunk{}, r.err
	}
	return llmprovider.NewChunk(r.text), nil
}

func (g *scriptedGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

func texts(values ...string) []scriptedResult {
	out := make([]scriptedResult, 0, len(values))
	for _, v := range values {
		out = append(out, scriptedResult{text: v})
	}
	return out
}

// eventRecorder collects emitted events.
type eventRecorder struct {
	events []chat.StreamEvent
}

func (r *eventRecorder) emit(ev chat.StreamEvent) error {
	r.events = append(r.events, ev)
	return nil
}

func (r *eventRecorder) joined() string {
	var s string
	for _, ev := range r.events {
		s += ev.Text
	}
	return s
}

func (r *eventRecorder) finals() int {
	n := 0
	for _, ev := range r.events {
		if ev.IsFinal {
			n++
		}
	}
	return n
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
