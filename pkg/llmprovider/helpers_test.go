package llmprovider

import (
	"context"
	"sync"
	"time"
)

// scriptedProvider returns the scripted results in order; the last one repeats.
type scriptedProvider struct {
	mu        sync.Mutex
	results   []scriptedResult
	callCount int
}

type scriptedResult struct {
	chunk Chunk
	err   error
}

func (p *scriptedProvider) Generate(ctx context.Context, req Request) (Chunk, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.callCount
	if idx >= len(p.results) {
		idx = len(p.results) - 1
	}
	p.callCount++
	return p.results[idx].chunk, p.results[idx].err
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-model" }

func rateLimited() scriptedResult {
	return scriptedResult{err: &Error{Provider: "scripted", Kind: KindRateLimited, Status: 429, Err: ErrProviderRateLimited}}
}

func ok(text string) scriptedResult {
	return scriptedResult{chunk: NewChunk(text)}
}

// recordingSleep records requested waits without sleeping.
type recordingSleep struct {
	delays []time.Duration
}

func (r *recordingSleep) sleep(ctx context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return ctx.Err()
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	mu           sync.Mutex
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
