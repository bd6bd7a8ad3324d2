package llmprovider

import (
	"context"
	"fmt"

	"coder-chat/pkg/log"
)

// Manager issues generation calls against one provider through a RetryPolicy.
type Manager struct {
	provider Provider
	policy   *RetryPolicy
	logger   log.Logger
}

// NewManager creates a new Manager with the given provider, retry policy, and logger
func NewManager(provider Provider, policy *RetryPolicy, logger log.Logger) *Manager {
	return &Manager{
		provider: provider,
		policy:   policy,
		logger:   logger,
	}
}

// Generate runs one logical generation call, retrying transient failures.
func (m *Manager) Generate(ctx context.Context, req Request) (Chunk, error) {
	if m.provider == nil {
		return Chunk{}, fmt.Errorf("%w: no provider configured", ErrInvalidRequest)
	}
	if req.Prompt == "" {
		return Chunk{}, fmt.Errorf("%w: empty prompt", ErrInvalidRequest)
	}

	chunk, err := m.policy.Execute(ctx, func(ctx context.Context) (Chunk, error) {
		return m.provider.Generate(ctx, req)
	})
	if err != nil {
		m.logFailure(ctx, err)
		return Chunk{}, err
	}

	m.logSuccess(ctx, chunk)
	return chunk, nil
}

// Provider returns the wrapped provider.
func (m *Manager) Provider() Provider {
	return m.provider
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, chunk Chunk) {
	m.logger.Info(ctx, LogPrefixGenerate+": LLM generation successful",
		"provider", m.provider.Name(),
		"model", m.provider.Model(),
		"chars", len(chunk.Text),
		"truncated", chunk.Truncated,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, err error) {
	m.logger.Warn(ctx, LogPrefixGenerate+": LLM generation failed",
		"provider", m.provider.Name(),
		"model", m.provider.Model(),
		"kind", KindOf(err).String(),
		"max_attempts", m.policy.MaxRetries(),
		"error", err.Error(),
	)
}
