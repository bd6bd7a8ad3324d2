package llmprovider

import (
	"fmt"

	"coder-chat/config"
	"coder-chat/pkg/huggingface"
	"coder-chat/pkg/log"
)

// InitializeProvider creates the inference Provider from config.InferenceConfig.
func InitializeProvider(cfg *config.InferenceConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("inference config is nil")
	}

	client, err := huggingface.New(huggingface.Config{
		APIToken:          cfg.APIToken,
		URL:               cfg.URL,
		Model:             cfg.Model,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize huggingface client: %w", err)
	}

	return NewHuggingFaceAdapter(client), nil
}

// InitializeManager wires the provider and retry policy described by cfg.
func InitializeManager(inference *config.InferenceConfig, generation *config.GenerationConfig, l log.Logger) (*Manager, error) {
	provider, err := InitializeProvider(inference)
	if err != nil {
		return nil, err
	}
	if generation == nil {
		return nil, fmt.Errorf("generation config is nil")
	}

	policy := NewRetryPolicy(RetryConfig{
		MaxRetries: generation.MaxRetries,
		BaseDelay:  generation.RetryBaseDelay,
		MaxDelay:   generation.RetryMaxDelay,
	}, l)

	return NewManager(provider, policy, l), nil
}
