package llmprovider

import "context"

// Provider defines the interface for a text-generation backend.
type Provider interface {
	// Generate issues one generation call and returns the classified result.
	// Failures are *Error values (or context errors when the caller gave up).
	Generate(ctx context.Context, req Request) (Chunk, error)

	// Name returns the provider name (e.g., "huggingface")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request is a normalized generation request.
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
	TopP        float64
	Stop        []string
}

// Chunk is one unit of generated text returned by a single call.
type Chunk struct {
	Text string
	// Truncated reports the endpoint cut the output mid-thought; the caller must continue.
	Truncated bool
}
