package huggingface

import "context"

// IHuggingFace defines the text-generation client.
// Implementations are safe for concurrent use.
type IHuggingFace interface {
	// Generate issues exactly one request to the inference endpoint. It never retries.
	Generate(ctx context.Context, req *Request) (*Response, error)

	// Model returns the configured model name
	Model() string
}

// New creates a new Hugging Face client with the given configuration
func New(cfg Config) (IHuggingFace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newHuggingFaceImpl(cfg), nil
}
