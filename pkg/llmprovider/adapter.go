package llmprovider

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"coder-chat/pkg/huggingface"
)

// HuggingFaceAdapter adapts pkg/huggingface to the Provider interface
type HuggingFaceAdapter struct {
	client huggingface.IHuggingFace
}

// NewHuggingFaceAdapter creates a new Hugging Face adapter
func NewHuggingFaceAdapter(client huggingface.IHuggingFace) *HuggingFaceAdapter {
	return &HuggingFaceAdapter{client: client}
}

// Generate implements Provider interface
func (a *HuggingFaceAdapter) Generate(ctx context.Context, req Request) (Chunk, error) {
	resp, err := a.client.Generate(ctx, &huggingface.Request{
		Inputs: req.Prompt,
		Parameters: huggingface.Parameters{
			MaxLength:   req.MaxTokens,
			Temperature: req.Temperature,
			TopP:        req.TopP,
			Stop:        req.Stop,
		},
	})
	if err != nil {
		return Chunk{}, a.classify(ctx, err)
	}

	return NewChunk(resp.GeneratedText), nil
}

// Name implements Provider interface
func (a *HuggingFaceAdapter) Name() string {
	return "huggingface"
}

// Model implements Provider interface
func (a *HuggingFaceAdapter) Model() string {
	return a.client.Model()
}

func (a *HuggingFaceAdapter) classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return err
	}

	var apiErr *huggingface.APIError
	switch {
	case errors.Is(err, huggingface.ErrTimeout):
		return &Error{Provider: a.Name(), Kind: KindTimeout, Err: err}
	case errors.Is(err, huggingface.ErrMalformedResponse):
		return &Error{Provider: a.Name(), Kind: KindMalformed, Err: err}
	case errors.As(err, &apiErr):
		kind := KindEndpoint
		if apiErr.StatusCode == http.StatusTooManyRequests {
			kind = KindRateLimited
		}
		return &Error{Provider: a.Name(), Kind: kind, Status: apiErr.StatusCode, Err: err}
	default:
		return &Error{Provider: a.Name(), Kind: KindEndpoint, Err: err}
	}
}

// NewChunk builds a Chunk from raw generated text, detecting the truncation marker.
func NewChunk(text string) Chunk {
	trimmed := strings.TrimSpace(text)
	return Chunk{
		Text:      text,
		Truncated: IsTruncated(trimmed),
	}
}

// IsTruncated reports whether text ends with a truncation marker.
func IsTruncated(text string) bool {
	text = strings.TrimSpace(text)
	return strings.HasSuffix(text, EllipsisMarker) || strings.HasSuffix(text, UnicodeEllipsisMarker)
}

// StripTruncation removes one trailing truncation marker (and surrounding space).
func StripTruncation(text string) string {
	text = strings.TrimRight(text, " \t\r\n")
	switch {
	case strings.HasSuffix(text, EllipsisMarker):
		text = strings.TrimSuffix(text, EllipsisMarker)
	case strings.HasSuffix(text, UnicodeEllipsisMarker):
		text = strings.TrimSuffix(text, UnicodeEllipsisMarker)
	}
	return strings.TrimRight(text, " \t\r\n")
}
