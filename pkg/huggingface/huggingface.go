package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// newHuggingFaceImpl creates a new Hugging Face implementation
func newHuggingFaceImpl(cfg Config) *huggingFaceImpl {
	base := cfg.HTTPClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	impl := &huggingFaceImpl{
		url:     cfg.URL,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		httpClient: &http.Client{
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIToken, TokenType: "Bearer"}),
				Base:   base,
			},
		},
	}
	if cfg.RequestsPerSecond > 0 {
		impl.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}
	return impl
}

// Generate sends one generation request to the inference endpoint
func (h *huggingFaceImpl) Generate(ctx context.Context, req *Request) (*Response, error) {
	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("huggingface: waiting for rate limiter: %w", err)
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to marshal request: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return nil, h.classifyTransportError(ctx, callCtx, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, h.classifyTransportError(ctx, callCtx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(respBody) > maxErrorBody {
			respBody = respBody[:maxErrorBody]
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	raw, err := parseGeneratedText(respBody)
	if err != nil {
		return nil, err
	}

	return &Response{
		GeneratedText: StripPromptEcho(raw),
	}, nil
}

// Model returns the model being used
func (h *huggingFaceImpl) Model() string {
	return h.model
}

// classifyTransportError separates caller cancellation from the per-call timeout.
func (h *huggingFaceImpl) classifyTransportError(parent, call context.Context, err error) error {
	if parent.Err() != nil {
		return fmt.Errorf("huggingface: request aborted: %w", parent.Err())
	}
	if errors.Is(call.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrTimeout, h.timeout)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("huggingface: API call failed: %w", err)
}

// parseGeneratedText expects [{"generated_text": "..."}, ...] and returns the first element's text.
func parseGeneratedText(body []byte) (string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return "", fmt.Errorf("%w: body is not an array: %v", ErrMalformedResponse, err)
	}
	if len(items) == 0 {
		return "", fmt.Errorf("%w: empty array", ErrMalformedResponse)
	}

	var first generation
	if err := json.Unmarshal(items[0], &first); err != nil {
		return "", fmt.Errorf("%w: first element is not an object: %v", ErrMalformedResponse, err)
	}
	if first.GeneratedText == nil {
		return "", fmt.Errorf("%w: generated_text missing", ErrMalformedResponse)
	}
	return *first.GeneratedText, nil
}

// StripPromptEcho keeps only the text after the last AssistantCue, if any.
func StripPromptEcho(text string) string {
	idx := strings.LastIndex(text, AssistantCue)
	if idx < 0 {
		return text
	}
	return strings.TrimSpace(text[idx+len(AssistantCue):])
}
