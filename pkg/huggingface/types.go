package huggingface

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config holds Hugging Face client configuration. It is copied into the client at
// construction and never mutated afterwards.
type Config struct {
	APIToken string
	URL      string
	Model    string
	Timeout  time.Duration

	// RequestsPerSecond paces outbound calls; zero disables pacing.
	RequestsPerSecond float64
	Burst             int

	// HTTPClient supplies the base transport; the bearer token is layered on top of it.
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.APIToken == "" {
		return fmt.Errorf("huggingface: APIToken is required")
	}
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("huggingface: RequestsPerSecond must not be negative")
	}
	if c.RequestsPerSecond > 0 && c.Burst <= 0 {
		c.Burst = 1
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	return nil
}

// huggingFaceImpl is the internal implementation of IHuggingFace
type huggingFaceImpl struct {
	url        string
	model      string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Request is a text-generation request.
type Request struct {
	Inputs     string     `json:"inputs"`
	Parameters Parameters `json:"parameters"`
}

// Parameters are the sampling parameters sent with every request.
type Parameters struct {
	MaxLength   int      `json:"max_length"`
	Temperature float64  `json:"temperature"`
	TopP        float64  `json:"top_p"`
	Stop        []string `json:"stop"`
}

// Response is the parsed generation result.
type Response struct {
	// GeneratedText has any echoed prompt before the last AssistantCue removed.
	GeneratedText string
}

type generation struct {
	GeneratedText *string `json:"generated_text"`
}
