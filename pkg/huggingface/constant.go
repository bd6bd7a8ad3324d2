package huggingface

import "time"

const (
	// DefaultModel is the model served by DefaultURL.
	DefaultModel = "Qwen/Qwen2.5-Coder-32B-Instruct"

	// DefaultURL is the hosted text-generation endpoint for DefaultModel.
	DefaultURL = "https://api-inference.huggingface.co/models/" + DefaultModel

	// DefaultTimeout bounds a single generation call.
	DefaultTimeout = 30 * time.Second

	// AssistantCue marks where the model's answer starts when it echoes the prompt.
	AssistantCue = "Assistant:"

	// maxErrorBody caps how much of a failed response body is kept on APIError.
	maxErrorBody = 512
)
