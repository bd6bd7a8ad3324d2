package prompt

const (
	// DefaultPreamble is the fixed system preamble placed before every prompt.
	DefaultPreamble = "You are a helpful coding assistant. Answer clearly and concisely, " +
		"and finish every answer with a complete sentence."

	// Cue asks the model to complete the assistant's turn.
	Cue = "Assistant:"

	// EchoFallback replaces a degenerate completion that only parrots the input.
	EchoFallback = "I'm sorry, I couldn't provide a unique response. Please try rephrasing your query."

	// echoWordLimit is the word count below which an echoing chunk counts as degenerate.
	echoWordLimit = 20
)

// Response budget defaults.
const (
	DefaultContextWindow     = 4096
	DefaultMinResponseTokens = 512
)
