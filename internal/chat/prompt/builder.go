package prompt

import (
	"fmt"
	"strings"

	"coder-chat/internal/chat"
)

// Builder renders a window of turns into a single completion prompt.
// Build is pure: the same inputs always produce a byte-identical prompt.
type Builder struct {
	// Preamble is written first. Empty selects DefaultPreamble.
	Preamble string
	// IncludeAssistantTurns renders assistant turns of the window; when false
	// only user turns are kept.
	IncludeAssistantTurns bool
}

// Build renders:
//
//	<preamble>
//	User: ...
//	Assistant: ...
//	User: <userInput>
//	Assistant:
//
// When continuation is non-empty the partial answer follows the cue and the cue is
// repeated on a new line, so the model resumes right after its own output.
func (b Builder) Build(window []chat.Turn, userInput, continuation string) string {
	var sb strings.Builder

	preamble := b.Preamble
	if preamble == "" {
		preamble = DefaultPreamble
	}

	sb.WriteString(preamble)
	for _, turn := range window {
		if turn.Role == chat.RoleAssistant && !b.IncludeAssistantTurns {
			continue
		}
		fmt.Fprintf(&sb, "\n%s: %s", turn.Role.Title(), turn.Content)
	}
	fmt.Fprintf(&sb, "\n%s: %s\n%s", chat.RoleUser.Title(), userInput, Cue)

	if continuation != "" {
		fmt.Fprintf(&sb, " %s\n%s", continuation, Cue)
	}

	return sb.String()
}

// ResponseBudget returns the max_length to request for prompt: the context window
// minus the prompt's word count, never below minResponse, and capped by maxTokens
// when maxTokens is positive.
func ResponseBudget(prompt string, contextWindow, minResponse, maxTokens int) int {
	if contextWindow <= 0 {
		contextWindow = DefaultContextWindow
	}
	if minResponse <= 0 {
		minResponse = DefaultMinResponseTokens
	}

	budget := contextWindow - len(strings.Fields(prompt))
	if budget < minResponse {
		budget = minResponse
	}
	if maxTokens > 0 && budget > maxTokens {
		budget = maxTokens
	}
	return budget
}
