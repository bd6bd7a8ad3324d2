package chat

import "strings"

// --- Conversation Domain Model ---

// Role tags who produced a Turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Title returns the role as rendered in prompts ("User", "Assistant").
func (r Role) Title() string {
	if r == "" {
		return ""
	}
	s := string(r)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Turn is one message in a conversation. Treat as immutable once created.
type Turn struct {
	Role    Role
	Content string
}

// StreamEvent is one incrementally produced piece of the answer.
type StreamEvent struct {
	Text    string
	IsFinal bool
}

// --- UseCase Inputs ---

type ReplyInput struct {
	Prompt string
}

type StreamInput struct {
	Prompt string
}

// --- UseCase Outputs ---

// ReplyOutput is the assembled answer once generation reaches a terminal state.
type ReplyOutput struct {
	Message    string
	State      string
	Iterations int
}

type HistoryOutput struct {
	Turns []Turn
}
