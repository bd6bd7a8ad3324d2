package prompt

import "coder-chat/internal/chat"

// Window returns the last k turns of history in their original order. The result
// never aliases history, and its length is min(k, len(history)).
func Window(history []chat.Turn, k int) []chat.Turn {
	if k <= 0 || len(history) == 0 {
		return []chat.Turn{}
	}

	start := 0
	if len(history) > k {
		start = len(history) - k
	}

	out := make([]chat.Turn, len(history)-start)
	copy(out, history[start:])
	return out
}
