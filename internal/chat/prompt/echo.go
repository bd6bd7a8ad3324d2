package prompt

import "strings"

// FilterEcho replaces chunkText with EchoFallback when it contains userInput
// (case-insensitively) and has fewer than 20 words; otherwise chunkText is
// returned unchanged.
func FilterEcho(userInput, chunkText string) string {
	needle := strings.ToLower(strings.TrimSpace(userInput))
	if needle == "" {
		return chunkText
	}
	if !strings.Contains(strings.ToLower(chunkText), needle) {
		return chunkText
	}
	if len(strings.Fields(chunkText)) >= echoWordLimit {
		return chunkText
	}
	return EchoFallback
}
