package http

import (
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

// setSSEHeaders prepares the response for a text/event-stream body.
func setSSEHeaders(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
}

// writeSSEData writes text as one event. Each line of text becomes its own
// "data: " field so embedded newlines survive framing.
func writeSSEData(w io.Writer, text string) error {
	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(ssePrefix)
		sb.WriteString(strings.TrimSuffix(line, "\r"))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
