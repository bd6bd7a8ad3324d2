package http

import (
	"github.com/gin-gonic/gin"

	"coder-chat/internal/chat"
	"coder-chat/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Reply(c *gin.Context)
	Stream(c *gin.Context)
	History(c *gin.Context)
	Clear(c *gin.Context)

	GetResponse(c *gin.Context)
	ClearSession(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
