package http

import (
	"github.com/gin-gonic/gin"
)

// processPromptReq binds the prompt from a form or JSON body, by Content-Type.
func (h *handler) processPromptReq(c *gin.Context) (promptReq, error) {
	var req promptReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
