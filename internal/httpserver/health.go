package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coder-chat/pkg/response"
)

// Service identity reported by the probes.
const (
	HealthMessage = "coder-chat API v1"
	HealthVersion = "1.0.0"
	ServiceName   = "coder-chat"
)

type statusResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
}

func (srv HTTPServer) probe(c *gin.Context, status string) {
	response.OK(c, statusResp{
		Status:  status,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
	})
}

// healthCheck godoc
// @Summary     Health check
// @Tags        System
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	srv.probe(c, "healthy")
}

// readyCheck reports ready once the chat routes are mapped.
// @Summary     Readiness check
// @Tags        System
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     503 {object} response.Resp
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.chatHandler == nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "chat handler not configured",
		})
		return
	}
	srv.probe(c, "ready")
}

// liveCheck godoc
// @Summary     Liveness check
// @Tags        System
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.probe(c, "alive")
}
