package http

import (
	"github.com/gin-gonic/gin"

	"coder-chat/internal/middleware"
)

// RegisterRoutes maps /api/v1/chat routes. Every route resolves the session first;
// routes that read or write history are serialized per session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.Session(), mw.SerializeSession())
	{
		rg.POST("", h.Reply)
		rg.POST("/stream", h.Stream)
		rg.GET("/history", h.History)
		rg.DELETE("/history", h.Clear)
	}
}

// RegisterLegacyRoutes maps the form-based routes used by the bundled chat page.
func RegisterLegacyRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST("/get_response", mw.Session(), mw.SerializeSession(), h.GetResponse)
	r.POST("/clear", mw.Session(), mw.SerializeSession(), h.ClearSession)
}
