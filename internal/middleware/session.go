package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coder-chat/internal/model"
	"coder-chat/pkg/log"
)

// Session resolves the session id from the session cookie, minting and setting a new
// one when the cookie is missing or not a UUID. It also assigns a request id.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), requestID))

		sessionID, err := c.Cookie(m.sessionConfig.CookieName)
		if err == nil {
			_, err = uuid.Parse(sessionID)
		}
		if err != nil {
			sessionID = uuid.NewString()
			m.l.Debugf(c.Request.Context(), "middleware.Session: new session %s", sessionID)
		}
		// Refresh the cookie on every request so active sessions do not expire.
		c.SetCookie(m.sessionConfig.CookieName, sessionID, m.sessionConfig.CookieMaxAge, "/", "", m.sessionConfig.Secure, true)
		c.Set(SessionIDKey, sessionID)

		c.Next()
	}
}

// GetScope returns the identity resolved by Session.
func GetScope(c *gin.Context) model.Scope {
	return model.Scope{
		SessionID: c.GetString(SessionIDKey),
		RequestID: c.GetString(RequestIDKey),
	}
}
