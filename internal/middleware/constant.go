package middleware

const (
	DefaultCookieName = "session_id"

	// Gin context keys
	SessionIDKey = "session_id"
	RequestIDKey = "request_id"

	RequestIDHeader = "X-Request-ID"
)
