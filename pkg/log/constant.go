package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// RequestIDKey is the structured field name carrying the request id.
	RequestIDKey = "request_id"
)
