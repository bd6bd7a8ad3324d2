package model

// Scope carries the caller identity resolved at the HTTP boundary.
type Scope struct {
	SessionID string // opaque id from the session cookie
	RequestID string // per-request id for log correlation
}
