package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// MessageResp is the bare body of the legacy form endpoint.
type MessageResp struct {
	Message string `json:"message"`
}

// ErrorResp is the bare error body of the legacy endpoints.
type ErrorResp struct {
	Error string `json:"error"`
}

// SuccessResp is the bare body returned by the legacy clear endpoint.
type SuccessResp struct {
	Success bool `json:"success"`
}
