package http

// Messages of the legacy form endpoints.
const (
	MsgEmptyPrompt = "Prompt cannot be empty"
	MsgFailed      = "Error: failed to get a response. Please try again."
)

const (
	ssePrefix = "data: "
)
