package orchestrator

// Log prefixes
const (
	LogPrefixRun = "internal.chat.orchestrator.Run"
)

// Loop configuration
const (
	DefaultMaxLoops = 10
)

// Generation defaults
const (
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
	DefaultStop        = "\nAssistant:"
)

// End phrases that mark a completed answer even without terminal punctuation.
// A model that emits one of these mid-answer ends generation early.
var endPhrases = []string{"[END]", "<|endoftext|>", "</s>"}

// User-visible notes for aborted generations.
const (
	NoteRetriesExhausted = "Error: the model is not responding right now. Please try again in a moment."
	NoteGenerationFailed = "Error: something went wrong while generating a response. Please try again."
	NoteLoopBound        = "(Response cut short: the answer exceeded the continuation limit.)"
	// NoResponse stands in for an answer the endpoint returned in an unusable shape.
	NoResponse = "No response"
)

// Log messages
const (
	LogMsgStep      = "Generation step %d/%d"
	LogMsgDone      = "Generation finished at step %d"
	LogMsgAborted   = "Generation aborted at step %d"
	LogMsgLoopBound = "Generation exceeded max loops (%d)"
)
