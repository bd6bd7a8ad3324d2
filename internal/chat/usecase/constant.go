package usecase

// Log prefixes
const (
	LogPrefixGenerate = "internal.chat.usecase.generate"
	LogPrefixHistory  = "internal.chat.usecase.History"
	LogPrefixClear    = "internal.chat.usecase.Clear"
)
