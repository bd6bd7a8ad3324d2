package llmprovider

import "time"

// Truncation markers. A chunk whose trimmed text ends with one of these was cut short.
const (
	EllipsisMarker        = "..."
	UnicodeEllipsisMarker = "…"
)

// Retry defaults
const (
	DefaultMaxRetries = 5
	DefaultBaseDelay  = time.Second
	DefaultMaxDelay   = 30 * time.Second
)

// Log prefixes
const (
	LogPrefixRetry    = "pkg.llmprovider.RetryPolicy.Execute"
	LogPrefixGenerate = "pkg.llmprovider.Manager.Generate"
)
