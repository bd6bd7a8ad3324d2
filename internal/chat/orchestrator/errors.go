package orchestrator

import "errors"

var (
	// ErrLoopBoundExceeded is the Result.Reason when maxLoops ran out before a terminal chunk.
	ErrLoopBoundExceeded = errors.New("loop bound exceeded")
	// ErrEmptyChunk is the Result.Reason when the endpoint returned no text at all.
	ErrEmptyChunk = errors.New("empty generation")
)
