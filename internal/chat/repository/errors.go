package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get history")
	ErrFailedToAppend = errors.New("failed to append turn")
	ErrFailedToClear  = errors.New("failed to clear history")
)
