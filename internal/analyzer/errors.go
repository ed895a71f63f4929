package analyzer

import "errors"

var (
	ErrSourceUnavailable = errors.New("log source unavailable")
	ErrIndexOutOfRange   = errors.New("period value out of range")
	ErrClosed            = errors.New("analyzer is closed")
)
