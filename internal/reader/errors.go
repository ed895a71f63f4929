package reader

import "errors"

var (
	ErrMalformedEntry = errors.New("malformed log entry")
	ErrUnknownFormat  = errors.New("unknown log format")
	ErrNoMoreEntries  = errors.New("no more entries")
)
