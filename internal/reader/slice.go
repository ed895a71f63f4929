package reader

import (
	"os"

	"github.com/Egor213/LogAnalyzer/internal/domain"
)

// SliceSource serves entries from memory. It counts resets so callers can
// check that every pass starts from the beginning.
type SliceSource struct {
	entries []domain.LogEntry
	pos     int
	resets  int
	closed  bool
}

func NewSliceSource(entries ...domain.LogEntry) *SliceSource {
	return &SliceSource{entries: entries}
}

func (s *SliceSource) Reset() error {
	if s.closed {
		return os.ErrClosed
	}
	s.pos = 0
	s.resets++
	return nil
}

func (s *SliceSource) HasNext() bool {
	return !s.closed && s.pos < len(s.entries)
}

func (s *SliceSource) Next() (domain.LogEntry, error) {
	if !s.HasNext() {
		return domain.LogEntry{}, ErrNoMoreEntries
	}
	e := s.entries[s.pos]
	s.pos++
	return e, nil
}

func (s *SliceSource) Close() error {
	s.closed = true
	return nil
}

func (s *SliceSource) Resets() int  { return s.resets }
func (s *SliceSource) Closed() bool { return s.closed }
