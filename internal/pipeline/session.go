package pipeline

import (
	"sync"

	"github.com/Deepak11085/Expenses-measure/internal/models"
)

// Session holds the derived state of the most recent upload for one process
// lifetime. State is ephemeral: nothing is persisted across sessions.
//
// Uploads may be decoded concurrently by the caller. Begin issues a
// generation for each upload and Commit installs a result only when it still
// belongs to the newest generation, so a slow decode that finishes after a
// newer upload started can never overwrite the newer result
// (last-write-wins).
type Session struct {
	mu      sync.Mutex
	current uint64
	result  *Result
}

// NewSession creates an empty Session.
func NewSession() *Session {
	return &Session{}
}

// Begin registers a new upload and returns its generation token.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current++
	return s.current
}

// Commit installs the result for the given generation. It reports false and
// discards the result when a newer upload has begun since.
func (s *Session) Commit(gen uint64, result *Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.current {
		return false
	}
	s.result = result
	return true
}

// Run executes one pipeline pass over ds under this session's last-write-wins
// discipline: a generation is taken before the run and the result is committed
// only if no newer run has begun in the meantime. A failed run leaves the
// previous snapshot in place. The result is returned to the caller either way.
func (s *Session) Run(p *Pipeline, ds models.Dataset) (*Result, error) {
	gen := s.Begin()
	result, err := p.Run(ds)
	if err != nil {
		return nil, err
	}
	s.Commit(gen, result)
	return result, nil
}

// Snapshot returns the latest committed result atomically. The bool reports
// whether any run has completed yet.
func (s *Session) Snapshot() (*Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil, false
	}
	return s.result, true
}
