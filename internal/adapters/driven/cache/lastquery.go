package cache

import (
	"sync"

	"github.com/tolarian-archive/scryglass/internal/core/ports/driven"
)

// Ensure LastQueryStore implements the interface.
var _ driven.LastQueryStore = (*LastQueryStore)(nil)

// LastQueryStore remembers the last result-yielding query per user.
// It is deliberately unbounded: growth is one short string per distinct
// user that ever got results.
type LastQueryStore struct {
	mu      sync.RWMutex
	queries map[int64]string
}

// NewLastQueryStore creates an empty last-query store.
func NewLastQueryStore() *LastQueryStore {
	return &LastQueryStore{
		queries: make(map[int64]string),
	}
}

// Remember unconditionally overwrites the stored query for userID.
func (s *LastQueryStore) Remember(userID int64, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries[userID] = query
}

// Recall returns the stored query for userID, if any.
func (s *LastQueryStore) Recall(userID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	query, ok := s.queries[userID]
	return query, ok
}
