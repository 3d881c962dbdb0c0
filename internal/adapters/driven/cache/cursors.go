// Package cache provides the in-memory stores that let consecutive
// inline query requests share state: the query cursor cache and the
// per-user last-query store. Both are process-local; a restart simply
// forgets them.
package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tolarian-archive/scryglass/internal/core/domain"
	"github.com/tolarian-archive/scryglass/internal/core/ports/driven"
	"github.com/tolarian-archive/scryglass/internal/pager"
)

// Ensure CursorCache implements the interface.
var _ driven.CursorCache = (*CursorCache)(nil)

// DefaultCapacity is the default number of query cursors kept resident.
const DefaultCapacity = 128

// CursorCache memoises one result cursor per query string, bounded by a
// least-recently-used policy. Evicting a cursor only forgets it:
// requests already holding the evicted cursor keep using it, while the
// next lookup for that query starts over from the first remote page.
type CursorCache struct {
	mu        sync.Mutex
	cursors   *lru.Cache[string, *pager.Results[domain.Card]]
	source    driven.CardSource
	chunkSize int
}

// NewCursorCache creates a cursor cache over source. chunkSize is the
// number of cards per answer page; capacity bounds the number of
// resident cursors, with non-positive values falling back to
// DefaultCapacity.
func NewCursorCache(source driven.CardSource, chunkSize, capacity int) (*CursorCache, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	cursors, err := lru.New[string, *pager.Results[domain.Card]](capacity)
	if err != nil {
		return nil, err
	}

	return &CursorCache{
		cursors:   cursors,
		source:    source,
		chunkSize: chunkSize,
	}, nil
}

// GetOrCreate returns the resident cursor for query, creating one if
// needed. The lock guards only the lookup-or-insert; callers drive the
// returned cursor (and its network fetches) outside of it.
func (c *CursorCache) GetOrCreate(query string) *pager.Results[domain.Card] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cursor, ok := c.cursors.Get(query); ok {
		return cursor
	}

	cursor := pager.NewResults(c.source, query, c.source.SearchURL(query), c.chunkSize)
	c.cursors.Add(query, cursor)
	return cursor
}

// Len reports the number of resident cursors.
func (c *CursorCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursors.Len()
}
