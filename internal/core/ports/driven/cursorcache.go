package driven

import (
	"github.com/tolarian-archive/scryglass/internal/core/domain"
	"github.com/tolarian-archive/scryglass/internal/pager"
)

// CursorCache hands out at most one result cursor per query string, so
// consecutive offset requests for the same query share fetched state.
type CursorCache interface {
	// GetOrCreate returns the resident cursor for query, creating one
	// if none exists. Equal query strings yield the identical cursor
	// instance until it is evicted; after eviction a fresh cursor
	// starts over from the first remote page.
	GetOrCreate(query string) *pager.Results[domain.Card]
}
