package pager

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrOutOfRange is returned by Results.Get when the remote source has
// no further pages and the requested chunk index was never materialised.
var ErrOutOfRange = errors.New("pager: chunk index out of range")

// Page is one envelope worth of items from a remote source, together
// with the link to the following page. An empty NextPage means the
// source has no further pages.
type Page[T any] struct {
	Items    []T
	NextPage string
}

// Source fetches a single remote page by URL. One call, one round trip;
// retries are not this layer's concern.
type Source[T any] interface {
	FetchPage(ctx context.Context, url string) (Page[T], error)
}

// Results is a growable, index-addressable sequence of chunks backed by
// a remote source. Indexing beyond the resident range pulls exactly as
// many remote pages as are needed to satisfy the index; once fetched, a
// chunk stays resident for the lifetime of the cursor and is never
// requested from the source again. When an envelope arrives without a
// next-page link the cursor is exhausted, permanently: further reads
// beyond the resident range fail without I/O.
//
// A cursor is safe for concurrent use. The internal mutex is held
// across fetches so two requests for the same query cannot interleave
// their appends.
type Results[T any] struct {
	query     string
	chunkSize int
	src       Source[T]

	mu        sync.Mutex
	resident  [][]T
	next      string // URL of the next unfetched remote page
	exhausted bool   // terminal; next is meaningless once set
}

// NewResults creates a cursor for query whose first remote page is
// searchURL. chunkSize is the number of items per resident chunk and
// must be at least 1.
func NewResults[T any](src Source[T], query, searchURL string, chunkSize int) *Results[T] {
	if chunkSize < 1 {
		panic("pager: chunk size must be at least 1")
	}

	return &Results[T]{
		query:     query,
		chunkSize: chunkSize,
		src:       src,
		next:      searchURL,
	}
}

// Query returns the query string this cursor was created for.
func (r *Results[T]) Query() string {
	return r.query
}

// Resident returns the number of chunks fetched so far.
func (r *Results[T]) Resident() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.resident)
}

// Exhausted reports whether the source has signalled that no further
// pages exist.
func (r *Results[T]) Exhausted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.exhausted
}

// Get returns the chunk at index, fetching and appending remote pages
// until the index is resident. more reports whether a chunk beyond
// index exists or may still exist upstream; callers use it to decide
// whether to hand out another pagination token.
//
// Get fails with ErrOutOfRange when the source is exhausted and index
// was never materialised, and propagates the source's error unchanged
// when a fetch fails. A failed fetch does not advance any state; the
// same read can be retried by a later request.
func (r *Results[T]) Get(ctx context.Context, index int) (chunk []T, more bool, err error) {
	if index < 0 {
		return nil, false, fmt.Errorf("%w: negative index %d", ErrOutOfRange, index)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for len(r.resident) <= index && !r.exhausted {
		page, err := r.src.FetchPage(ctx, r.next)
		if err != nil {
			return nil, false, err
		}

		r.resident = append(r.resident, Chunk(page.Items, r.chunkSize)...)

		if page.NextPage == "" {
			r.exhausted = true
		} else {
			r.next = page.NextPage
		}
	}

	if index >= len(r.resident) {
		return nil, false, fmt.Errorf("%w: %q has no chunk %d for chunk size %d",
			ErrOutOfRange, r.query, index, r.chunkSize)
	}

	more = index+1 < len(r.resident) || !r.exhausted
	return r.resident[index], more, nil
}
