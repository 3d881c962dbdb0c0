// Package driven defines the interfaces the core depends on.
// Adapters implement them; the core never imports an adapter.
package driven

import (
	"context"

	"github.com/tolarian-archive/scryglass/internal/core/domain"
	"github.com/tolarian-archive/scryglass/internal/pager"
)

// CardSource provides paginated access to a remote card search API.
type CardSource interface {
	// SearchURL builds the URL of the first result page for query.
	SearchURL(query string) string

	// FetchPage retrieves a single result page by URL. A search that
	// matches nothing is reported as an error by the remote, not as an
	// empty page.
	FetchPage(ctx context.Context, url string) (pager.Page[domain.Card], error)
}
