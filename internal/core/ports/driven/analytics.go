package driven

import (
	"context"

	"github.com/tolarian-archive/scryglass/internal/core/domain"
)

// AnalyticsStore records answered searches for offline analysis.
// Recording is best-effort: a failure must never fail the request that
// produced the event. Implementations must be safe for concurrent use.
type AnalyticsStore interface {
	// RecordSearch persists a single search event.
	RecordSearch(ctx context.Context, event domain.SearchEvent) error

	// Close releases the underlying storage.
	Close() error
}
