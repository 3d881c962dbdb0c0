// Package driving defines the interfaces through which the outside
// world drives the core.
package driving

import (
	"context"

	"github.com/tolarian-archive/scryglass/internal/core/domain"
)

// InlineQueryService computes answers for inline query events.
type InlineQueryService interface {
	// Answer computes the inline answer for q. Upstream failures and
	// exhausted pagination are folded into an empty answer; only
	// malformed input is reported as an error.
	Answer(ctx context.Context, q domain.InlineQuery) (domain.InlineAnswer, error)
}
