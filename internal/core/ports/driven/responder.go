package driven

import (
	"context"

	"github.com/tolarian-archive/scryglass/internal/core/domain"
)

// InlineResponder delivers a computed inline answer back to the chat
// platform.
type InlineResponder interface {
	// AnswerInlineQuery sends the answer for the inline query it names.
	AnswerInlineQuery(ctx context.Context, answer domain.InlineAnswer) error
}
