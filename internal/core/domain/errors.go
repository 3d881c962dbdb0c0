package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates a malformed inbound request, such as an
	// inline query without an id or with a non-numeric offset.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingToken indicates the bot token is not configured.
	ErrMissingToken = errors.New("telegram bot token not configured")
)
