package domain

import "time"

// SearchEvent records one answered inline search for analytics.
type SearchEvent struct {
	// Time is when the answer was computed. Zero means "now" to the sink.
	Time time.Time

	// UserID is the Telegram user the answer was computed for.
	UserID int64

	// Query is the effective query string, after empty-query recall.
	Query string

	// Offset is the chunk index that was served.
	Offset int

	// Results is the number of photo results in the answer.
	Results int

	// NextOffset is the pagination token handed back to Telegram,
	// empty when pagination ended.
	NextOffset string
}
