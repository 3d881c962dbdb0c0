// Package services contains the core application logic: turning inline
// query events into inline answers.
package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/tolarian-archive/scryglass/internal/core/domain"
	"github.com/tolarian-archive/scryglass/internal/core/ports/driven"
	"github.com/tolarian-archive/scryglass/internal/core/ports/driving"
	"github.com/tolarian-archive/scryglass/internal/logger"
)

// Defaults for the answer policy knobs.
const (
	// DefaultChunkSize is the number of cards per inline answer page.
	DefaultChunkSize = 24

	// DefaultMinQueryLength rejects queries shorter than this without
	// searching. Zero disables the policy.
	DefaultMinQueryLength = 3

	// DefaultCacheTime is how long Telegram may cache an answer for the
	// same query, in seconds.
	DefaultCacheTime = 3600

	// recallCacheTime is the cache window on the empty-query path.
	// Repeated empty queries must see fresh per-user state, so it is
	// kept to the minimum.
	recallCacheTime = 1
)

// Ensure InlineService implements the interface.
var _ driving.InlineQueryService = (*InlineService)(nil)

// InlineService answers Telegram inline queries with card search
// results. Upstream errors and exhausted pagination never fail a
// request: a bad search term looks identical to an empty result set.
type InlineService struct {
	cursors   driven.CursorCache
	lastQuery driven.LastQueryStore
	analytics driven.AnalyticsStore // optional

	mu             sync.RWMutex
	minQueryLength int
	cacheTime      int
}

// Option configures the inline service.
type Option func(*InlineService)

// WithMinQueryLength sets the minimum query length policy.
// Zero disables it.
func WithMinQueryLength(n int) Option {
	return func(s *InlineService) {
		if n >= 0 {
			s.minQueryLength = n
		}
	}
}

// WithCacheTime sets the Telegram-side cache window in seconds.
func WithCacheTime(seconds int) Option {
	return func(s *InlineService) {
		if seconds > 0 {
			s.cacheTime = seconds
		}
	}
}

// WithAnalytics attaches an analytics sink. Recording failures are
// logged, never surfaced.
func WithAnalytics(store driven.AnalyticsStore) Option {
	return func(s *InlineService) {
		s.analytics = store
	}
}

// NewInlineService creates an inline query service over the given
// cursor cache and last-query store.
func NewInlineService(cursors driven.CursorCache, lastQuery driven.LastQueryStore, opts ...Option) *InlineService {
	s := &InlineService{
		cursors:        cursors,
		lastQuery:      lastQuery,
		minQueryLength: DefaultMinQueryLength,
		cacheTime:      DefaultCacheTime,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetMinQueryLength updates the minimum query length policy at runtime,
// used by config hot reload.
func (s *InlineService) SetMinQueryLength(n int) {
	if n < 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.minQueryLength = n
}

func (s *InlineService) policy() (minQueryLength, cacheTime int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.minQueryLength, s.cacheTime
}

// Answer computes the inline answer for q.
//
// An empty query string is answered with the user's remembered query,
// or with zero results when nothing is remembered. Pagination errors
// (remote failures included) end the result list instead of failing
// the request; only malformed input returns an error.
func (s *InlineService) Answer(ctx context.Context, q domain.InlineQuery) (domain.InlineAnswer, error) {
	if q.ID == "" {
		return domain.InlineAnswer{}, fmt.Errorf("%w: inline query without id", domain.ErrInvalidInput)
	}

	offset := 0
	if q.Offset != "" {
		n, err := strconv.Atoi(q.Offset)
		if err != nil || n < 0 {
			return domain.InlineAnswer{}, fmt.Errorf("%w: bad offset %q", domain.ErrInvalidInput, q.Offset)
		}
		offset = n
	}

	minQueryLength, cacheTime := s.policy()

	logger.Info("query %s: %q from %s (%s) offset %d",
		q.ID, q.Query, q.From.FullName(), q.From.Username, offset)

	answer := domain.InlineAnswer{
		InlineQueryID: q.ID,
		CacheTime:     cacheTime,
		Results:       []domain.InlinePhoto{},
	}

	query := q.Query
	switch {
	case query == "":
		answer.CacheTime = recallCacheTime
		remembered, ok := s.lastQuery.Recall(q.From.ID)
		if !ok {
			return answer, nil
		}
		logger.Debug("no query given, reusing %q for user %d", remembered, q.From.ID)
		query = remembered
	case minQueryLength > 0 && len(query) < minQueryLength:
		logger.Debug("query %q shorter than %d characters, not searching", query, minQueryLength)
		return answer, nil
	}

	cursor := s.cursors.GetOrCreate(query)
	chunk, more, err := cursor.Get(ctx, offset)
	if err != nil {
		// Out-of-range and remote errors (including "no cards found")
		// all end pagination with an empty page.
		logger.Debug("no chunk %d for %q: %v", offset, query, err)
		s.record(ctx, q.From.ID, query, offset, &answer)
		return answer, nil
	}

	for _, card := range chunk {
		answer.Results = append(answer.Results, PhotosFromCard(card)...)
	}
	if more {
		answer.NextOffset = strconv.Itoa(offset + 1)
	}

	if len(answer.Results) > 0 {
		s.lastQuery.Remember(q.From.ID, query)
	}

	s.record(ctx, q.From.ID, query, offset, &answer)

	logger.Info("query %s: %d results, next offset %q", q.ID, len(answer.Results), answer.NextOffset)

	return answer, nil
}

// record sends a search event to the analytics sink, if one is
// attached. Failures are logged and swallowed.
func (s *InlineService) record(ctx context.Context, userID int64, query string, offset int, answer *domain.InlineAnswer) {
	if s.analytics == nil {
		return
	}

	event := domain.SearchEvent{
		UserID:     userID,
		Query:      query,
		Offset:     offset,
		Results:    len(answer.Results),
		NextOffset: answer.NextOffset,
	}

	if err := s.analytics.RecordSearch(ctx, event); err != nil {
		logger.Warn("recording search for user %d: %v", userID, err)
	}
}
