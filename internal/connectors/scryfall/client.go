// Package scryfall is a minimal client for the Scryfall card search
// API. It covers exactly what the bot needs: building a search URL and
// fetching one result page at a time.
package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/tolarian-archive/scryglass/internal/core/domain"
	"github.com/tolarian-archive/scryglass/internal/core/ports/driven"
	"github.com/tolarian-archive/scryglass/internal/pager"
)

const (
	// DefaultBaseURL is the public Scryfall API endpoint.
	DefaultBaseURL = "https://api.scryfall.com"

	// DefaultOrder sorts search results by EDHREC rank, which puts the
	// cards players actually look for first.
	DefaultOrder = "edhrec"

	// DefaultTimeout is the timeout for a single search request.
	DefaultTimeout = 10 * time.Second

	// Scryfall asks API clients to stay below 10 requests per second.
	requestsPerSecond = 8
	burstSize         = 4

	// Scryfall rejects requests without an identifying User-Agent.
	userAgent = "scryglass/1.0"
)

// Ensure Client implements the interfaces it backs.
var (
	_ driven.CardSource         = (*Client)(nil)
	_ pager.Source[domain.Card] = (*Client)(nil)
)

// Client performs card searches against the Scryfall API.
type Client struct {
	baseURL    string
	order      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used in tests and for
// API-compatible mirrors.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithOrder sets the sort order requested from the search endpoint.
func WithOrder(order string) Option {
	return func(c *Client) {
		if order != "" {
			c.order = order
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimiter replaces the default request limiter.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// NewClient creates a Scryfall client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		order:      DefaultOrder,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SearchURL builds the first-page search URL for query.
func (c *Client) SearchURL(query string) string {
	params := url.Values{
		"order": {c.order},
		"q":     {query},
	}
	return c.baseURL + "/cards/search?" + params.Encode()
}

// searchResponse is the wire envelope for one page of search results.
type searchResponse struct {
	Object     string        `json:"object"`
	TotalCards int           `json:"total_cards"`
	HasMore    bool          `json:"has_more"`
	NextPage   string        `json:"next_page"`
	Data       []domain.Card `json:"data"`
}

// FetchPage performs a single GET against a search page URL and decodes
// the result envelope. No retries: card searches are idempotent and
// cheap, and the dominant failure is "no matching cards", which
// Scryfall reports as a 404 error object (see APIError).
func (c *Client) FetchPage(ctx context.Context, pageURL string) (pager.Page[domain.Card], error) {
	var empty pager.Page[domain.Card]

	if err := c.limiter.Wait(ctx); err != nil {
		return empty, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return empty, fmt.Errorf("scryfall: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return empty, fmt.Errorf("scryfall: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return empty, fmt.Errorf("scryfall: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return empty, parseAPIError(resp.StatusCode, body)
	}

	var envelope searchResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return empty, fmt.Errorf("scryfall: decode response: %w", err)
	}

	page := pager.Page[domain.Card]{Items: envelope.Data}
	if envelope.HasMore {
		page.NextPage = envelope.NextPage
	}
	return page, nil
}
