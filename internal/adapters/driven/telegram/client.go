// Package telegram is a minimal Telegram Bot API client covering the
// calls the bot makes. The bot token is part of the request path, never
// a header, per the Bot API convention.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/tolarian-archive/scryglass/internal/core/domain"
	"github.com/tolarian-archive/scryglass/internal/core/ports/driven"
)

const (
	// DefaultAPIURL is the public Bot API endpoint.
	DefaultAPIURL = "https://api.telegram.org"

	// DefaultTimeout is the timeout for a single API call.
	DefaultTimeout = 10 * time.Second

	// The Bot API allows roughly 30 requests per second overall;
	// stay comfortably below it.
	requestsPerSecond = 20
	burstSize         = 10
)

// Ensure Client implements the interface.
var _ driven.InlineResponder = (*Client)(nil)

// Client calls the Telegram Bot API on behalf of one bot.
type Client struct {
	apiURL     string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures the client.
type Option func(*Client)

// WithAPIURL overrides the Bot API endpoint. Used in tests.
func WithAPIURL(apiURL string) Option {
	return func(c *Client) {
		c.apiURL = apiURL
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Bot API client for the given bot token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		apiURL:     DefaultAPIURL,
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError is a non-ok response from the Bot API.
type APIError struct {
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram: API error %d: %s", e.ErrorCode, e.Description)
}

// AnswerInlineQuery sends the computed answer for an inline query.
// Telegram accepts each answer exactly once per inline query id.
func (c *Client) AnswerInlineQuery(ctx context.Context, answer domain.InlineAnswer) error {
	return c.call(ctx, "answerInlineQuery", answer)
}

// call POSTs payload as JSON to a Bot API method and checks the ok
// flag in the response envelope.
func (c *Client) call(ctx context.Context, method string, payload any) error {
	if c.token == "" {
		return domain.ErrMissingToken
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram: encode %s payload: %w", method, err)
	}

	url := c.apiURL + "/bot" + c.token + "/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram: build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: %s: %w", method, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("telegram: read %s response: %w", method, err)
	}

	var envelope struct {
		OK          bool   `json:"ok"`
		ErrorCode   int    `json:"error_code"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("telegram: decode %s response (HTTP %d): %w", method, resp.StatusCode, err)
	}

	if !envelope.OK {
		return &APIError{ErrorCode: envelope.ErrorCode, Description: envelope.Description}
	}

	return nil
}
