package scryfall

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is an error object returned by the Scryfall API. A search
// that matches no cards is reported as a 404 error object, not as an
// empty result list, so "no results" and genuine failures arrive here
// through the same type; the status code keeps them distinguishable.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Details    string `json:"details"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("scryfall: API error %d (%s): %s", e.StatusCode, e.Code, e.Details)
	}
	return fmt.Sprintf("scryfall: API error %d", e.StatusCode)
}

// IsNotFound reports whether err is Scryfall's "no cards found"
// response (or any other 404).
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// parseAPIError builds an APIError from an error response body,
// falling back to the bare status code when the body is not a Scryfall
// error object.
func parseAPIError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}
	_ = json.Unmarshal(body, apiErr)
	return apiErr
}
