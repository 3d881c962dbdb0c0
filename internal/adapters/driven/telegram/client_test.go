package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolarian-archive/scryglass/internal/core/domain"
)

func sampleAnswer() domain.InlineAnswer {
	return domain.InlineAnswer{
		InlineQueryID: "query-1",
		CacheTime:     3600,
		Results: []domain.InlinePhoto{{
			Type:        "photo",
			ID:          "r1",
			PhotoURL:    "https://img/full.png",
			ThumbURL:    "https://img/small.jpg",
			PhotoWidth:  672,
			PhotoHeight: 936,
		}},
		NextOffset: "1",
	}
}

func TestAnswerInlineQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the answer to the token path", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			fmt.Fprint(w, `{"ok": true, "result": true}`)
		}))
		defer srv.Close()

		c := NewClient("123:SECRET", WithAPIURL(srv.URL))

		err := c.AnswerInlineQuery(ctx, sampleAnswer())

		require.NoError(t, err)
		assert.Equal(t, "/bot123:SECRET/answerInlineQuery", gotPath)
		assert.Equal(t, "query-1", gotBody["inline_query_id"])
		assert.Equal(t, "1", gotBody["next_offset"])
		assert.Equal(t, float64(3600), gotBody["cache_time"])

		results, ok := gotBody["results"].([]any)
		require.True(t, ok)
		require.Len(t, results, 1)
		photo := results[0].(map[string]any)
		assert.Equal(t, "photo", photo["type"])
		assert.Equal(t, "https://img/full.png", photo["photo_url"])
	})

	t.Run("omits next_offset when pagination ended", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			fmt.Fprint(w, `{"ok": true}`)
		}))
		defer srv.Close()

		c := NewClient("123:SECRET", WithAPIURL(srv.URL))

		answer := sampleAnswer()
		answer.NextOffset = ""
		require.NoError(t, c.AnswerInlineQuery(ctx, answer))

		_, present := gotBody["next_offset"]
		assert.False(t, present)
	})

	t.Run("not-ok responses surface as APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"ok": false, "error_code": 400, "description": "QUERY_ID_INVALID"}`)
		}))
		defer srv.Close()

		c := NewClient("123:SECRET", WithAPIURL(srv.URL))

		err := c.AnswerInlineQuery(ctx, sampleAnswer())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.ErrorCode)
		assert.Contains(t, apiErr.Description, "QUERY_ID_INVALID")
	})

	t.Run("missing token fails before any request", func(t *testing.T) {
		c := NewClient("")

		err := c.AnswerInlineQuery(ctx, sampleAnswer())

		assert.ErrorIs(t, err, domain.ErrMissingToken)
	})
}
