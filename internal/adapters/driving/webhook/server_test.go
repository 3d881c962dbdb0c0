package webhook

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolarian-archive/scryglass/internal/core/domain"
)

// stubService returns a canned answer or error.
type stubService struct {
	answer domain.InlineAnswer
	err    error
	got    *domain.InlineQuery
}

func (s *stubService) Answer(_ context.Context, q domain.InlineQuery) (domain.InlineAnswer, error) {
	s.got = &q
	return s.answer, s.err
}

// stubResponder records delivered answers.
type stubResponder struct {
	delivered []domain.InlineAnswer
	err       error
}

func (r *stubResponder) AnswerInlineQuery(_ context.Context, answer domain.InlineAnswer) error {
	r.delivered = append(r.delivered, answer)
	return r.err
}

func postUpdate(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleUpdate(t *testing.T) {
	inlineUpdate := `{
		"update_id": 10,
		"inline_query": {
			"id": "q1",
			"from": {"id": 7, "first_name": "Jace"},
			"query": "lightning bolt",
			"offset": ""
		}
	}`

	t.Run("answers an inline query", func(t *testing.T) {
		svc := &stubService{answer: domain.InlineAnswer{InlineQueryID: "q1", CacheTime: 3600}}
		responder := &stubResponder{}
		srv := NewServer("", svc, responder)

		rec := postUpdate(t, srv.Handler(), inlineUpdate)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, svc.got)
		assert.Equal(t, "q1", svc.got.ID)
		assert.Equal(t, "lightning bolt", svc.got.Query)
		assert.Equal(t, int64(7), svc.got.From.ID)
		require.Len(t, responder.delivered, 1)
		assert.Equal(t, "q1", responder.delivered[0].InlineQueryID)
	})

	t.Run("rejects undecodable payloads", func(t *testing.T) {
		srv := NewServer("", &stubService{}, &stubResponder{})

		rec := postUpdate(t, srv.Handler(), "{not json")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("acknowledges plain messages without answering", func(t *testing.T) {
		responder := &stubResponder{}
		srv := NewServer("", &stubService{}, responder)

		rec := postUpdate(t, srv.Handler(), `{"update_id": 11, "message": {"text": "hi"}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, responder.delivered)
	})

	t.Run("rejects unsupported update kinds", func(t *testing.T) {
		srv := NewServer("", &stubService{}, &stubResponder{})

		rec := postUpdate(t, srv.Handler(), `{"update_id": 12}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid input reports 400", func(t *testing.T) {
		svc := &stubService{err: fmt.Errorf("%w: bad offset", domain.ErrInvalidInput)}
		srv := NewServer("", svc, &stubResponder{})

		rec := postUpdate(t, srv.Handler(), inlineUpdate)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service failures report 502", func(t *testing.T) {
		svc := &stubService{err: assert.AnError}
		responder := &stubResponder{}
		srv := NewServer("", svc, responder)

		rec := postUpdate(t, srv.Handler(), inlineUpdate)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Empty(t, responder.delivered)
	})

	t.Run("delivery failures report 500", func(t *testing.T) {
		responder := &stubResponder{err: assert.AnError}
		srv := NewServer("", &stubService{}, responder)

		rec := postUpdate(t, srv.Handler(), inlineUpdate)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("webhook only accepts POST", func(t *testing.T) {
		srv := NewServer("", &stubService{}, &stubResponder{})

		req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHealthz(t *testing.T) {
	srv := NewServer("", &stubService{}, &stubResponder{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestServerLifecycle(t *testing.T) {
	srv := NewServer("127.0.0.1:0", &stubService{}, &stubResponder{})

	require.NoError(t, srv.Start())

	resp, err := http.Get("http://" + srv.Addr() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
}
