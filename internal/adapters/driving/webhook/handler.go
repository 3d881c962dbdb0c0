package webhook

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tolarian-archive/scryglass/internal/core/domain"
	"github.com/tolarian-archive/scryglass/internal/logger"
)

// Update is the subset of a Telegram update the bot reacts to. Other
// update kinds arrive with these fields unset and are acknowledged
// without action.
type Update struct {
	UpdateID    int64               `json:"update_id"`
	InlineQuery *domain.InlineQuery `json:"inline_query,omitempty"`
	Message     json.RawMessage     `json:"message,omitempty"`
}

// handleUpdate decodes a webhook update, computes the inline answer and
// delivers it back through the Bot API.
//
// Telegram retries updates that are not acknowledged with a 2xx, so the
// status code is the contract: only delivery failures report 5xx.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.Debug("webhook: undecodable update: %v", err)
		http.Error(w, "bad update payload", http.StatusBadRequest)
		return
	}

	if update.InlineQuery == nil {
		if update.Message != nil {
			// Plain messages are acknowledged and dropped; the bot only
			// works inline.
			logger.Debug("webhook: ignoring message update %d", update.UpdateID)
			w.WriteHeader(http.StatusOK)
			return
		}
		logger.Debug("webhook: unsupported update %d", update.UpdateID)
		http.Error(w, "unsupported update", http.StatusBadRequest)
		return
	}

	answer, err := s.service.Answer(r.Context(), *update.InlineQuery)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Warn("webhook: answering update %d: %v", update.UpdateID, err)
		http.Error(w, "answering inline query", http.StatusBadGateway)
		return
	}

	if err := s.responder.AnswerInlineQuery(r.Context(), answer); err != nil {
		logger.Warn("webhook: delivering answer for update %d: %v", update.UpdateID, err)
		http.Error(w, "delivering inline answer", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
