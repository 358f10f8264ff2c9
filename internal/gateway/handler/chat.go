package handler

import (
	"encoding/json"
	"net/http"

	"designpro/internal/arch"
	"designpro/internal/chat"
)

type chatRequest struct {
	Message string `json:"message"`
}

type conversationResponse struct {
	Messages    []chat.Message `json:"messages"`
	Pending     bool           `json:"pending"`
	Suggestions []string       `json:"suggestions,omitempty"`
}

type chatResponse struct {
	Accepted bool `json:"accepted"`
	conversationResponse
}

// handleChat submits a query to the session. Rejections (blank query,
// request already pending) are not errors: the call is ignored and the
// response says so.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in chatRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	accepted := h.session.Submit(r.Context(), in.Message)
	writeJSON(w, http.StatusOK, chatResponse{
		Accepted:             accepted,
		conversationResponse: h.conversation(),
	})
}

func (h *Handler) handleConversation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.conversation())
}

func (h *Handler) conversation() conversationResponse {
	snap := h.session.State()
	out := conversationResponse{
		Messages: snap.Messages,
		Pending:  snap.Pending,
	}
	if len(snap.Messages) == 0 {
		out.Suggestions = arch.SuggestedQuestions()
	}
	return out
}
