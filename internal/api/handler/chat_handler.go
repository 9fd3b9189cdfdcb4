package handler

import (
	"encoding/json"
	"net/http"

	"go-purchase-analytics/internal/chat"
)

// ChatRequest is the POST /api/chat payload.
type ChatRequest struct {
	Message string `json:"message"`
	// Simple skips all data grounding and sends the message as-is.
	Simple bool `json:"simple,omitempty"`
}

// ChatResponse carries the assistant's answer.
type ChatResponse struct {
	Response string `json:"response"`
}

// ChatHandler answers business questions through the chat assistant.
type ChatHandler struct {
	assistant *chat.Assistant
}

func NewChatHandler(assistant *chat.Assistant) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// HandleChat answers a question about the live purchase data
// @Summary Chat with the data assistant
// @Description Ask a natural-language question; the answer is grounded on a fresh read of the live purchase documents
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Question"
// @Success 200 {object} ChatResponse "Assistant answer"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Assistant failure"
// @Router /chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	var answer string
	var err error
	if req.Simple {
		answer, err = h.assistant.AskSimple(r.Context(), req.Message)
	} else {
		answer, err = h.assistant.Ask(r.Context(), req.Message)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChatResponse{Response: answer})
}
