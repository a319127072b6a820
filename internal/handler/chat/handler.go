package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	model "github.com/campusmind/mindmate/backend/internal/model/chat"
	chatService "github.com/campusmind/mindmate/backend/internal/service/chat"
	"github.com/campusmind/mindmate/backend/pkg/utils"
)

// Handler exposes the support-chat endpoint.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates the chat handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes registers the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

// User-facing prompts for rejected requests. Internal error values are
// never written into a response body.
const (
	promptMissing = "Please enter a message so I can help you 💙"
	promptEmpty   = "I didn’t catch that. Could you try typing it again?"
	promptTooLong = "That message is a bit long for me. Could you try a shorter version? 💙"
)

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload model.Request
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		// Unreadable bodies get the same nudge as an absent message.
		respondPrompt(w, promptMissing)
		return
	}

	resp, err := h.chatSvc.Respond(r.Context(), payload)
	switch {
	case err == nil:
		utils.RespondJSON(w, http.StatusOK, resp)
	case errors.Is(err, chatService.ErrMessageMissing):
		respondPrompt(w, promptMissing)
	case errors.Is(err, chatService.ErrMessageEmpty):
		respondPrompt(w, promptEmpty)
	case errors.Is(err, chatService.ErrMessageTooLong):
		respondPrompt(w, promptTooLong)
	case errors.Is(err, chatService.ErrCompleterUnavailable):
		utils.RespondJSON(w, http.StatusServiceUnavailable, resp)
	case errors.Is(err, chatService.ErrCompletionFailed):
		utils.RespondJSON(w, http.StatusBadGateway, resp)
	default:
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// respondPrompt writes a 400 that keeps the reply/warning response shape.
func respondPrompt(w http.ResponseWriter, prompt string) {
	utils.RespondJSON(w, http.StatusBadRequest, map[string]any{
		"reply":   prompt,
		"warning": false,
	})
}
