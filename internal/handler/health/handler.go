package health

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/campusmind/mindmate/backend/pkg/utils"
)

// Handler serves the service-meta endpoints.
type Handler struct{}

// New creates the meta handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes registers the root, health and history routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
	r.Get("/chat-history", h.handleChatHistory)
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("MindMate backend running"))
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "MindMate Backend",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleChatHistory is a placeholder until per-user persistence lands.
func (h *Handler) handleChatHistory(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Chat history feature coming soon with Firestore integration",
		"status":  "placeholder",
	})
}
