package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"communityhub/usecases"
)

// NotificationsHandler is the app-facing entry point for broadcasts. The rest
// of the community application (prayer feed, calendar) posts here to notify
// all configured LINE recipients.
type NotificationsHandler struct {
	internalAPIKey string
	lineUseCase    usecases.LineUseCaseInterface
}

func NewNotificationsHandler(internalAPIKey string, lineUseCase usecases.LineUseCaseInterface) *NotificationsHandler {
	return &NotificationsHandler{
		internalAPIKey: internalAPIKey,
		lineUseCase:    lineUseCase,
	}
}

type broadcastRequest struct {
	Text string `json:"text"`
}

type broadcastResponse struct {
	Attempted int  `json:"attempted"`
	Succeeded int  `json:"succeeded"`
	Delivered bool `json:"delivered"`
}

func (h *NotificationsHandler) HandleBroadcast(w http.ResponseWriter, r *http.Request) {
	log.Printf("📨 Broadcast request received from %s", r.RemoteAddr)

	if h.internalAPIKey == "" || r.Header.Get("X-API-Key") != h.internalAPIKey {
		log.Printf("❌ Broadcast request rejected - invalid API key")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req broadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to parse broadcast request: %v", err)
		http.Error(w, "failed to parse body", http.StatusBadRequest)
		return
	}

	if req.Text == "" {
		http.Error(w, "text cannot be empty", http.StatusBadRequest)
		return
	}

	result, err := h.lineUseCase.BroadcastText(r.Context(), req.Text)
	if err != nil {
		log.Printf("❌ Broadcast failed: %v", err)
		http.Error(w, "broadcast failed", http.StatusInternalServerError)
		return
	}

	status := http.StatusAccepted
	if result.Attempted > 0 && !result.Delivered() {
		// Every recipient failed; surface that to the caller.
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(broadcastResponse{
		Attempted: result.Attempted,
		Succeeded: result.Succeeded,
		Delivered: result.Delivered(),
	})
}

func (h *NotificationsHandler) SetupEndpoints(router *mux.Router) {
	log.Printf("🚀 Registering notifications endpoint on /api/notifications/broadcast")
	router.HandleFunc("/api/notifications/broadcast", h.HandleBroadcast).Methods("POST")
	log.Printf("✅ Notifications endpoint registered successfully")
}
