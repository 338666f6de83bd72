package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/doodledaron/findcare/backend/internal/application/services"
)

// QueueHandler handles live queue status requests
type QueueHandler struct {
	service *services.QueueService
}

// NewQueueHandler creates a new queue handler
func NewQueueHandler(service *services.QueueService) *QueueHandler {
	return &QueueHandler{service: service}
}

// GetStatus handles GET /api/queue/status
func (h *QueueHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	email := q.Get("patient_email")
	if email == "" {
		respondWithError(w, http.StatusBadRequest, "patient_email is required")
		return
	}
	doctorID, err := strconv.Atoi(q.Get("doctor_id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid doctor_id")
		return
	}

	status, err := h.service.Status(r.Context(), email, doctorID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, status)
}

// StreamEvents handles SSE connections for live queue-depth updates
// GET /api/queue/events
func (h *QueueHandler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	events, err := h.service.Events(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sendEvent(w, "connected", map[string]interface{}{
		"timestamp": time.Now(),
	})
	flusher.Flush()

	// Heartbeats keep intermediaries from closing the idle stream
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Debug().Msg("Client disconnected from queue event stream")
			return
		case <-ticker.C:
			sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now(),
			})
			flusher.Flush()
		case event, open := <-events:
			if !open {
				return
			}
			if event == nil {
				continue
			}
			sendEvent(w, string(event.Type), event)
			flusher.Flush()
		}
	}
}

func sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Warn().Err(err).Str("event", eventType).Msg("Failed to marshal SSE event")
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, payload)
}
