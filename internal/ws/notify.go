package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

type AuthStateEvent struct {
	Type      string `json:"type"`
	Phase     string `json:"phase"`
	Email     string `json:"email,omitempty"`
	Timestamp string `json:"timestamp"`
}

type RoadmapSavedEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyAuthState pushes a gate transition to connected clients.
func NotifyAuthState(phase string, email string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := AuthStateEvent{
		Type:      "auth_state",
		Phase:     phase,
		Email:     email,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

// NotifyRoadmapSaved pushes a fresh roadmap insert to connected clients.
func NotifyRoadmapSaved(userID string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := RoadmapSavedEvent{
		Type:      "roadmap_saved",
		UserID:    userID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
