package session

import (
	"strings"
	"time"
)

// Session is what the external store hands back on a successful login. It is
// observed, never mutated, by this system; the store owns its lifecycle.
type Session struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

func (s *Session) Valid(now time.Time) bool {
	if s == nil {
		return false
	}
	if strings.TrimSpace(s.UserID) == "" {
		return false
	}
	if s.ExpiresAt.IsZero() {
		return true
	}
	return now.Before(s.ExpiresAt)
}

// EventType mirrors the store's auth change-notification stream.
type EventType string

const (
	SignedIn       EventType = "SIGNED_IN"
	SignedOut      EventType = "SIGNED_OUT"
	TokenRefreshed EventType = "TOKEN_REFRESHED"
	UserUpdated    EventType = "USER_UPDATED"
)

// Event carries the session present at the time of the notification; nil
// means no session (sign-out, expiry).
type Event struct {
	Type    EventType
	Session *Session
}
