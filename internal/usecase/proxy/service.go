// Package proxy implements the two pass-through persistence operations: user
// profile upsert and roadmap save. Stateless, no retries, no dedup; store
// failures are reported with their original message.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"career-navigator/internal/ws"
)

var (
	ErrMissingProfile       = errors.New("missing profile in body")
	ErrMissingRoadmapFields = errors.New("missing user_id or roadmap")
)

type Store interface {
	UpsertProfile(ctx context.Context, profile map[string]any) ([]map[string]any, error)
	InsertRoadmap(ctx context.Context, record map[string]any) ([]map[string]any, error)
}

// Invalidator drops cached roadmap reads after a write. Best effort only.
type Invalidator interface {
	InvalidateUser(ctx context.Context, userID string) error
}

type Service struct {
	store  Store
	cache  Invalidator
	logger *log.Logger
	now    func() time.Time
}

func NewService(store Store, cache Invalidator, logger *log.Logger) *Service {
	return &Service{store: store, cache: cache, logger: logger, now: time.Now}
}

// UpsertProfile forwards an insert-or-update of the users table. The caller
// supplies arbitrary fields; no schema is enforced here beyond non-emptiness.
func (s *Service) UpsertProfile(ctx context.Context, profile map[string]any) ([]map[string]any, error) {
	if len(profile) == 0 {
		return nil, ErrMissingProfile
	}

	rows, err := s.store.UpsertProfile(ctx, profile)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Proxy] upsert profile failed | err=%v", err)
		}
		return nil, err
	}
	return rows, nil
}

// SaveRoadmap stamps the current time and forwards a fresh insert; saves are
// append-only, never in-place updates.
func (s *Service) SaveRoadmap(ctx context.Context, userID string, payload json.RawMessage) ([]map[string]any, error) {
	if userID == "" || emptyJSON(payload) {
		return nil, ErrMissingRoadmapFields
	}

	record := map[string]any{
		"user_id":    userID,
		"roadmap":    payload,
		"created_at": s.now().UTC().Format(time.RFC3339),
	}

	rows, err := s.store.InsertRoadmap(ctx, record)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Proxy] save roadmap failed | user_id=%s err=%v", userID, err)
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateUser(ctx, userID); err != nil && s.logger != nil {
			s.logger.Printf("[Proxy] cache invalidation failed | user_id=%s err=%v", userID, err)
		}
	}
	ws.NotifyRoadmapSaved(userID)

	return rows, nil
}

func emptyJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
