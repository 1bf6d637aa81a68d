package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"career-navigator/internal/domain/roadmap"
	"career-navigator/internal/domain/session"
)

type fakeStore struct {
	rows  []roadmap.SavedRow
	err   error
	calls int
}

func (f *fakeStore) ListRoadmaps(_ context.Context, _ string) ([]roadmap.SavedRow, error) {
	f.calls++
	return f.rows, f.err
}

type fakeCache struct {
	rows     map[string][]roadmap.SavedRow
	getCalls int
	setCalls int
}

func newFakeCache() *fakeCache {
	return &fakeCache{rows: make(map[string][]roadmap.SavedRow)}
}

func (f *fakeCache) GetRoadmaps(_ context.Context, userID string) ([]roadmap.SavedRow, bool, error) {
	f.getCalls++
	rows, ok := f.rows[userID]
	return rows, ok, nil
}

func (f *fakeCache) SetRoadmaps(_ context.Context, userID string, rows []roadmap.SavedRow) error {
	f.setCalls++
	f.rows[userID] = rows
	return nil
}

func savedRow(id, userID string, payload string) roadmap.SavedRow {
	return roadmap.SavedRow{
		ID:        id,
		UserID:    userID,
		Payload:   json.RawMessage(payload),
		CreatedAt: time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
	}
}

func assertDemoView(t *testing.T, v View) {
	t.Helper()
	if !v.DemoMode {
		t.Fatalf("expected demo mode")
	}
	if v.Selected.TargetRole != "Data Engineer" {
		t.Fatalf("demo selection must be the first demo roadmap, got %q", v.Selected.TargetRole)
	}
	if v.Selected.TimelineWeeks != 16 || v.Selected.Status != roadmap.StatusInProgress {
		t.Fatalf("unexpected demo roadmap %+v", v.Selected)
	}
	if v.Progress != 50 {
		t.Fatalf("in-progress must map to 50, got %d", v.Progress)
	}
	for _, r := range v.Roadmaps {
		if r.UserID != "demo-1" && r.UserID != "demo-2" {
			t.Fatalf("demo view must contain only demo roadmaps, got owner %q", r.UserID)
		}
	}
}

func TestResolve_NilSessionFallsBackToDemo(t *testing.T) {
	store := &fakeStore{}
	s := NewService(store, nil, nil)

	v := s.Resolve(context.Background(), nil)

	assertDemoView(t, v)
	if store.calls != 0 {
		t.Fatalf("no session means no store call, got %d", store.calls)
	}
}

func TestResolve_StoreErrorFallsBackToDemo(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	s := NewService(store, nil, nil)

	v := s.Resolve(context.Background(), &session.Session{UserID: "u-1", Email: "alice@example.com"})

	assertDemoView(t, v)
	if v.UserEmail != "alice@example.com" {
		t.Fatalf("demo fallback keeps the signed-in email, got %q", v.UserEmail)
	}
}

func TestResolve_ZeroRowsFallsBackToDemo(t *testing.T) {
	store := &fakeStore{rows: []roadmap.SavedRow{}}
	s := NewService(store, nil, nil)

	v := s.Resolve(context.Background(), &session.Session{UserID: "u-1"})

	assertDemoView(t, v)
}

func TestResolve_SavedRowsReplaceDemoEntirely(t *testing.T) {
	store := &fakeStore{rows: []roadmap.SavedRow{
		savedRow("r-1", "u-1", `{"target_role":"Machine Learning Engineer","timeline_weeks":20,"status":"completed","missing_skills":["TensorFlow"]}`),
		savedRow("r-2", "u-1", `{"target_role":"Product Manager","status":"not_started"}`),
	}}
	s := NewService(store, nil, nil)

	v := s.Resolve(context.Background(), &session.Session{UserID: "u-1", Email: "alice@example.com"})

	if v.DemoMode {
		t.Fatalf("saved rows must not render as demo")
	}
	if len(v.Roadmaps) != 2 {
		t.Fatalf("expected 2 roadmaps, got %d", len(v.Roadmaps))
	}
	for _, r := range v.Roadmaps {
		if r.UserID != "u-1" {
			t.Fatalf("live and demo roadmaps must never mix, got owner %q", r.UserID)
		}
	}
	if v.Selected.ID != "r-1" {
		t.Fatalf("selection must be the first saved row, got %q", v.Selected.ID)
	}
	if v.Progress != 100 {
		t.Fatalf("completed must map to 100, got %d", v.Progress)
	}
	if v.TargetRole == nil || v.TargetRole.Title != "Machine Learning Engineer" {
		t.Fatalf("target role must resolve from the catalog, got %+v", v.TargetRole)
	}
	if len(v.RelatedJobs) == 0 {
		t.Fatalf("expected related jobs for a catalog role")
	}
}

func TestResolve_PayloadDefaults(t *testing.T) {
	store := &fakeStore{rows: []roadmap.SavedRow{savedRow("r-1", "u-1", `{}`)}}
	s := NewService(store, nil, nil)

	v := s.Resolve(context.Background(), &session.Session{UserID: "u-1"})

	sel := v.Selected
	if sel.TargetRole != "Unknown" || sel.TimelineWeeks != 12 || sel.Status != roadmap.StatusNotStarted {
		t.Fatalf("absent payload fields must take defaults, got %+v", sel)
	}
	if sel.MissingSkills == nil || sel.Milestones == nil {
		t.Fatalf("slice fields must not be nil")
	}
	if v.Progress != 0 {
		t.Fatalf("not-started must map to 0, got %d", v.Progress)
	}
	if v.TargetRole != nil {
		t.Fatalf("unknown role must not resolve catalog details")
	}
	if v.RelatedJobs == nil || len(v.RelatedJobs) != 0 {
		t.Fatalf("related jobs must be an empty list, got %v", v.RelatedJobs)
	}
}

func TestResolve_ReadsThroughCache(t *testing.T) {
	store := &fakeStore{rows: []roadmap.SavedRow{savedRow("r-1", "u-1", `{"target_role":"Data Engineer"}`)}}
	cache := newFakeCache()
	s := NewService(store, cache, nil)
	sess := &session.Session{UserID: "u-1"}

	s.Resolve(context.Background(), sess)
	if store.calls != 1 || cache.setCalls != 1 {
		t.Fatalf("first resolve must hit the store and fill the cache, store=%d set=%d", store.calls, cache.setCalls)
	}

	s.Resolve(context.Background(), sess)
	if store.calls != 1 {
		t.Fatalf("second resolve must be served from cache, store=%d", store.calls)
	}
}
