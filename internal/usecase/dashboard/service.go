// Package dashboard resolves what the dashboard page renders: the signed-in
// user's saved roadmaps when they exist, the demo dataset otherwise. Live and
// demo roadmaps are never mixed in one view.
package dashboard

import (
	"context"
	"log"

	"career-navigator/internal/demo"
	"career-navigator/internal/domain/career"
	"career-navigator/internal/domain/roadmap"
	"career-navigator/internal/domain/session"
)

type Store interface {
	ListRoadmaps(ctx context.Context, userID string) ([]roadmap.SavedRow, error)
}

// Cache is a read-through layer over ListRoadmaps. A down cache behaves as a
// miss; resolution then goes straight to the store.
type Cache interface {
	GetRoadmaps(ctx context.Context, userID string) ([]roadmap.SavedRow, bool, error)
	SetRoadmaps(ctx context.Context, userID string, rows []roadmap.SavedRow) error
}

type Service struct {
	store  Store
	cache  Cache
	logger *log.Logger
}

func NewService(store Store, cache Cache, logger *log.Logger) *Service {
	return &Service{store: store, cache: cache, logger: logger}
}

// View is everything the dashboard page shows for one resolution.
type View struct {
	DemoMode    bool                `json:"demo_mode"`
	UserEmail   string              `json:"user_email,omitempty"`
	Roadmaps    []roadmap.Roadmap   `json:"roadmaps"`
	Selected    roadmap.Roadmap     `json:"selected"`
	Progress    int                 `json:"progress"`
	TargetRole  *career.Role        `json:"target_role,omitempty"`
	RelatedJobs []career.JobPosting `json:"related_jobs"`
}

// Resolve runs on every authentication change. A nil session, a store error,
// an unreachable store, or zero saved rows all fall back to the demo dataset;
// the last case silently, which can mask an outage (known gap, preserved).
func (s *Service) Resolve(ctx context.Context, sess *session.Session) View {
	if sess == nil || sess.UserID == "" {
		return s.demoView("")
	}

	rows, err := s.loadRows(ctx, sess.UserID)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Dashboard] roadmap load failed, using demo data | user_id=%s err=%v", sess.UserID, err)
		}
		return s.demoView(sess.Email)
	}
	if len(rows) == 0 {
		return s.demoView(sess.Email)
	}

	maps := make([]roadmap.Roadmap, 0, len(rows))
	for _, row := range rows {
		maps = append(maps, roadmap.FromSavedRow(row))
	}
	v := s.viewFor(maps, maps[0])
	v.UserEmail = sess.Email
	return v
}

func (s *Service) loadRows(ctx context.Context, userID string) ([]roadmap.SavedRow, error) {
	if s.cache != nil {
		if rows, ok, err := s.cache.GetRoadmaps(ctx, userID); err == nil && ok {
			return rows, nil
		}
	}

	rows, err := s.store.ListRoadmaps(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRoadmaps(ctx, userID, rows); err != nil && s.logger != nil {
			s.logger.Printf("[Dashboard] cache write failed | user_id=%s err=%v", userID, err)
		}
	}
	return rows, nil
}

func (s *Service) demoView(email string) View {
	v := s.viewFor(demo.Roadmaps(), demo.FirstRoadmap())
	v.DemoMode = true
	v.UserEmail = email
	return v
}

func (s *Service) viewFor(maps []roadmap.Roadmap, selected roadmap.Roadmap) View {
	v := View{
		Roadmaps: maps,
		Selected: selected,
		Progress: selected.Status.ProgressPercent(),
	}

	// Role details and related jobs come from the reference catalog; jobs are
	// relevant when their skills intersect the target role's.
	if role, ok := demo.RoleByTitle(selected.TargetRole); ok {
		v.TargetRole = &role
		for _, j := range demo.Jobs() {
			if career.SkillsOverlap(j.RequiredSkills, role.RequiredSkills) {
				v.RelatedJobs = append(v.RelatedJobs, j)
			}
		}
	}
	if v.RelatedJobs == nil {
		v.RelatedJobs = []career.JobPosting{}
	}
	return v
}
