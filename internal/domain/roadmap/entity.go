package roadmap

import (
	"encoding/json"
	"time"

	"career-navigator/internal/domain/career"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// ProgressPercent is a fixed three-value mapping, not derived from milestone
// completion. Preserved as-is from the original dashboard.
func (s Status) ProgressPercent() int {
	switch s {
	case StatusCompleted:
		return 100
	case StatusInProgress:
		return 50
	default:
		return 0
	}
}

type Milestone struct {
	Week      int    `json:"week"`
	Milestone string `json:"milestone"`
}

type CourseGroup struct {
	Skill   string          `json:"skill"`
	Courses []career.Course `json:"courses"`
}

// Roadmap is the view shape the dashboard renders, either a demo literal or
// a saved row mapped through FromSavedRow.
type Roadmap struct {
	ID                 string        `json:"id"`
	UserID             string        `json:"user_id"`
	TargetRole         string        `json:"target_role"`
	MissingSkills      []string      `json:"missing_skills"`
	RecommendedCourses []CourseGroup `json:"recommended_courses,omitempty"`
	TimelineWeeks      int           `json:"timeline_weeks"`
	Status             Status        `json:"status"`
	CreatedAt          string        `json:"created_at"`
	Milestones         []Milestone   `json:"milestones"`
}

// SavedRow is a row of the store's roadmaps table: append-only, with the
// roadmap itself an opaque structured payload.
type SavedRow struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Payload   json.RawMessage `json:"roadmap"`
	CreatedAt time.Time       `json:"created_at"`
}

type savedPayload struct {
	TargetRole    string      `json:"target_role"`
	MissingSkills []string    `json:"missing_skills"`
	TimelineWeeks int         `json:"timeline_weeks"`
	Status        Status      `json:"status"`
	Milestones    []Milestone `json:"milestones"`
}

// FromSavedRow maps a stored row into the view shape, substituting the same
// defaults the original dashboard used for absent payload fields.
func FromSavedRow(row SavedRow) Roadmap {
	var p savedPayload
	_ = json.Unmarshal(row.Payload, &p)

	r := Roadmap{
		ID:            row.ID,
		UserID:        row.UserID,
		TargetRole:    p.TargetRole,
		MissingSkills: p.MissingSkills,
		TimelineWeeks: p.TimelineWeeks,
		Status:        p.Status,
		Milestones:    p.Milestones,
	}
	if r.TargetRole == "" {
		r.TargetRole = "Unknown"
	}
	if r.MissingSkills == nil {
		r.MissingSkills = []string{}
	}
	if r.TimelineWeeks == 0 {
		r.TimelineWeeks = 12
	}
	if r.Status == "" {
		r.Status = StatusNotStarted
	}
	if r.Milestones == nil {
		r.Milestones = []Milestone{}
	}
	if !row.CreatedAt.IsZero() {
		r.CreatedAt = row.CreatedAt.UTC().Format(time.RFC3339)
	}
	return r
}
