package demo

import (
	"testing"

	"career-navigator/internal/domain/roadmap"
)

func TestAccessorsReturnCopies(t *testing.T) {
	first := Roadmaps()
	first[0].TargetRole = "mutated"

	if Roadmaps()[0].TargetRole != "Data Engineer" {
		t.Fatalf("callers must not be able to mutate the dataset")
	}
}

func TestFirstRoadmapIsTheDashboardFallback(t *testing.T) {
	r := FirstRoadmap()
	if r.TargetRole != "Data Engineer" {
		t.Fatalf("unexpected fallback role %q", r.TargetRole)
	}
	if r.TimelineWeeks != 16 || r.Status != roadmap.StatusInProgress {
		t.Fatalf("unexpected fallback roadmap %+v", r)
	}
}

func TestRoleByTitle(t *testing.T) {
	role, ok := RoleByTitle("Machine Learning Engineer")
	if !ok || role.ID != "role-2" {
		t.Fatalf("expected role-2, got %+v ok=%v", role, ok)
	}
	if _, ok := RoleByTitle("Unknown"); ok {
		t.Fatalf("absent title must not resolve")
	}
}

func TestEveryRoadmapTargetsACatalogRole(t *testing.T) {
	for _, r := range Roadmaps() {
		if _, ok := RoleByTitle(r.TargetRole); !ok {
			t.Errorf("roadmap %s targets %q which is not in the catalog", r.ID, r.TargetRole)
		}
	}
}
